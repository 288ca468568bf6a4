package calculation

import (
	"sort"
	"sync"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// maxSweepWorkers limits how many sweep points are evaluated at once.
const maxSweepWorkers = 8

// SweepAmounts lists the loan amounts of rng (min, min+step, ... <= max) and
// inserts selected in order when it is not already on the grid. The second
// return value is the index of selected in the list.
func SweepAmounts(rng domain.SweepRange, selected float64) ([]float64, int, error) {
	if err := rng.Validate(); err != nil {
		return nil, 0, err
	}
	count := int((rng.Max-rng.Min)/rng.Step) + 1
	amounts := make([]float64, 0, count+1)
	for i := 0; i < count; i++ {
		// min + i*step rather than repeated addition keeps grid points exact
		amount := rng.Min + float64(i)*rng.Step
		if amount > rng.Max {
			break
		}
		amounts = append(amounts, amount)
	}

	idx := sort.SearchFloat64s(amounts, selected)
	if idx == len(amounts) || amounts[idx] != selected {
		amounts = append(amounts, 0)
		copy(amounts[idx+1:], amounts[idx:])
		amounts[idx] = selected
	}
	return amounts, idx, nil
}

// CalculateLoanSensitivity re-evaluates the loan at every amount of rng,
// holding every other parameter of template fixed. The series always contains
// template.LoanAmount, marked as Selected.
func CalculateLoanSensitivity(template domain.LoanParameters, rng domain.SweepRange) (*domain.SensitivitySeries, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	amounts, selectedIdx, err := SweepAmounts(rng, template.LoanAmount)
	if err != nil {
		return nil, err
	}

	points := make([]domain.SensitivityPoint, len(amounts))
	errs := make([]error, len(amounts))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxSweepWorkers)

	for i, amount := range amounts {
		semaphore <- struct{}{}
		wg.Add(1)
		go func(idx int, amount float64) {
			defer wg.Done()
			defer func() { <-semaphore }()

			params := template
			params.LoanAmount = amount
			outcome, err := CalculateLoanOutcome(params)
			if err != nil {
				errs[idx] = err
				return
			}
			points[idx] = domain.SensitivityPoint{
				LoanAmount:    amount,
				NetProfitLoss: outcome.NetProfitLoss,
				Decision:      outcome.Decision,
				Selected:      idx == selectedIdx,
			}
		}(i, amount)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &domain.SensitivitySeries{
		Template:      template,
		Range:         rng,
		Points:        points,
		SelectedIndex: selectedIdx,
	}, nil
}
