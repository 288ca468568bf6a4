package calculation

import (
	"context"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/rpgo/swp-calculator/internal/domain"
)

// maxConcurrentSimulations limits how many paths run at once.
const maxConcurrentSimulations = 10

// minSampledReturnPct keeps a sampled year above a total loss.
const minSampledReturnPct = -99

// MonteCarloSimulator stress-tests a depletion plan by replacing the fixed
// annual return with one drawn afresh every year.
type MonteCarloSimulator struct {
	Plan     domain.DepletionPlan
	Settings domain.MonteCarloSettings
}

// NewMonteCarloSimulator validates plan and settings and fills defaults. A zero
// seed is replaced with a random one so the run can be reproduced from the
// result.
func NewMonteCarloSimulator(plan domain.DepletionPlan, settings domain.MonteCarloSettings) (*MonteCarloSimulator, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	settings = settings.WithDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Seed == 0 {
		settings.Seed = seedFunc()
	}
	return &MonteCarloSimulator{Plan: plan, Settings: settings}, nil
}

// RunSimulation executes every path and aggregates the outcomes. Path i uses
// its own source seeded with Seed+i, so results do not depend on scheduling.
func (mcs *MonteCarloSimulator) RunSimulation(ctx context.Context) (*domain.MonteCarloResult, error) {
	n := mcs.Settings.Simulations
	horizon := mcs.Settings.HorizonYears * 12
	g := MonthlyRate(mcs.Plan.AnnualGrowthPct)

	results := make([]domain.RunOutcome, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentSimulations)

	for i := 0; i < n && ctx.Err() == nil; i++ {
		semaphore <- struct{}{}
		wg.Add(1)
		go func(simIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(mcs.Settings.Seed + int64(simIndex)))
			results[simIndex], errs[simIndex] = mcs.runSingleSimulation(rng, g, horizon)
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	survived := 0
	for _, o := range results {
		if !o.Terminated {
			survived++
		}
	}
	return &domain.MonteCarloResult{
		Plan:          mcs.Plan,
		Settings:      mcs.Settings,
		HorizonMonths: horizon,
		Survived:      survived,
		SuccessRate:   float64(survived) / float64(n),
		Percentiles:   calculateMonthPercentiles(results),
		MedianEnding:  calculateMedianEndingBalance(results),
		Outcomes:      results,
	}, nil
}

// runSingleSimulation follows the deterministic depletion rule month by month
// but resamples the return at the start of every year.
func (mcs *MonteCarloSimulator) runSingleSimulation(rng *rand.Rand, g float64, horizon int) (domain.RunOutcome, error) {
	balance := mcs.Plan.InitialCapital
	var r float64
	for m := 0; m < horizon; m++ {
		if m%12 == 0 {
			r = MonthlyRate(mcs.sampleAnnualReturn(rng))
		}
		withdrawal := mcs.Plan.MonthlyWithdrawal * math.Pow(1+g, float64(m))
		balance = balance*(1+r) - withdrawal
		if math.IsInf(balance, 1) && g <= r {
			// Past the float range and still outgrowing withdrawals.
			return domain.RunOutcome{ElapsedMonths: horizon, EndingBalance: math.MaxFloat64}, nil
		}
		if err := domain.CheckFinite("simulated balance", balance); err != nil {
			return domain.RunOutcome{}, err
		}
		if balance <= 0 {
			return domain.RunOutcome{ElapsedMonths: m + 1, Terminated: true}, nil
		}
	}
	return domain.RunOutcome{ElapsedMonths: horizon, EndingBalance: balance}, nil
}

func (mcs *MonteCarloSimulator) sampleAnnualReturn(rng *rand.Rand) float64 {
	pct := mcs.Plan.AnnualReturnPct + rng.NormFloat64()*mcs.Settings.ReturnVolatilityPct
	return math.Max(pct, minSampledReturnPct)
}

func calculateMonthPercentiles(outcomes []domain.RunOutcome) domain.MonthPercentiles {
	months := make([]int, len(outcomes))
	for i, o := range outcomes {
		months[i] = o.ElapsedMonths
	}
	slices.Sort(months)

	n := len(months)
	return domain.MonthPercentiles{
		P10: months[n/10],
		P25: months[n/4],
		P50: months[n/2],
		P75: months[3*n/4],
		P90: months[9*n/10],
	}
}

func calculateMedianEndingBalance(outcomes []domain.RunOutcome) float64 {
	balances := make([]float64, len(outcomes))
	for i, o := range outcomes {
		balances[i] = o.EndingBalance
	}
	slices.Sort(balances)
	return balances[len(balances)/2]
}

// RunMonteCarlo is a convenience wrapper around NewMonteCarloSimulator.
func RunMonteCarlo(ctx context.Context, plan domain.DepletionPlan, settings domain.MonteCarloSettings) (*domain.MonteCarloResult, error) {
	mcs, err := NewMonteCarloSimulator(plan, settings)
	if err != nil {
		return nil, err
	}
	return mcs.RunSimulation(ctx)
}
