package calculation

import "github.com/rpgo/swp-calculator/internal/domain"

type namedValue struct {
	name  string
	value float64
}

// checkFinite reports the first NaN or infinite value, in argument order.
func checkFinite(values ...namedValue) error {
	for _, v := range values {
		if err := domain.CheckFinite(v.name, v.value); err != nil {
			return err
		}
	}
	return nil
}
