package types

import (
	"time"

	"github.com/yungbote/eurojackpot-backend/internal/errs"
)

const (
	mainCount = 5
	mainMin   = 1
	mainMax   = 50

	euroCount = 2
	euroMin   = 1
	euroMax   = 12
)

// Validate checks the draw's numeric constraints and date format. It returns
// a *errs.ValidationError naming the offending field, never a generic error.
func (d *Draw) Validate() error {
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return errs.NewValidation("date", "must be a calendar date in YYYY-MM-DD format")
	}
	if verr := validateNumbers("main", d.Main, mainCount, mainMin, mainMax); verr != nil {
		return verr
	}
	if verr := validateNumbers("euro", d.Euro, euroCount, euroMin, euroMax); verr != nil {
		return verr
	}
	return nil
}

// Validate checks the prediction's numeric constraints.
func (p *Prediction) Validate() error {
	if verr := validateNumbers("main", p.Main, mainCount, mainMin, mainMax); verr != nil {
		return verr
	}
	if verr := validateNumbers("euro", p.Euro, euroCount, euroMin, euroMax); verr != nil {
		return verr
	}
	return nil
}

func validateNumbers(field string, nums []int, count, min, max int) *errs.ValidationError {
	if len(nums) != count {
		return errs.NewValidation(field, "must contain exactly %d numbers, got %d", count, len(nums))
	}
	seen := make(map[int]struct{}, count)
	for _, n := range nums {
		if n < min || n > max {
			return errs.NewValidation(field, "number %d out of range %d..%d", n, min, max)
		}
		if _, dup := seen[n]; dup {
			return errs.NewValidation(field, "number %d appears more than once", n)
		}
		seen[n] = struct{}{}
	}
	return nil
}
