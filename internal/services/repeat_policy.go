package services

import (
	"time"

	"github.com/ita-growin/growin/internal/models"
)

type repeatCountBounds struct {
	min int
	max int
}

// Inclusive count bounds per repeat kind. NONE and UNTIL are handled
// separately: NONE forbids a count, UNTIL ignores it.
var repeatCountBoundsByKind = map[string]repeatCountBounds{
	models.RepeatDaily:   {min: 1, max: 365},
	models.RepeatWeekly:  {min: 1, max: 52},
	models.RepeatMonthly: {min: 1, max: 12},
	models.RepeatYearly:  {min: 1, max: 10},
}

// ValidateRepeat checks that the repeat parameters are admissible for the
// given kind. It is pure and total over its inputs.
func ValidateRepeat(repeatType string, repeatCount int, repeatEndDate *time.Time, startDate *time.Time) error {
	switch repeatType {
	case models.RepeatNone:
		if repeatCount != 0 {
			return ErrInvalidField
		}
		return nil
	case models.RepeatUntil:
		if repeatEndDate == nil {
			return ErrInvalidField
		}
		if startDate != nil && repeatEndDate.Before(*startDate) {
			return ErrInvalidField
		}
		return nil
	default:
		bounds, known := repeatCountBoundsByKind[repeatType]
		if !known {
			return ErrInvalidField
		}
		if repeatCount < bounds.min || repeatCount > bounds.max {
			return ErrInvalidField
		}
		return nil
	}
}
