package services

import (
	"time"

	"github.com/ita-growin/growin/internal/models"
)

// ValidateEventDay checks that the event's populated start markers do not
// come after the matching end markers. All-day events compare dates and day
// markers only; timed events additionally compare times-of-day when the
// dates are equal (or absent).
func ValidateEventDay(event models.Event) error {
	if event.StartDate != nil && event.EndDate != nil && event.StartDate.After(*event.EndDate) {
		return ErrInvalidDateRange
	}

	if event.StartDay != nil && event.EndDay != nil && *event.StartDay > *event.EndDay {
		return ErrInvalidDateRange
	}

	if event.AllDay {
		return nil
	}

	if event.StartTime == nil || event.EndTime == nil {
		return nil
	}

	startMinutes, err := ParseTimeOfDay(*event.StartTime)
	if err != nil {
		return ErrInvalidField
	}
	endMinutes, err := ParseTimeOfDay(*event.EndTime)
	if err != nil {
		return ErrInvalidField
	}

	if sameCalendarDay(event.StartDate, event.EndDate) && startMinutes > endMinutes {
		return ErrInvalidDateRange
	}
	return nil
}

// ParseTimeOfDay parses an "HH:MM" value into minutes since midnight.
func ParseTimeOfDay(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func sameCalendarDay(start *time.Time, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return start.Year() == end.Year() && start.Month() == end.Month() && start.Day() == end.Day()
}
