package services

import (
	"strings"
	"time"

	"github.com/ita-growin/growin/internal/models"
)

// TaskEventRepository is the narrow event lookup the validator needs.
type TaskEventRepository interface {
	FindByID(eventID uint) (models.Event, bool, error)
}

// TaskInput is the already-deserialized task request the validator sees.
// Presence is expressed with nil pointers; the transport layer does not
// re-validate domain semantics.
type TaskInput struct {
	Title      string
	Type       string
	EventID    *uint
	RepeatType *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TaskValidator enforces the kind-conditional field rules and the ownership
// rule for tasks attached to an event. The acting user is passed explicitly.
type TaskValidator struct {
	events TaskEventRepository
}

func NewTaskValidator(events TaskEventRepository) *TaskValidator {
	return &TaskValidator{events: events}
}

// CreateValidate checks a create request in order, short-circuiting on the
// first violated rule.
func (validator *TaskValidator) CreateValidate(userID uint, input TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrInvalidField
	}

	switch input.Type {
	case models.TaskTypeInEvent:
		if input.EventID == nil {
			return ErrInvalidField
		}
		return validator.checkEventOwnership(userID, *input.EventID)
	case models.TaskTypeScheduled:
		if input.RepeatType == nil || input.EndDate == nil {
			return ErrInvalidField
		}
		return nil
	case models.TaskTypeUnscheduled:
		return nil
	default:
		return ErrInvalidField
	}
}

// UpdateValidate mirrors CreateValidate but also requires the kind to be
// present, and scheduled tasks to carry a start date.
func (validator *TaskValidator) UpdateValidate(userID uint, input TaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrInvalidField
	}
	if strings.TrimSpace(input.Type) == "" {
		return ErrInvalidField
	}

	switch input.Type {
	case models.TaskTypeInEvent:
		if input.EventID == nil {
			return ErrInvalidField
		}
		return validator.checkEventOwnership(userID, *input.EventID)
	case models.TaskTypeScheduled:
		if input.RepeatType == nil || input.StartDate == nil || input.EndDate == nil {
			return ErrInvalidField
		}
		return nil
	case models.TaskTypeUnscheduled:
		return nil
	default:
		return ErrInvalidField
	}
}

// DeleteValidate resolves the parent event and enforces ownership.
func (validator *TaskValidator) DeleteValidate(userID uint, eventID uint) error {
	return validator.checkEventOwnership(userID, eventID)
}

func (validator *TaskValidator) checkEventOwnership(userID uint, eventID uint) error {
	event, found, err := validator.events.FindByID(eventID)
	if err != nil {
		return err
	}
	if !found {
		return ErrEventNotFound
	}
	if event.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
