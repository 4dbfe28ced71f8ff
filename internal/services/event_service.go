package services

import (
	"strings"
	"time"

	"github.com/ita-growin/growin/internal/models"
)

type EventRepository interface {
	FindByID(eventID uint) (models.Event, bool, error)
	Create(event *models.Event) error
	Save(event *models.Event) error
	DeleteWithTasks(eventID uint) error
	ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time, offset int, limit int) ([]models.Event, int64, error)
}

// EventInput is an already-deserialized event create/update request.
type EventInput struct {
	Title         string
	AllDay        bool
	StartDate     *time.Time
	EndDate       *time.Time
	StartDay      *int
	EndDay        *int
	StartTime     *string
	EndTime       *string
	RepeatType    string
	RepeatCount   int
	RepeatEndDate *time.Time
}

// EventSummary is the create/update response view.
type EventSummary struct {
	EventID uint   `json:"eventId"`
	Title   string `json:"title"`
}

// EventService is a stateless per-request pipeline: field validation, then
// repeat validation, then persistence. Failures leave no partial state.
type EventService struct {
	events EventRepository
}

func NewEventService(events EventRepository) *EventService {
	return &EventService{events: events}
}

func (service *EventService) CreateEvent(userID uint, input EventInput) (EventSummary, error) {
	event, err := buildEvent(userID, input)
	if err != nil {
		return EventSummary{}, err
	}

	if err := ValidateEventDay(event); err != nil {
		return EventSummary{}, err
	}
	if err := ValidateRepeat(event.RepeatType, event.RepeatCount, event.RepeatEndDate, event.StartDate); err != nil {
		return EventSummary{}, err
	}

	if err := service.events.Create(&event); err != nil {
		return EventSummary{}, err
	}
	return EventSummary{EventID: event.ID, Title: event.Title}, nil
}

func (service *EventService) UpdateEvent(userID uint, eventID uint, input EventInput) (EventSummary, error) {
	existing, found, err := service.events.FindByID(eventID)
	if err != nil {
		return EventSummary{}, err
	}
	if !found {
		return EventSummary{}, ErrEventNotFound
	}
	if existing.UserID != userID {
		return EventSummary{}, ErrNotOwner
	}

	replacement, err := buildEvent(userID, input)
	if err != nil {
		return EventSummary{}, err
	}
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	if err := ValidateEventDay(replacement); err != nil {
		return EventSummary{}, err
	}
	if err := ValidateRepeat(replacement.RepeatType, replacement.RepeatCount, replacement.RepeatEndDate, replacement.StartDate); err != nil {
		return EventSummary{}, err
	}

	if err := service.events.Save(&replacement); err != nil {
		return EventSummary{}, err
	}
	return EventSummary{EventID: replacement.ID, Title: replacement.Title}, nil
}

func (service *EventService) DeleteEvent(userID uint, eventID uint) error {
	existing, found, err := service.events.FindByID(eventID)
	if err != nil {
		return err
	}
	if !found {
		return ErrEventNotFound
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	return service.events.DeleteWithTasks(eventID)
}

func (service *EventService) GetEventDetail(userID uint, eventID uint) (models.Event, error) {
	event, found, err := service.events.FindByID(eventID)
	if err != nil {
		return models.Event{}, err
	}
	if !found {
		return models.Event{}, ErrEventNotFound
	}
	if event.UserID != userID {
		return models.Event{}, ErrNotOwner
	}
	return event, nil
}

// ListEventsByMonth returns the user's events overlapping the given month.
func (service *EventService) ListEventsByMonth(userID uint, year int, month int, offset int, limit int) ([]models.Event, int64, error) {
	if month < 1 || month > 12 {
		return nil, 0, ErrInvalidDateRange
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return service.events.ListByUserRange(userID, monthStart, monthEnd, offset, limit)
}

// ListEventsByDate returns the user's events whose span covers the date.
func (service *EventService) ListEventsByDate(userID uint, date time.Time, offset int, limit int) ([]models.Event, int64, error) {
	return service.events.ListByUserRange(userID, date, date, offset, limit)
}

func buildEvent(userID uint, input EventInput) (models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Event{}, ErrInvalidField
	}

	repeatType := input.RepeatType
	if repeatType == "" {
		repeatType = models.RepeatNone
	}
	if !models.IsValidRepeatType(repeatType) {
		return models.Event{}, ErrInvalidField
	}

	return models.Event{
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		AllDay:        input.AllDay,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		StartDay:      input.StartDay,
		EndDay:        input.EndDay,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		RepeatType:    repeatType,
		RepeatCount:   input.RepeatCount,
		RepeatEndDate: input.RepeatEndDate,
	}, nil
}
