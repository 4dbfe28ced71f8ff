package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ita-growin/growin/internal/models"
)

type fakeEventStore struct {
	events map[uint]models.Event
	nextID uint
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[uint]models.Event), nextID: 1}
}

func (store *fakeEventStore) FindByID(eventID uint) (models.Event, bool, error) {
	event, found := store.events[eventID]
	return event, found, nil
}

func (store *fakeEventStore) Create(event *models.Event) error {
	event.ID = store.nextID
	store.nextID++
	store.events[event.ID] = *event
	return nil
}

func (store *fakeEventStore) Save(event *models.Event) error {
	store.events[event.ID] = *event
	return nil
}

func (store *fakeEventStore) DeleteWithTasks(eventID uint) error {
	delete(store.events, eventID)
	return nil
}

func (store *fakeEventStore) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time, offset int, limit int) ([]models.Event, int64, error) {
	matched := make([]models.Event, 0)
	for _, event := range store.events {
		if event.UserID != userID || event.StartDate == nil {
			continue
		}
		if event.StartDate.After(rangeEnd) {
			continue
		}
		if event.EndDate != nil && event.EndDate.Before(rangeStart) {
			continue
		}
		matched = append(matched, event)
	}
	return matched, int64(len(matched)), nil
}

func standupInput() EventInput {
	return EventInput{
		Title:      "Standup",
		AllDay:     false,
		StartDate:  datePtr(2024, time.January, 2),
		EndDate:    datePtr(2024, time.January, 2),
		StartTime:  stringPtr("09:00"),
		EndTime:    stringPtr("09:15"),
		RepeatType: models.RepeatNone,
	}
}

func TestCreateEventAccepted(t *testing.T) {
	t.Parallel()

	service := NewEventService(newFakeEventStore())
	summary, err := service.CreateEvent(1, standupInput())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if summary.EventID == 0 {
		t.Fatal("expected assigned event id")
	}
	if summary.Title != "Standup" {
		t.Fatalf("expected title Standup, got %q", summary.Title)
	}
}

func TestCreateEventReversedDates(t *testing.T) {
	t.Parallel()

	input := standupInput()
	input.StartDate = datePtr(2024, time.January, 5)
	input.EndDate = datePtr(2024, time.January, 1)

	service := NewEventService(newFakeEventStore())
	_, err := service.CreateEvent(1, input)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCreateEventDateRangeReportedBeforeRepeatCount(t *testing.T) {
	t.Parallel()

	input := standupInput()
	input.StartDate = datePtr(2024, time.January, 5)
	input.EndDate = datePtr(2024, time.January, 1)
	input.RepeatType = models.RepeatDaily
	input.RepeatCount = 0 // also invalid

	service := NewEventService(newFakeEventStore())
	_, err := service.CreateEvent(1, input)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected the date range error first, got %v", err)
	}
}

func TestCreateEventInvalidRepeatCount(t *testing.T) {
	t.Parallel()

	input := standupInput()
	input.RepeatType = models.RepeatWeekly
	input.RepeatCount = 53

	service := NewEventService(newFakeEventStore())
	_, err := service.CreateEvent(1, input)
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestUpdateEventOwnershipAndValidation(t *testing.T) {
	t.Parallel()

	store := newFakeEventStore()
	service := NewEventService(store)
	summary, err := service.CreateEvent(1, standupInput())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	t.Run("foreign user", func(t *testing.T) {
		_, err := service.UpdateEvent(2, summary.EventID, standupInput())
		if !errors.Is(err, ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := service.UpdateEvent(1, 999, standupInput())
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("field replacement keeps identity", func(t *testing.T) {
		input := standupInput()
		input.Title = "Weekly sync"
		input.RepeatType = models.RepeatWeekly
		input.RepeatCount = 4

		updated, err := service.UpdateEvent(1, summary.EventID, input)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if updated.EventID != summary.EventID {
			t.Fatalf("expected same identity %d, got %d", summary.EventID, updated.EventID)
		}
		if updated.Title != "Weekly sync" {
			t.Fatalf("expected replaced title, got %q", updated.Title)
		}
	})

	t.Run("invalid replacement rejected", func(t *testing.T) {
		input := standupInput()
		input.StartDate = datePtr(2024, time.March, 9)
		input.EndDate = datePtr(2024, time.March, 1)

		_, err := service.UpdateEvent(1, summary.EventID, input)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	store := newFakeEventStore()
	service := NewEventService(store)
	summary, err := service.CreateEvent(1, standupInput())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := service.DeleteEvent(2, summary.EventID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := service.DeleteEvent(1, 404); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if err := service.DeleteEvent(1, summary.EventID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, found, _ := store.FindByID(summary.EventID); found {
		t.Fatal("expected event removed from store")
	}
}

func TestGetEventDetailIdempotentRead(t *testing.T) {
	t.Parallel()

	service := NewEventService(newFakeEventStore())
	summary, err := service.CreateEvent(1, standupInput())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	first, err := service.GetEventDetail(1, summary.EventID)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := service.GetEventDetail(1, summary.EventID)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical reads, got %+v then %+v", first, second)
	}

	if _, err := service.GetEventDetail(2, summary.EventID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for foreign reader, got %v", err)
	}
}

func TestListEventsByMonthValidatesMonth(t *testing.T) {
	t.Parallel()

	service := NewEventService(newFakeEventStore())
	if _, _, err := service.ListEventsByMonth(1, 2024, 0, 0, 20); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for month 0, got %v", err)
	}
	if _, _, err := service.ListEventsByMonth(1, 2024, 13, 0, 20); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for month 13, got %v", err)
	}
	if _, _, err := service.ListEventsByMonth(1, 2024, 1, 0, 20); err != nil {
		t.Fatalf("expected nil error for january, got %v", err)
	}
}
