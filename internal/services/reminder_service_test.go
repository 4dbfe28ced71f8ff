package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ita-growin/growin/internal/models"
	"github.com/rs/zerolog"
)

type stubReminderUsers struct {
	users []models.User
	err   error
}

func (stub *stubReminderUsers) ListActiveWithDeviceToken() ([]models.User, error) {
	return stub.users, stub.err
}

type stubEventCounts struct {
	counts map[uint]int64
	err    error
}

func (stub *stubEventCounts) CountByUserOnDay(userID uint, day time.Time) (int64, error) {
	if stub.err != nil {
		return 0, stub.err
	}
	return stub.counts[userID], nil
}

type stubTaskCounts struct {
	counts map[uint]int64
}

func (stub *stubTaskCounts) CountScheduledOnDay(userID uint, day time.Time) (int64, error) {
	return stub.counts[userID], nil
}

type recordingPusher struct {
	pushes map[string]string
}

func (pusher *recordingPusher) Push(deviceToken string, message string) error {
	if pusher.pushes == nil {
		pusher.pushes = make(map[string]string)
	}
	pusher.pushes[deviceToken] = message
	return nil
}

func TestBuildReminderMessage(t *testing.T) {
	t.Parallel()

	if got := BuildReminderMessage("Grower", 2, 3); got != "Grower, you have 2 event(s) and 3 task(s) today." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := BuildReminderMessage("Grower", 1, 0); got != "Grower, you have 1 event(s) today." {
		t.Fatalf("unexpected message %q", got)
	}
	if got := BuildReminderMessage("Grower", 0, 4); got != "Grower, you have 4 task(s) due today." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRunDailySweep(t *testing.T) {
	t.Parallel()

	users := &stubReminderUsers{users: []models.User{
		{ID: 1, Nickname: "Busy", DeviceToken: "device-busy"},
		{ID: 2, Nickname: "Idle", DeviceToken: "device-idle"},
	}}
	events := &stubEventCounts{counts: map[uint]int64{1: 2}}
	tasks := &stubTaskCounts{counts: map[uint]int64{1: 1}}
	pusher := &recordingPusher{}

	service := NewReminderService(users, events, tasks, pusher, time.UTC, zerolog.Nop())
	if err := service.RunDailySweep(time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(pusher.pushes) != 1 {
		t.Fatalf("expected one push, got %d", len(pusher.pushes))
	}
	if message := pusher.pushes["device-busy"]; message != "Busy, you have 2 event(s) and 1 task(s) today." {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestRunDailySweepContinuesPastUserErrors(t *testing.T) {
	t.Parallel()

	users := &stubReminderUsers{users: []models.User{
		{ID: 1, Nickname: "Broken", DeviceToken: "device-broken"},
	}}
	events := &stubEventCounts{err: errors.New("storage down")}
	tasks := &stubTaskCounts{}
	pusher := &recordingPusher{}

	service := NewReminderService(users, events, tasks, pusher, time.UTC, zerolog.Nop())
	if err := service.RunDailySweep(time.Now()); err != nil {
		t.Fatalf("expected per-user errors swallowed, got %v", err)
	}
	if len(pusher.pushes) != 0 {
		t.Fatal("expected no pushes when counting fails")
	}
}

func TestRunDailySweepListFailure(t *testing.T) {
	t.Parallel()

	users := &stubReminderUsers{err: errors.New("storage down")}
	service := NewReminderService(users, &stubEventCounts{}, &stubTaskCounts{}, &recordingPusher{}, time.UTC, zerolog.Nop())
	if err := service.RunDailySweep(time.Now()); err == nil {
		t.Fatal("expected error when listing users fails")
	}
}
