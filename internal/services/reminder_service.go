package services

import (
	"fmt"
	"time"

	"github.com/ita-growin/growin/internal/models"
	"github.com/rs/zerolog"
)

type ReminderUserRepository interface {
	ListActiveWithDeviceToken() ([]models.User, error)
}

type ReminderEventRepository interface {
	CountByUserOnDay(userID uint, day time.Time) (int64, error)
}

type ReminderTaskRepository interface {
	CountScheduledOnDay(userID uint, day time.Time) (int64, error)
}

// Pusher delivers a reminder to a device. The default implementation only
// logs; a real push provider slots in behind the same interface.
type Pusher interface {
	Push(deviceToken string, message string) error
}

type LogPusher struct {
	logger zerolog.Logger
}

func NewLogPusher(logger zerolog.Logger) *LogPusher {
	return &LogPusher{logger: logger}
}

func (pusher *LogPusher) Push(deviceToken string, message string) error {
	pusher.logger.Info().Str("device_token", deviceToken).Str("message", message).Msg("reminder push")
	return nil
}

// ReminderService runs the daily "what's on today" sweep for active users
// that registered a device token.
type ReminderService struct {
	users    ReminderUserRepository
	events   ReminderEventRepository
	tasks    ReminderTaskRepository
	pusher   Pusher
	location *time.Location
	logger   zerolog.Logger
}

func NewReminderService(
	users ReminderUserRepository,
	events ReminderEventRepository,
	tasks ReminderTaskRepository,
	pusher Pusher,
	location *time.Location,
	logger zerolog.Logger,
) *ReminderService {
	return &ReminderService{
		users:    users,
		events:   events,
		tasks:    tasks,
		pusher:   pusher,
		location: location,
		logger:   logger,
	}
}

// RunDailySweep pushes one summary per user with something on today's plate.
// A failure for one user does not stop the sweep.
func (service *ReminderService) RunDailySweep(now time.Time) error {
	day := DateAtLocation(now, service.location)

	users, err := service.users.ListActiveWithDeviceToken()
	if err != nil {
		return fmt.Errorf("list reminder users: %w", err)
	}

	for _, user := range users {
		eventCount, err := service.events.CountByUserOnDay(user.ID, day)
		if err != nil {
			service.logger.Error().Err(err).Uint("user_id", user.ID).Msg("count events for reminder")
			continue
		}
		taskCount, err := service.tasks.CountScheduledOnDay(user.ID, day)
		if err != nil {
			service.logger.Error().Err(err).Uint("user_id", user.ID).Msg("count tasks for reminder")
			continue
		}

		if eventCount == 0 && taskCount == 0 {
			continue
		}

		message := BuildReminderMessage(user.Nickname, eventCount, taskCount)
		if err := service.pusher.Push(user.DeviceToken, message); err != nil {
			service.logger.Error().Err(err).Uint("user_id", user.ID).Msg("push reminder")
		}
	}

	return nil
}

// BuildReminderMessage renders the daily summary line.
func BuildReminderMessage(nickname string, eventCount int64, taskCount int64) string {
	switch {
	case eventCount > 0 && taskCount > 0:
		return fmt.Sprintf("%s, you have %d event(s) and %d task(s) today.", nickname, eventCount, taskCount)
	case eventCount > 0:
		return fmt.Sprintf("%s, you have %d event(s) today.", nickname, eventCount)
	default:
		return fmt.Sprintf("%s, you have %d task(s) due today.", nickname, taskCount)
	}
}
