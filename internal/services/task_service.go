package services

import (
	"strings"
	"time"

	"github.com/ita-growin/growin/internal/models"
)

type TaskRepository interface {
	FindByID(taskID uint) (models.Task, bool, error)
	Create(task *models.Task) error
	Save(task *models.Task) error
	Delete(taskID uint) error
	ListByEvent(eventID uint, offset int, limit int) ([]models.Task, int64, error)
	ListScheduledOnDay(userID uint, day time.Time, offset int, limit int) ([]models.Task, int64, error)
	ListUnscheduled(userID uint, offset int, limit int) ([]models.Task, int64, error)
}

type TaskService struct {
	tasks     TaskRepository
	events    TaskEventRepository
	validator *TaskValidator
}

func NewTaskService(tasks TaskRepository, events TaskEventRepository) *TaskService {
	return &TaskService{
		tasks:     tasks,
		events:    events,
		validator: NewTaskValidator(events),
	}
}

func (service *TaskService) CreateTask(userID uint, input TaskInput) (models.Task, error) {
	if err := service.validator.CreateValidate(userID, input); err != nil {
		return models.Task{}, err
	}

	task := buildTask(userID, input)
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) UpdateTask(userID uint, taskID uint, input TaskInput) (models.Task, error) {
	existing, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, ErrTaskNotFound
	}
	if existing.UserID != userID {
		return models.Task{}, ErrNotOwner
	}

	if err := service.validator.UpdateValidate(userID, input); err != nil {
		return models.Task{}, err
	}

	replacement := buildTask(userID, input)
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt
	if err := service.tasks.Save(&replacement); err != nil {
		return models.Task{}, err
	}
	return replacement, nil
}

func (service *TaskService) DeleteTask(userID uint, taskID uint) error {
	existing, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}

	if existing.EventID != nil {
		if err := service.validator.DeleteValidate(userID, *existing.EventID); err != nil {
			return err
		}
	} else if existing.UserID != userID {
		return ErrNotOwner
	}

	return service.tasks.Delete(taskID)
}

func (service *TaskService) GetTask(userID uint, taskID uint) (models.Task, error) {
	task, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, ErrTaskNotFound
	}
	if task.UserID != userID {
		return models.Task{}, ErrNotOwner
	}
	return task, nil
}

// ListEventTasks returns the tasks attached to an owned event.
func (service *TaskService) ListEventTasks(userID uint, eventID uint, offset int, limit int) ([]models.Task, int64, error) {
	event, found, err := service.events.FindByID(eventID)
	if err != nil {
		return nil, 0, err
	}
	if !found {
		return nil, 0, ErrEventNotFound
	}
	if event.UserID != userID {
		return nil, 0, ErrNotOwner
	}
	return service.tasks.ListByEvent(eventID, offset, limit)
}

// ListTodayTasks returns scheduled tasks whose date range covers today.
func (service *TaskService) ListTodayTasks(userID uint, today time.Time, offset int, limit int) ([]models.Task, int64, error) {
	return service.tasks.ListScheduledOnDay(userID, today, offset, limit)
}

// ListSomedayTasks returns the user's unscheduled backlog.
func (service *TaskService) ListSomedayTasks(userID uint, offset int, limit int) ([]models.Task, int64, error) {
	return service.tasks.ListUnscheduled(userID, offset, limit)
}

// buildTask keeps only the fields the kind defines: in-event tasks carry no
// repeat parameters, standalone tasks no event reference, unscheduled tasks
// no temporal fields at all.
func buildTask(userID uint, input TaskInput) models.Task {
	task := models.Task{
		UserID: userID,
		Title:  strings.TrimSpace(input.Title),
		Type:   input.Type,
	}

	switch input.Type {
	case models.TaskTypeInEvent:
		task.EventID = input.EventID
		task.StartDate = input.StartDate
		task.EndDate = input.EndDate
	case models.TaskTypeScheduled:
		task.RepeatType = input.RepeatType
		task.StartDate = input.StartDate
		task.EndDate = input.EndDate
	}
	return task
}
