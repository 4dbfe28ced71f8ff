package db

import (
	"time"

	"github.com/ita-growin/growin/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, bool, error) {
	var task models.Task
	result := repo.database.Limit(1).Find(&task, taskID)
	if result.Error != nil {
		return models.Task{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Task{}, false, nil
	}
	return task, true, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Save(task).Error
}

func (repo *TaskRepository) Delete(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}

func (repo *TaskRepository) ListByEvent(eventID uint, offset int, limit int) ([]models.Task, int64, error) {
	query := repo.database.Model(&models.Task{}).Where("event_id = ?", eventID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]models.Task, 0)
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListScheduledOnDay returns scheduled tasks of the user whose date range
// covers the given day.
func (repo *TaskRepository) ListScheduledOnDay(userID uint, day time.Time, offset int, limit int) ([]models.Task, int64, error) {
	query := repo.database.Model(&models.Task{}).
		Where("user_id = ? AND type = ? AND (start_date IS NULL OR start_date <= ?) AND end_date >= ?",
			userID, models.TaskTypeScheduled, day, day)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]models.Task, 0)
	if err := query.Order("end_date ASC, id ASC").Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (repo *TaskRepository) ListUnscheduled(userID uint, offset int, limit int) ([]models.Task, int64, error) {
	query := repo.database.Model(&models.Task{}).
		Where("user_id = ? AND type = ?", userID, models.TaskTypeUnscheduled)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tasks := make([]models.Task, 0)
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (repo *TaskRepository) CountScheduledOnDay(userID uint, day time.Time) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Task{}).
		Where("user_id = ? AND type = ? AND (start_date IS NULL OR start_date <= ?) AND end_date >= ?",
			userID, models.TaskTypeScheduled, day, day).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
