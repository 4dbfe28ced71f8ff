package db

import (
	"time"

	"github.com/ita-growin/growin/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

func (repo *EventRepository) FindByID(eventID uint) (models.Event, bool, error) {
	var event models.Event
	result := repo.database.Limit(1).Find(&event, eventID)
	if result.Error != nil {
		return models.Event{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Event{}, false, nil
	}
	return event, true, nil
}

func (repo *EventRepository) Create(event *models.Event) error {
	return repo.database.Create(event).Error
}

func (repo *EventRepository) Save(event *models.Event) error {
	return repo.database.Save(event).Error
}

// DeleteWithTasks removes the event and every task referencing it in one
// transaction, standing in for ORM-level cascade removal.
func (repo *EventRepository) DeleteWithTasks(eventID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, eventID).Error
	})
}

// ListByUserRange returns events of the user whose date span overlaps
// [rangeStart, rangeEnd], newest span first, paged.
func (repo *EventRepository) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time, offset int, limit int) ([]models.Event, int64, error) {
	query := repo.database.Model(&models.Event{}).
		Where("user_id = ? AND start_date IS NOT NULL AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", userID, rangeEnd, rangeStart)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	events := make([]models.Event, 0)
	if err := query.Order("start_date ASC, id ASC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (repo *EventRepository) CountByUserOnDay(userID uint, day time.Time) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Event{}).
		Where("user_id = ? AND start_date IS NOT NULL AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", userID, day, day).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
