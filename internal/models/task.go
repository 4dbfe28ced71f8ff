package models

import "time"

const (
	TaskTypeInEvent     = "IN_EVENT"
	TaskTypeScheduled   = "SCHEDULED"
	TaskTypeUnscheduled = "UNSCHEDULED"
)

type Task struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	EventID    *uint  `gorm:"index"`
	Title      string `gorm:"not null"`
	Type       string `gorm:"not null"`
	RepeatType *string
	StartDate  *time.Time `gorm:"type:date"`
	EndDate    *time.Time `gorm:"type:date"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time
}

func IsValidTaskType(value string) bool {
	switch value {
	case TaskTypeInEvent, TaskTypeScheduled, TaskTypeUnscheduled:
		return true
	default:
		return false
	}
}
