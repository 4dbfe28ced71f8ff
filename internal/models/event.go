package models

import "time"

const (
	RepeatNone    = "NONE"
	RepeatDaily   = "DAILY"
	RepeatWeekly  = "WEEKLY"
	RepeatMonthly = "MONTHLY"
	RepeatYearly  = "YEARLY"
	RepeatUntil   = "UNTIL"
)

// Event is a calendar block owned by a user. Tasks reference it by id;
// deleting an event removes its tasks in the same transaction.
type Event struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;index"`
	Title         string     `gorm:"not null"`
	AllDay        bool       `gorm:"not null;default:false"`
	StartDate     *time.Time `gorm:"type:date"`
	EndDate       *time.Time `gorm:"type:date"`
	StartDay      *int
	EndDay        *int
	StartTime     *string
	EndTime       *string
	RepeatType    string     `gorm:"not null;default:NONE"`
	RepeatCount   int        `gorm:"not null;default:0"`
	RepeatEndDate *time.Time `gorm:"type:date"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time
}

func IsValidRepeatType(value string) bool {
	switch value {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatYearly, RepeatUntil:
		return true
	default:
		return false
	}
}
