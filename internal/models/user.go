package models

import "time"

const (
	LoginTypeKakao = "KAKAO"
)

const (
	UserStatusActive    = "ACTIVE"
	UserStatusSuspended = "SUSPENDED"
	UserStatusWithdrawn = "WITHDRAWN"
)

const (
	WorkStudent    = "STUDENT"
	WorkEmployee   = "EMPLOYEE"
	WorkFreelancer = "FREELANCER"
	WorkJobSeeker  = "JOB_SEEKER"
	WorkOther      = "OTHER"
)

const (
	InterestDevelopment = "DEVELOPMENT"
	InterestDesign      = "DESIGN"
	InterestPlanning    = "PLANNING"
	InterestMarketing   = "MARKETING"
	InterestLanguage    = "LANGUAGE"
	InterestOther       = "OTHER"
)

const (
	TargetHabit  = "HABIT"
	TargetStudy  = "STUDY"
	TargetCareer = "CAREER"
	TargetHealth = "HEALTH"
	TargetHobby  = "HOBBY"
)

type User struct {
	ID                 uint   `gorm:"primaryKey"`
	Email              string `gorm:"uniqueIndex;not null"`
	Nickname           string `gorm:"not null"`
	LoginType          string `gorm:"not null;default:KAKAO"`
	Status             string `gorm:"not null;default:ACTIVE"`
	Work               string `gorm:"not null"`
	InterestField      string `gorm:"not null"`
	Target             string `gorm:"not null"`
	DeviceToken        string
	RefreshTokenHash   string
	RefreshTokenExpiry *time.Time
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time
}

func IsValidWork(value string) bool {
	switch value {
	case WorkStudent, WorkEmployee, WorkFreelancer, WorkJobSeeker, WorkOther:
		return true
	default:
		return false
	}
}

func IsValidInterestField(value string) bool {
	switch value {
	case InterestDevelopment, InterestDesign, InterestPlanning, InterestMarketing, InterestLanguage, InterestOther:
		return true
	default:
		return false
	}
}

func IsValidTarget(value string) bool {
	switch value {
	case TargetHabit, TargetStudy, TargetCareer, TargetHealth, TargetHobby:
		return true
	default:
		return false
	}
}
