// models/streak.go - Daily Activity Streak Data Models
package models

import (
	"time"
)

// StreakType enumerates the wellness activities that track streaks
type StreakType string

const (
	StreakWorkout    StreakType = "workout"
	StreakSteps      StreakType = "steps"
	StreakMeditation StreakType = "meditation"
	StreakSleep      StreakType = "sleep"
	StreakNutrition  StreakType = "nutrition"
	StreakCheckIn    StreakType = "checkin"
)

// StreakTypes lists every valid streak type
var StreakTypes = []StreakType{
	StreakWorkout,
	StreakSteps,
	StreakMeditation,
	StreakSleep,
	StreakNutrition,
	StreakCheckIn,
}

func (t StreakType) Valid() bool {
	for _, st := range StreakTypes {
		if t == st {
			return true
		}
	}
	return false
}

// Streak is a per-user consecutive-day counter for one activity type.
// LastUpdateDate carries calendar-date granularity only.
type Streak struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_streaks_pair"`
	User           *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Type           StreakType `json:"type" gorm:"not null;size:30;uniqueIndex:idx_streaks_pair"`
	CurrentStreak  int        `json:"current_streak" gorm:"default:0"`
	LongestStreak  int        `json:"longest_streak" gorm:"default:0"`
	LastUpdateDate time.Time  `json:"last_update_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}
