// models/challenge.go - Seasonal Challenge Data Models
package models

import (
	"time"
)

// SeasonalChallenge is a time-boxed, joinable variant of a quest
type SeasonalChallenge struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;size:100"`
	Description  string    `json:"description" gorm:"type:text"`
	Season       string    `json:"season" gorm:"size:50;index"` // e.g. "2026-summer"
	TargetValue  int       `json:"target_value" gorm:"not null"`
	XPReward     int       `json:"xp_reward" gorm:"default:0"`
	CreditReward int       `json:"credit_reward" gorm:"default:0"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Participants []UserSeasonalChallengeProgress `json:"participants,omitempty" gorm:"foreignKey:ChallengeID"`
}

// UserSeasonalChallengeProgress tracks a user's participation in a challenge.
// A user joins a challenge at most once.
type UserSeasonalChallengeProgress struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	UserID       uint               `json:"user_id" gorm:"not null;uniqueIndex:idx_challenge_progress_pair"`
	User         *User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ChallengeID  uint               `json:"challenge_id" gorm:"not null;uniqueIndex:idx_challenge_progress_pair"`
	Challenge    *SeasonalChallenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	CurrentValue int                `json:"current_value" gorm:"default:0"`
	IsCompleted  bool               `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time         `json:"completed_at"`
	JoinedAt     time.Time          `json:"joined_at"`
}

func (SeasonalChallenge) TableName() string {
	return "seasonal_challenges"
}

func (UserSeasonalChallengeProgress) TableName() string {
	return "user_seasonal_challenge_progress"
}
