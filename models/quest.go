// models/quest.go - Quest Data Models
package models

import (
	"time"
)

// Quest interval constants
type QuestInterval string

const (
	QuestIntervalDaily  QuestInterval = "daily"
	QuestIntervalWeekly QuestInterval = "weekly"
)

// Quest is a bounded-progress task with a numeric target
type Quest struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Title        string        `json:"title" gorm:"not null;size:100"`
	Description  string        `json:"description" gorm:"type:text"`
	Category     string        `json:"category" gorm:"size:50;index"` // fitness, mindfulness, social
	TargetValue  int           `json:"target_value" gorm:"not null"`
	Interval     QuestInterval `json:"interval" gorm:"default:'daily';size:20"`
	XPReward     int           `json:"xp_reward" gorm:"default:0"`
	CreditReward int           `json:"credit_reward" gorm:"default:0"`
	StartDate    *time.Time    `json:"start_date"`
	EndDate      *time.Time    `json:"end_date"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// UserQuestProgress tracks a user's counter against a quest.
// CurrentValue never decreases and IsCompleted never reverts.
type UserQuestProgress struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_quest_progress_pair"`
	User         *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuestID      uint       `json:"quest_id" gorm:"not null;uniqueIndex:idx_quest_progress_pair"`
	Quest        *Quest     `json:"quest,omitempty" gorm:"foreignKey:QuestID"`
	CurrentValue int        `json:"current_value" gorm:"default:0"`
	IsCompleted  bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Quest) TableName() string {
	return "quests"
}

func (UserQuestProgress) TableName() string {
	return "user_quest_progress"
}
