// models/achievement.go
package models

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"` // Fitness, Mindfulness, Streak, Social, Special
	Tier        string `gorm:"not null" json:"tier"`           // Bronze, Silver, Gold, Platinum
	Icon        string `json:"icon"`

	// Rewards
	XPReward     int `gorm:"default:0" json:"xp_reward"`
	CreditReward int `gorm:"default:0" json:"credit_reward"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievements_pair" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievements_pair" json:"achievement_id"`
	AwardedAt     time.Time `json:"awarded_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
