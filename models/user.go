// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Department  string  `json:"department"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`

	// Progression & wallet
	Level   int `gorm:"default:1" json:"level"`
	XP      int `gorm:"default:0" json:"xp"`
	Credits int `gorm:"default:0" json:"credits"`

	// Mirrored from the active avatar so profile reads skip a join
	ActiveAvatarImage string `json:"active_avatar_image"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Items        []UserItem        `gorm:"foreignKey:UserID" json:"items,omitempty"`
	Avatars      []UserAvatar      `gorm:"foreignKey:UserID" json:"avatars,omitempty"`
}

func (User) TableName() string {
	return "users"
}
