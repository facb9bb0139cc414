// models/avatar.go - Avatar & Cosmetic Feature Data Models
package models

import (
	"time"
)

// Avatar is a base avatar definition from the catalog
type Avatar struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:255"`
	Rarity      string    `json:"rarity" gorm:"default:'common';size:20"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserAvatar is a user's acquired instance of a base avatar
type UserAvatar struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AvatarID   uint      `json:"avatar_id" gorm:"not null;index"`
	Avatar     *Avatar   `json:"avatar,omitempty" gorm:"foreignKey:AvatarID"`
	IsActive   bool      `json:"is_active" gorm:"default:false"`
	Level      int       `json:"level" gorm:"default:1"`
	XP         int       `json:"xp" gorm:"default:0"`
	AcquiredAt time.Time `json:"acquired_at"`

	Features []UserAvatarFeature `json:"features,omitempty" gorm:"foreignKey:UserAvatarID"`
}

// AvatarFeature is a cosmetic that can be attached to an avatar instance
type AvatarFeature struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Category  string    `json:"category" gorm:"size:50"` // hat, glasses, background, ...
	ImageURL  string    `json:"image_url" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}

// UserAvatarFeature links a feature to a user's avatar instance
type UserAvatarFeature struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserAvatarID uint           `json:"user_avatar_id" gorm:"not null;uniqueIndex:idx_avatar_features_pair"`
	UserAvatar   *UserAvatar    `json:"user_avatar,omitempty" gorm:"foreignKey:UserAvatarID"`
	FeatureID    uint           `json:"feature_id" gorm:"not null;uniqueIndex:idx_avatar_features_pair"`
	Feature      *AvatarFeature `json:"feature,omitempty" gorm:"foreignKey:FeatureID"`
	IsActive     bool           `json:"is_active"`
	PurchaseDate time.Time      `json:"purchase_date"`
}

func (Avatar) TableName() string {
	return "avatars"
}

func (UserAvatar) TableName() string {
	return "user_avatars"
}

func (AvatarFeature) TableName() string {
	return "avatar_features"
}

func (UserAvatarFeature) TableName() string {
	return "user_avatar_features"
}
