// services/avatar_service.go - Avatar Equip & Feature Attachment Logic
package services

import (
	"errors"
	"time"
	"wellspring/models"

	"gorm.io/gorm"
)

type AvatarService struct {
	db *gorm.DB
}

func NewAvatarService(db *gorm.DB) *AvatarService {
	return &AvatarService{db: db}
}

// SetActive makes one of the user's avatar instances the active one.
// Every instance is switched off before the target is switched on, so at
// most one avatar stays active per user even under concurrent calls.
func (s *AvatarService) SetActive(userID, userAvatarID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var userAvatar models.UserAvatar
		if err := tx.Preload("Avatar").
			Where("id = ? AND user_id = ?", userAvatarID, userID).
			First(&userAvatar).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAvatarNotFound
			}
			return err
		}

		if err := tx.Model(&models.UserAvatar{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.UserAvatar{}).
			Where("id = ?", userAvatar.ID).
			Update("is_active", true).Error; err != nil {
			return err
		}

		// Mirror the avatar image onto the user's profile
		image := ""
		if userAvatar.Avatar != nil {
			image = userAvatar.Avatar.ImageURL
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("active_avatar_image", image).Error
	})
}

// AddFeature attaches a cosmetic feature to one of the user's avatar
// instances. A feature attaches to a given instance at most once.
func (s *AvatarService) AddFeature(userID, userAvatarID, featureID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var userAvatar models.UserAvatar
		if err := tx.Where("id = ? AND user_id = ?", userAvatarID, userID).
			First(&userAvatar).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAvatarNotFound
			}
			return err
		}

		var feature models.AvatarFeature
		if err := tx.First(&feature, featureID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeatureNotFound
			}
			return err
		}

		var attached int64
		if err := tx.Model(&models.UserAvatarFeature{}).
			Where("user_avatar_id = ? AND feature_id = ?", userAvatarID, featureID).
			Count(&attached).Error; err != nil {
			return err
		}
		if attached > 0 {
			return ErrAlreadyAttached
		}

		attachment := models.UserAvatarFeature{
			UserAvatarID: userAvatarID,
			FeatureID:    featureID,
			IsActive:     true,
			PurchaseDate: time.Now(),
		}
		return tx.Create(&attachment).Error
	})
}

// GetUserAvatars returns the user's avatar instances with base definitions
// and attached features preloaded
func (s *AvatarService) GetUserAvatars(userID uint) ([]models.UserAvatar, error) {
	var avatars []models.UserAvatar
	err := s.db.Where("user_id = ?", userID).
		Preload("Avatar").
		Preload("Features").
		Preload("Features.Feature").
		Order("acquired_at DESC").
		Find(&avatars).Error
	return avatars, err
}
