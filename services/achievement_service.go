// services/achievement_service.go - Idempotent Achievement Awarding
package services

import (
	"errors"
	"time"
	"wellspring/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// AwardResult carries the freshly created award and its definition
type AwardResult struct {
	Award       models.UserAchievement
	Achievement models.Achievement
}

// Award grants a named achievement to a user exactly once. A repeat call
// is rejected, never double-counted. The achievement's rewards are
// credited alongside the award record in the same transaction.
func (s *AchievementService) Award(userID, achievementID uint) (*AwardResult, error) {
	var result *AwardResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var achievement models.Achievement
		if err := tx.First(&achievement, achievementID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAchievementNotFound
			}
			return err
		}

		var awarded int64
		if err := tx.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", userID, achievementID).
			Count(&awarded).Error; err != nil {
			return err
		}
		if awarded > 0 {
			return ErrAlreadyAwarded
		}

		award := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievementID,
			AwardedAt:     time.Now(),
		}
		if err := tx.Create(&award).Error; err != nil {
			return err
		}

		if err := grantReward(tx, userID, achievement.XPReward, achievement.CreditReward,
			"achievement unlocked: "+achievement.Name); err != nil {
			return err
		}

		result = &AwardResult{Award: award, Achievement: achievement}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserAchievements returns every achievement definition together with
// the user's unlock records
func (s *AchievementService) GetUserAchievements(userID uint) ([]models.Achievement, []models.UserAchievement, error) {
	var unlocked []models.UserAchievement
	if err := s.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&unlocked).Error; err != nil {
		return nil, nil, err
	}

	var all []models.Achievement
	if err := s.db.Find(&all).Error; err != nil {
		return nil, nil, err
	}

	return all, unlocked, nil
}
