package services

import (
	"log"
	"time"
	"wellspring/database"
	"wellspring/models"

	"gorm.io/gorm"
)

// CleanupService handles background maintenance tasks
type CleanupService struct {
	db       *gorm.DB
	interval time.Duration
	stop     chan struct{}
}

var cleanupService *CleanupService

// InitCleanupService initializes the singleton cleanup service.
func InitCleanupService() {
	cleanupService = NewCleanupService(database.GetDB())
	cleanupService.Start()
}

// GetCleanupService returns the initialized cleanup service.
func GetCleanupService() *CleanupService {
	return cleanupService
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{
		db:       db,
		interval: time.Hour,
		stop:     make(chan struct{}),
	}
}

// Start runs the cleanup loop in the background.
func (s *CleanupService) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop stops the cleanup loop.
func (s *CleanupService) Stop() {
	close(s.stop)
}

func (s *CleanupService) runOnce() {
	if err := s.CloseExpiredChallenges(); err != nil {
		log.Printf("Error closing expired challenges: %v", err)
	}
	if err := s.CleanupStaleGuests(); err != nil {
		log.Printf("Error cleaning up stale guests: %v", err)
	}
}

// CloseExpiredChallenges deactivates seasonal challenges past their end date
func (s *CleanupService) CloseExpiredChallenges() error {
	res := s.db.Model(&models.SeasonalChallenge{}).
		Where("is_active = ? AND end_date < ?", true, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		log.Printf("✅ Closed %d expired seasonal challenges", res.RowsAffected)
	}
	return nil
}

// CleanupStaleGuests removes guest accounts idle for 30+ days that never
// purchased anything. Purchasers are kept so their ledger history survives;
// for the rest, every dependent row (including the welcome-bonus ledger
// entry) goes with the account, in dependency order so foreign keys hold.
func (s *CleanupService) CleanupStaleGuests() error {
	cutoff := time.Now().AddDate(0, 0, -30)

	var staleIDs []uint
	if err := s.db.Model(&models.User{}).
		Where("is_guest = ? AND last_login < ? AND id NOT IN (SELECT DISTINCT user_id FROM user_items)",
			true, cutoff).
		Pluck("id", &staleIDs).Error; err != nil {
		log.Printf("Error finding stale guest accounts: %v", err)
		return err
	}

	if len(staleIDs) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_avatar_id IN (SELECT id FROM user_avatars WHERE user_id IN ?)", staleIDs).
			Delete(&models.UserAvatarFeature{}).Error; err != nil {
			return err
		}

		for _, model := range []interface{}{
			&models.UserAvatar{},
			&models.Streak{},
			&models.UserQuestProgress{},
			&models.UserSeasonalChallengeProgress{},
			&models.UserAchievement{},
			&models.CreditTransaction{},
		} {
			if err := tx.Where("user_id IN ?", staleIDs).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Where("id IN ?", staleIDs).Delete(&models.User{}).Error
	})
	if err != nil {
		log.Printf("Error deleting stale guest accounts: %v", err)
		return err
	}

	log.Printf("✅ Cleaned up %d stale guest accounts", len(staleIDs))
	return nil
}
