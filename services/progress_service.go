// services/progress_service.go - Quest, Streak & Seasonal Challenge Logic
package services

import (
	"errors"
	"math"
	"time"
	"wellspring/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// QuestProgressResult describes a user's progress after an increment
type QuestProgressResult struct {
	Progress models.UserQuestProgress
	Quest    models.Quest
	Percent  int
}

// IncrementQuest advances a user's counter on a quest. Progress records are
// created lazily on first interaction; a completed quest rejects further
// increments.
func (s *ProgressService) IncrementQuest(userID, questID uint, by int) (*QuestProgressResult, error) {
	if by <= 0 {
		return nil, ErrInvalidIncrement
	}

	var result *QuestProgressResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quest models.Quest
		if err := tx.First(&quest, questID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestNotFound
			}
			return err
		}

		now := time.Now()
		start, end := activeWindow(quest.StartDate, quest.EndDate)
		if !quest.IsActive || now.Before(start) || now.After(end) {
			return ErrQuestNotActive
		}

		var progress models.UserQuestProgress
		err := tx.Where("user_id = ? AND quest_id = ?", userID, questID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserQuestProgress{
				UserID:  userID,
				QuestID: questID,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if progress.IsCompleted {
			return ErrAlreadyCompleted
		}

		progress.CurrentValue += by
		if progress.CurrentValue >= quest.TargetValue {
			progress.IsCompleted = true
			completedAt := now
			progress.CompletedAt = &completedAt

			if err := grantReward(tx, userID, quest.XPReward, quest.CreditReward,
				"quest completed: "+quest.Title); err != nil {
				return err
			}
		}

		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		result = &QuestProgressResult{
			Progress: progress,
			Quest:    quest,
			Percent:  ProgressPercent(progress.CurrentValue, quest.TargetValue),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// StreakResult describes a streak after an update attempt
type StreakResult struct {
	Streak      models.Streak
	IsNewRecord bool
	Updated     bool
}

// UpdateStreak advances a user's daily streak for one activity type.
// Comparison is at calendar-date granularity: a repeat on the same day is
// a no-op, the day after the last update extends the streak, and any
// larger gap (or a first-ever update) restarts it at 1.
func (s *ProgressService) UpdateStreak(userID uint, streakType models.StreakType) (*StreakResult, error) {
	if !streakType.Valid() {
		return nil, ErrInvalidStreakType
	}

	var result *StreakResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		today := dateOnly(time.Now())

		var streak models.Streak
		err := tx.Where("user_id = ? AND type = ?", userID, streakType).
			First(&streak).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			streak = models.Streak{
				UserID:         userID,
				Type:           streakType,
				CurrentStreak:  1,
				LongestStreak:  1,
				LastUpdateDate: today,
			}
			if err := tx.Create(&streak).Error; err != nil {
				return err
			}
			// A brand-new streak is not reported as a record
			result = &StreakResult{Streak: streak, IsNewRecord: false, Updated: true}
			return nil
		} else if err != nil {
			return err
		}

		last := dateOnly(streak.LastUpdateDate)
		if last.Equal(today) {
			result = &StreakResult{Streak: streak, IsNewRecord: false, Updated: false}
			return nil
		}

		if last.AddDate(0, 0, 1).Equal(today) {
			streak.CurrentStreak++
		} else {
			streak.CurrentStreak = 1
		}

		isNewRecord := streak.CurrentStreak > streak.LongestStreak
		if isNewRecord {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastUpdateDate = today

		if err := tx.Save(&streak).Error; err != nil {
			return err
		}

		result = &StreakResult{Streak: streak, IsNewRecord: isNewRecord, Updated: true}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChallengeJoinResult describes a user's fresh challenge enrollment
type ChallengeJoinResult struct {
	Progress  models.UserSeasonalChallengeProgress
	Challenge models.SeasonalChallenge
}

// JoinChallenge enrolls a user in a seasonal challenge. A user joins a
// given challenge at most once, and only while the challenge window is
// open.
func (s *ProgressService) JoinChallenge(userID, challengeID uint) (*ChallengeJoinResult, error) {
	var result *ChallengeJoinResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var challenge models.SeasonalChallenge
		if err := tx.First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChallengeNotFound
			}
			return err
		}

		now := time.Now()
		if !challenge.IsActive || now.Before(challenge.StartDate) || now.After(challenge.EndDate) {
			return ErrChallengeNotActive
		}

		var joined int64
		if err := tx.Model(&models.UserSeasonalChallengeProgress{}).
			Where("user_id = ? AND challenge_id = ?", userID, challengeID).
			Count(&joined).Error; err != nil {
			return err
		}
		if joined > 0 {
			return ErrAlreadyJoined
		}

		progress := models.UserSeasonalChallengeProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			JoinedAt:    now,
		}
		if err := tx.Create(&progress).Error; err != nil {
			return err
		}

		result = &ChallengeJoinResult{Progress: progress, Challenge: challenge}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetQuests returns active quests with the user's progress preloaded
func (s *ProgressService) GetQuests(userID uint) ([]models.Quest, map[uint]models.UserQuestProgress, error) {
	var quests []models.Quest
	if err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&quests).Error; err != nil {
		return nil, nil, err
	}

	var progress []models.UserQuestProgress
	if err := s.db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, nil, err
	}

	progressByQuest := make(map[uint]models.UserQuestProgress, len(progress))
	for _, p := range progress {
		progressByQuest[p.QuestID] = p
	}

	return quests, progressByQuest, nil
}

// GetStreaks returns all of the user's streaks
func (s *ProgressService) GetStreaks(userID uint) ([]models.Streak, error) {
	var streaks []models.Streak
	err := s.db.Where("user_id = ?", userID).Order("type").Find(&streaks).Error
	return streaks, err
}

// GetChallenges returns active seasonal challenges with the user's
// enrollment, if any
func (s *ProgressService) GetChallenges(userID uint) ([]models.SeasonalChallenge, map[uint]models.UserSeasonalChallengeProgress, error) {
	var challenges []models.SeasonalChallenge
	if err := s.db.Where("is_active = ?", true).Order("start_date DESC").Find(&challenges).Error; err != nil {
		return nil, nil, err
	}

	var progress []models.UserSeasonalChallengeProgress
	if err := s.db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, nil, err
	}

	progressByChallenge := make(map[uint]models.UserSeasonalChallengeProgress, len(progress))
	for _, p := range progress {
		progressByChallenge[p.ChallengeID] = p
	}

	return challenges, progressByChallenge, nil
}

// ProgressPercent reports completion as a whole percentage clamped to
// [0, 100]. A non-positive target counts as already met, never a division
// by zero.
func ProgressPercent(current, target int) int {
	if target <= 0 {
		return 100
	}
	percent := int(math.Round(float64(current) / float64(target) * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// activeWindow resolves a quest's validity window, defaulting unset bounds
// to the epoch and one year out
func activeWindow(start, end *time.Time) (time.Time, time.Time) {
	from := time.Unix(0, 0)
	if start != nil {
		from = *start
	}

	to := from.AddDate(1, 0, 0)
	if start == nil {
		to = time.Now().AddDate(1, 0, 0)
	}
	if end != nil {
		to = *end
	}

	return from, to
}

// dateOnly truncates a timestamp to its UTC calendar date
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// grantReward credits a completion reward and appends the matching ledger
// entry. A zero reward writes nothing.
func grantReward(tx *gorm.DB, userID uint, xp, credits int, reason string) error {
	if xp > 0 {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("xp", gorm.Expr("xp + ?", xp)).Error; err != nil {
			return err
		}
	}

	if credits > 0 {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("credits", gorm.Expr("credits + ?", credits)).Error; err != nil {
			return err
		}

		ledgerEntry := models.NewRewardTransaction(userID, credits, reason)
		if err := tx.Create(&ledgerEntry).Error; err != nil {
			return err
		}
	}

	return nil
}
