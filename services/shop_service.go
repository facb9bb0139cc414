// services/shop_service.go - Avatar Shop Purchase Logic
package services

import (
	"errors"
	"time"
	"wellspring/models"

	"gorm.io/gorm"
)

type ShopService struct {
	db *gorm.DB
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

// PurchaseResult describes the state after a successful purchase
type PurchaseResult struct {
	ItemName   string
	NewBalance int
}

// Purchase validates and executes an atomic buy of a shop item. All checks
// and writes run in a single transaction: the stock decrement and credit
// debit use guarded updates so concurrent purchases of the last limited
// unit resolve to one winner.
func (s *ShopService) Purchase(userID, itemID uint) (*PurchaseResult, error) {
	var result *PurchaseResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.ShopItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if !item.IsAvailable {
			return ErrItemUnavailable
		}

		if item.IsLimited && item.LimitedRemaining <= 0 {
			return ErrItemSoldOut
		}

		var owned int64
		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id = ?", userID, itemID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrAlreadyOwned
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.Level < item.RequiredLevel {
			return &LevelTooLowError{Required: item.RequiredLevel, Actual: user.Level}
		}

		if user.Credits < item.Price {
			return &InsufficientCreditsError{Required: item.Price, Available: user.Credits}
		}

		if item.IsLimited {
			res := tx.Model(&models.ShopItem{}).
				Where("id = ? AND limited_remaining > 0", item.ID).
				UpdateColumn("limited_remaining", gorm.Expr("limited_remaining - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Another transaction took the last unit
				return ErrItemSoldOut
			}
		}

		res := tx.Model(&models.User{}).
			Where("id = ? AND credits >= ?", userID, item.Price).
			UpdateColumn("credits", gorm.Expr("credits - ?", item.Price))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &InsufficientCreditsError{Required: item.Price, Available: user.Credits}
		}

		userItem := models.UserItem{
			UserID:       userID,
			ItemID:       item.ID,
			PurchaseDate: time.Now(),
			IsActive:     true,
		}
		if err := tx.Create(&userItem).Error; err != nil {
			return err
		}

		ledgerEntry := models.NewPurchaseTransaction(userID, item.ID, item.Price)
		if err := tx.Create(&ledgerEntry).Error; err != nil {
			return err
		}

		// Avatar-typed items grant an inactive instance the user can equip later
		if item.AvatarID != nil {
			userAvatar := models.UserAvatar{
				UserID:     userID,
				AvatarID:   *item.AvatarID,
				IsActive:   false,
				Level:      1,
				XP:         0,
				AcquiredAt: time.Now(),
			}
			if err := tx.Create(&userAvatar).Error; err != nil {
				return err
			}
		}

		result = &PurchaseResult{
			ItemName:   item.Name,
			NewBalance: user.Credits - item.Price,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetCatalog returns the purchasable items, most recent first
func (s *ShopService) GetCatalog() ([]models.ShopItem, error) {
	var items []models.ShopItem
	err := s.db.Where("is_available = ?", true).
		Preload("Avatar").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
