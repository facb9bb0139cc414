// models/shop.go - Avatar Shop & Credit Ledger Data Models
package models

import (
	"time"
)

// ShopItem represents a purchasable catalog entry
type ShopItem struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null;size:100"`
	Description      string    `json:"description" gorm:"type:text"`
	Category         string    `json:"category" gorm:"size:50;index"` // avatar, feature, boost
	Price            int       `json:"price" gorm:"not null"`
	Currency         string    `json:"currency" gorm:"default:'credits';size:20"`
	Rarity           string    `json:"rarity" gorm:"default:'common';size:20"`
	ImageURL         string    `json:"image_url" gorm:"size:255"`
	// No default tag: gorm drops zero-valued defaulted fields from inserts,
	// which would store an unavailable item as available
	IsAvailable      bool      `json:"is_available"`
	IsLimited        bool      `json:"is_limited" gorm:"default:false"`
	LimitedRemaining int       `json:"limited_remaining" gorm:"default:0"`
	RequiredLevel    int       `json:"required_level" gorm:"default:1"`
	AvatarID         *uint     `json:"avatar_id" gorm:"index"` // set when the item grants an avatar
	Avatar           *Avatar   `json:"avatar,omitempty" gorm:"foreignKey:AvatarID"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserItem records that a user owns a shop item
type UserItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_items_pair"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ItemID       uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_user_items_pair"`
	Item         *ShopItem `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	PurchaseDate time.Time `json:"purchase_date"`
	IsActive     bool      `json:"is_active"`
	IsUsed       bool      `json:"is_used" gorm:"default:false"`
}

// TransactionType tags the kind of event a ledger entry refers to
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionReward   TransactionType = "reward"
)

// Transaction status constants
const (
	TransactionCompleted = "completed"
	TransactionReversed  = "reversed"
)

// CreditTransaction is an append-only record of a balance change.
// Rows are only created through the typed constructors below so the
// reference fields always match the transaction type.
type CreditTransaction struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	User          *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Amount        int             `json:"amount" gorm:"not null"` // signed, negative for debits
	Type          TransactionType `json:"type" gorm:"not null;size:20;index"`
	ReferenceType string          `json:"reference_type" gorm:"size:50"`
	ReferenceID   *uint           `json:"reference_id"`
	Reason        string          `json:"reason" gorm:"size:255"`
	Status        string          `json:"status" gorm:"default:'completed';size:20"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewPurchaseTransaction builds the debit entry for a shop purchase.
func NewPurchaseTransaction(userID, itemID uint, price int) CreditTransaction {
	id := itemID
	return CreditTransaction{
		UserID:        userID,
		Amount:        -price,
		Type:          TransactionPurchase,
		ReferenceType: "shop_item",
		ReferenceID:   &id,
		Status:        TransactionCompleted,
	}
}

// NewRewardTransaction builds the credit entry for a reward grant
// (signup bonus, achievement reward, challenge prize).
func NewRewardTransaction(userID uint, amount int, reason string) CreditTransaction {
	return CreditTransaction{
		UserID:        userID,
		Amount:        amount,
		Type:          TransactionReward,
		ReferenceType: "reward",
		Reason:        reason,
		Status:        TransactionCompleted,
	}
}

func (ShopItem) TableName() string {
	return "shop_items"
}

func (UserItem) TableName() string {
	return "user_items"
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
