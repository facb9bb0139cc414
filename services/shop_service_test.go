package services

import (
	"testing"
	"wellspring/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseDebitsBalanceAndWritesLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewShopService(db)

	user := createUser(t, db, "alice", 600, 5)
	item := createItem(t, db, models.ShopItem{
		Name:        "Focus Badge",
		Price:       150,
		IsAvailable: true,
	})

	result, err := svc.Purchase(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Focus Badge", result.ItemName)
	assert.Equal(t, 450, result.NewBalance)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 450, updated.Credits)

	var entries []models.CreditTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, -150, entries[0].Amount)
	assert.Equal(t, models.TransactionPurchase, entries[0].Type)
	require.NotNil(t, entries[0].ReferenceID)
	assert.Equal(t, item.ID, *entries[0].ReferenceID)
}

func TestPurchaseSameItemTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewShopService(db)

	user := createUser(t, db, "alice", 1000, 5)
	item := createItem(t, db, models.ShopItem{Name: "Sticker", Price: 100, IsAvailable: true})

	_, err := svc.Purchase(user.ID, item.ID)
	require.NoError(t, err)

	_, err = svc.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	// Balance unchanged by the failed second attempt
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 900, updated.Credits)

	var count int64
	require.NoError(t, db.Model(&models.CreditTransaction{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPurchaseValidationOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewShopService(db)

	user := createUser(t, db, "alice", 50, 2)

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.Purchase(user.ID, 9999)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		item := createItem(t, db, models.ShopItem{Name: "Hidden", Price: 10, IsAvailable: false})

		// The false flag must survive the insert
		var stored models.ShopItem
		require.NoError(t, db.First(&stored, item.ID).Error)
		assert.False(t, stored.IsAvailable)

		_, err := svc.Purchase(user.ID, item.ID)
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("sold out item", func(t *testing.T) {
		item := createItem(t, db, models.ShopItem{
			Name: "Gone", Price: 10, IsAvailable: true, IsLimited: true, LimitedRemaining: 0,
		})
		_, err := svc.Purchase(user.ID, item.ID)
		assert.ErrorIs(t, err, ErrItemSoldOut)
	})

	t.Run("level gate", func(t *testing.T) {
		item := createItem(t, db, models.ShopItem{
			Name: "Elite Frame", Price: 10, IsAvailable: true, RequiredLevel: 10,
		})
		_, err := svc.Purchase(user.ID, item.ID)

		var levelErr *LevelTooLowError
		require.ErrorAs(t, err, &levelErr)
		assert.Equal(t, 10, levelErr.Required)
		assert.Equal(t, 2, levelErr.Actual)
	})

	t.Run("insufficient credits", func(t *testing.T) {
		item := createItem(t, db, models.ShopItem{
			Name: "Pricey", Price: 500, IsAvailable: true, RequiredLevel: 1,
		})
		_, err := svc.Purchase(user.ID, item.ID)

		var creditsErr *InsufficientCreditsError
		require.ErrorAs(t, err, &creditsErr)
		assert.Equal(t, 500, creditsErr.Required)
		assert.Equal(t, 50, creditsErr.Available)
	})

	// No failed attempt touched the wallet
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, 50, updated.Credits)
}

func TestPurchaseLastLimitedUnit(t *testing.T) {
	db := newTestDB(t)
	svc := NewShopService(db)

	buyer := createUser(t, db, "alice", 600, 5)
	rival := createUser(t, db, "bob", 600, 5)
	item := createItem(t, db, models.ShopItem{
		Name:             "Founders Frame",
		Price:            500,
		IsAvailable:      true,
		IsLimited:        true,
		LimitedRemaining: 1,
		RequiredLevel:    3,
	})

	result, err := svc.Purchase(buyer.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.NewBalance)

	var updatedItem models.ShopItem
	require.NoError(t, db.First(&updatedItem, item.ID).Error)
	assert.Equal(t, 0, updatedItem.LimitedRemaining)

	_, err = svc.Purchase(rival.ID, item.ID)
	assert.ErrorIs(t, err, ErrItemSoldOut)
}

func TestPurchaseAvatarItemGrantsInactiveInstance(t *testing.T) {
	db := newTestDB(t)
	svc := NewShopService(db)

	user := createUser(t, db, "alice", 1000, 5)

	avatar := models.Avatar{Name: "Zen Panda", ImageURL: "/avatars/zen-panda.png"}
	require.NoError(t, db.Create(&avatar).Error)

	item := createItem(t, db, models.ShopItem{
		Name:        "Zen Panda Avatar",
		Price:       300,
		IsAvailable: true,
		AvatarID:    &avatar.ID,
	})

	_, err := svc.Purchase(user.ID, item.ID)
	require.NoError(t, err)

	var instances []models.UserAvatar
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&instances).Error)
	require.Len(t, instances, 1)
	assert.Equal(t, avatar.ID, instances[0].AvatarID)
	assert.False(t, instances[0].IsActive)
	assert.Equal(t, 1, instances[0].Level)
	assert.Equal(t, 0, instances[0].XP)
}
