package services

import (
	"testing"
	"wellspring/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserAvatar(t *testing.T, db *gorm.DB, userID uint, image string) models.UserAvatar {
	t.Helper()

	avatar := models.Avatar{Name: "Avatar " + image, ImageURL: image}
	require.NoError(t, db.Create(&avatar).Error)

	instance := models.UserAvatar{UserID: userID, AvatarID: avatar.ID, Level: 1}
	require.NoError(t, db.Create(&instance).Error)
	return instance
}

func TestSetActiveKeepsSingleActiveAvatar(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvatarService(db)

	user := createUser(t, db, "alice", 0, 1)
	first := seedUserAvatar(t, db, user.ID, "/avatars/one.png")
	second := seedUserAvatar(t, db, user.ID, "/avatars/two.png")

	require.NoError(t, svc.SetActive(user.ID, first.ID))
	require.NoError(t, svc.SetActive(user.ID, second.ID))

	var active []models.UserAvatar
	require.NoError(t, db.Where("user_id = ? AND is_active = ?", user.ID, true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	// Profile mirrors the equipped avatar's image
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "/avatars/two.png", updated.ActiveAvatarImage)
}

func TestSetActiveRejectsForeignAvatar(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvatarService(db)

	owner := createUser(t, db, "alice", 0, 1)
	intruder := createUser(t, db, "bob", 0, 1)
	instance := seedUserAvatar(t, db, owner.ID, "/avatars/one.png")

	err := svc.SetActive(intruder.ID, instance.ID)
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}

func TestAddFeature(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvatarService(db)

	user := createUser(t, db, "alice", 0, 1)
	instance := seedUserAvatar(t, db, user.ID, "/avatars/one.png")

	feature := models.AvatarFeature{Name: "Sunglasses", Category: "glasses"}
	require.NoError(t, db.Create(&feature).Error)

	require.NoError(t, svc.AddFeature(user.ID, instance.ID, feature.ID))

	// Second attach of the same pair is rejected
	err := svc.AddFeature(user.ID, instance.ID, feature.ID)
	assert.ErrorIs(t, err, ErrAlreadyAttached)

	var count int64
	require.NoError(t, db.Model(&models.UserAvatarFeature{}).
		Where("user_avatar_id = ? AND feature_id = ?", instance.ID, feature.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddFeatureMissingFeature(t *testing.T) {
	db := newTestDB(t)
	svc := NewAvatarService(db)

	user := createUser(t, db, "alice", 0, 1)
	instance := seedUserAvatar(t, db, user.ID, "/avatars/one.png")

	err := svc.AddFeature(user.ID, instance.ID, 9999)
	assert.ErrorIs(t, err, ErrFeatureNotFound)
}
