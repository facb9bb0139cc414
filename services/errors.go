// services/errors.go - Typed failures surfaced by the gamification services
package services

import (
	"errors"
	"fmt"
)

// Not-found failures (handlers map these to 404)
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrAvatarNotFound      = errors.New("avatar not found")
	ErrFeatureNotFound     = errors.New("feature not found")
	ErrQuestNotFound       = errors.New("quest not found")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrAchievementNotFound = errors.New("achievement not found")
)

// Catalog-state and temporal gates
var (
	ErrItemUnavailable    = errors.New("item is not available")
	ErrItemSoldOut        = errors.New("item is sold out")
	ErrQuestNotActive     = errors.New("quest is not active")
	ErrChallengeNotActive = errors.New("challenge is not active")
)

// Duplicate-operation rejections. These report a rejected duplicate rather
// than silently succeeding.
var (
	ErrAlreadyOwned     = errors.New("item already owned")
	ErrAlreadyAttached  = errors.New("feature already attached to this avatar")
	ErrAlreadyJoined    = errors.New("challenge already joined")
	ErrAlreadyAwarded   = errors.New("achievement already awarded")
	ErrAlreadyCompleted = errors.New("quest already completed")
)

// Malformed input
var (
	ErrInvalidIncrement  = errors.New("increment must be positive")
	ErrInvalidStreakType = errors.New("invalid streak type")
)

// LevelTooLowError reports both the required and the actual level so the
// client can render a precise message.
type LevelTooLowError struct {
	Required int
	Actual   int
}

func (e *LevelTooLowError) Error() string {
	return fmt.Sprintf("level %d required, current level is %d", e.Required, e.Actual)
}

// InsufficientCreditsError reports both the required and the available
// balance.
type InsufficientCreditsError struct {
	Required  int
	Available int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: %d required, %d available", e.Required, e.Available)
}
