package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrInvalidStore      = errors.New("tax: invalid store id")
	ErrInvalidPercentage = errors.New("tax: percentage must be between 0 and 100")
)

// UpdatePreferenceRequest toggles tax and optionally changes the rate. A nil
// Percentage keeps the stored rate.
type UpdatePreferenceRequest struct {
	Enabled    bool     `json:"enabled"`
	Percentage *float64 `json:"percentage"`
}

// Service manages tax preferences.
type Service interface {
	// Preference returns the store's preference; stores that never configured
	// tax get the zero preference (disabled, 0 percent).
	Preference(ctx context.Context, storeID snowflake.ID) (*Preference, error)
	UpdatePreference(ctx context.Context, storeID snowflake.ID, req UpdatePreferenceRequest) (*Preference, error)
}

// Repository persists tax preferences.
type Repository interface {
	FindByStoreID(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*Preference, error)
	Upsert(ctx context.Context, db *gorm.DB, pref *Preference) error
}
