// Package domain contains the per-store tax preference.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Preference is a store's standing tax configuration. A disabled preference
// keeps its percentage so re-enabling restores the previous rate.
type Preference struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id,string"`
	StoreID    snowflake.ID `gorm:"not null;uniqueIndex" json:"store_id,string"`
	Enabled    bool         `gorm:"not null;default:false" json:"enabled"`
	Percentage float64      `gorm:"not null;default:0" json:"percentage"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Preference) TableName() string { return "tax_preferences" }
