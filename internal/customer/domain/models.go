// Package domain contains persistence models for customers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CustomerStatus marks whether a customer shows up in pickers.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

// Customer is a store-scoped billing contact.
type Customer struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id,string"`
	StoreID   snowflake.ID   `gorm:"not null;index" json:"store_id,string"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Address   string         `gorm:"type:text" json:"address"`
	Phone     string         `gorm:"type:text" json:"phone"`
	Email     string         `gorm:"type:text" json:"email"`
	Status    CustomerStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
