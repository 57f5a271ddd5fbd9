// Package domain contains persistence models for subscriptions and upgrade
// transactions.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Tier is the subscription level gating template access and brand color
// customization.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

func (t Tier) Valid() bool {
	return t == TierFree || t == TierPremium
}

// SubscriptionStatus represents subscription lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
	SubscriptionStatusExpired  SubscriptionStatus = "EXPIRED"
)

// Subscription captures a store's billing agreement.
type Subscription struct {
	ID        snowflake.ID       `gorm:"primaryKey"`
	StoreID   snowflake.ID       `gorm:"not null;index"`
	Tier      Tier               `gorm:"type:text;not null;default:'free'"`
	Status    SubscriptionStatus `gorm:"type:text;not null;default:'ACTIVE'"`
	StartAt   time.Time          `gorm:"not null"`
	ExpiresAt *time.Time         `gorm:""`
	Metadata  datatypes.JSONMap  `gorm:"type:jsonb"`
	CreatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Subscription) TableName() string { return "subscriptions" }

// Active reports whether the subscription currently grants its tier.
func (s Subscription) Active(now time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return false
	}
	return true
}

// TransactionStatus represents upgrade payment review states.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusApproved TransactionStatus = "APPROVED"
	TransactionStatusRejected TransactionStatus = "REJECTED"
)

// Transaction is a store's upgrade payment awaiting admin review.
type Transaction struct {
	ID         snowflake.ID      `gorm:"primaryKey"`
	StoreID    snowflake.ID      `gorm:"not null;index"`
	Amount     int64             `gorm:"not null"`
	Currency   string            `gorm:"type:text;not null"`
	Status     TransactionStatus `gorm:"type:text;not null;default:'PENDING'"`
	ProofURL   *string           `gorm:"type:text"`
	Note       *string           `gorm:"type:text"`
	ReviewedAt *time.Time        `gorm:""`
	CreatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Transaction) TableName() string { return "subscription_transactions" }
