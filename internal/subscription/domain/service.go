package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CreateTransactionRequest struct {
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	ProofURL *string `json:"proof_url"`
	Note     *string `json:"note"`
}

type ReviewTransactionRequest struct {
	ID      string
	Approve bool
	Note    *string
	// PremiumDuration controls how long an approved upgrade lasts.
	// Zero means the service default.
	PremiumDuration time.Duration
}

type ListSubscriptionsRequest struct {
	StoreID string
	Status  string
}

type ListTransactionsRequest struct {
	StoreID string
	Status  string
}

type SubscriptionResponse struct {
	ID        string             `json:"id"`
	StoreID   string             `json:"store_id"`
	Tier      Tier               `json:"tier"`
	Status    SubscriptionStatus `json:"status"`
	StartAt   time.Time          `json:"start_at"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type TransactionResponse struct {
	ID         string            `json:"id"`
	StoreID    string            `json:"store_id"`
	Amount     int64             `json:"amount"`
	Currency   string            `json:"currency"`
	Status     TransactionStatus `json:"status"`
	ProofURL   *string           `json:"proof_url,omitempty"`
	Note       *string           `json:"note,omitempty"`
	ReviewedAt *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// TierResolver answers which tier a store currently holds. Rendering and
// template access decisions depend on it.
type TierResolver interface {
	ResolveTier(ctx context.Context, storeID snowflake.ID) (Tier, error)
}

type Service interface {
	TierResolver

	// CurrentSubscription returns the store's active subscription, or the
	// implicit free subscription when none exists.
	CurrentSubscription(ctx context.Context) (SubscriptionResponse, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)

	// Admin surface.
	ListSubscriptions(ctx context.Context, req ListSubscriptionsRequest) ([]SubscriptionResponse, error)
	ListTransactions(ctx context.Context, req ListTransactionsRequest) ([]TransactionResponse, error)
	ReviewTransaction(ctx context.Context, req ReviewTransactionRequest) (TransactionResponse, error)
}

var (
	ErrInvalidStore       = errors.New("invalid_store")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidCurrency    = errors.New("invalid_currency")
	ErrNotFound           = errors.New("not_found")
	ErrAlreadyReviewed    = errors.New("transaction_already_reviewed")
	ErrPendingTransaction = errors.New("pending_transaction_exists")
)
