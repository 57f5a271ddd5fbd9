package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertSubscription(ctx context.Context, db *gorm.DB, sub *Subscription) error
	UpdateSubscription(ctx context.Context, db *gorm.DB, sub *Subscription) error
	FindActiveSubscription(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*Subscription, error)
	ListSubscriptions(ctx context.Context, db *gorm.DB, req ListSubscriptionsRequest) ([]Subscription, error)

	InsertTransaction(ctx context.Context, db *gorm.DB, trx *Transaction) error
	UpdateTransaction(ctx context.Context, db *gorm.DB, trx *Transaction) error
	FindTransactionByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Transaction, error)
	FindPendingTransaction(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*Transaction, error)
	ListTransactions(ctx context.Context, db *gorm.DB, req ListTransactionsRequest) ([]Transaction, error)
}
