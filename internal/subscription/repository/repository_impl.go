package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

type repo struct{}

func Provide() subscriptiondomain.Repository {
	return &repo{}
}

func (r *repo) InsertSubscription(ctx context.Context, db *gorm.DB, sub *subscriptiondomain.Subscription) error {
	if db == nil || sub == nil {
		return nil
	}
	return db.WithContext(ctx).Create(sub).Error
}

func (r *repo) UpdateSubscription(ctx context.Context, db *gorm.DB, sub *subscriptiondomain.Subscription) error {
	if db == nil || sub == nil {
		return nil
	}
	return db.WithContext(ctx).Save(sub).Error
}

func (r *repo) FindActiveSubscription(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*subscriptiondomain.Subscription, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}
	var row subscriptiondomain.Subscription
	err := db.WithContext(ctx).
		Where("store_id = ? AND status = ?", storeID, subscriptiondomain.SubscriptionStatusActive).
		Order("start_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) ListSubscriptions(ctx context.Context, db *gorm.DB, req subscriptiondomain.ListSubscriptionsRequest) ([]subscriptiondomain.Subscription, error) {
	if db == nil {
		return nil, nil
	}
	tx := db.WithContext(ctx).Order("created_at DESC, id DESC")
	if req.StoreID != "" {
		if id, err := strconv.ParseInt(req.StoreID, 10, 64); err == nil {
			tx = tx.Where("store_id = ?", snowflake.ID(id))
		}
	}
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}
	var rows []subscriptiondomain.Subscription
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) InsertTransaction(ctx context.Context, db *gorm.DB, trx *subscriptiondomain.Transaction) error {
	if db == nil || trx == nil {
		return nil
	}
	return db.WithContext(ctx).Create(trx).Error
}

func (r *repo) UpdateTransaction(ctx context.Context, db *gorm.DB, trx *subscriptiondomain.Transaction) error {
	if db == nil || trx == nil {
		return nil
	}
	return db.WithContext(ctx).Save(trx).Error
}

func (r *repo) FindTransactionByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*subscriptiondomain.Transaction, error) {
	if db == nil || id == 0 {
		return nil, nil
	}
	var row subscriptiondomain.Transaction
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) FindPendingTransaction(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*subscriptiondomain.Transaction, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}
	var row subscriptiondomain.Transaction
	err := db.WithContext(ctx).
		Where("store_id = ? AND status = ?", storeID, subscriptiondomain.TransactionStatusPending).
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) ListTransactions(ctx context.Context, db *gorm.DB, req subscriptiondomain.ListTransactionsRequest) ([]subscriptiondomain.Transaction, error) {
	if db == nil {
		return nil, nil
	}
	tx := db.WithContext(ctx).Order("created_at DESC, id DESC")
	if req.StoreID != "" {
		if id, err := strconv.ParseInt(req.StoreID, 10, 64); err == nil {
			tx = tx.Where("store_id = ?", snowflake.ID(id))
		}
	}
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}
	var rows []subscriptiondomain.Transaction
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
