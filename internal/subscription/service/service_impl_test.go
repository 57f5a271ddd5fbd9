package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/storectx"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	"github.com/Candratama/invow-sub000/internal/subscription/repository"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&subscriptiondomain.Subscription{},
		&subscriptiondomain.Transaction{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Repo:  repository.Provide(),
		Cache: cache.NewNoopStore(),
		Node:  node,
		Log:   zap.NewNop(),
	}).(*Service)
	return svc, db
}

func storeContext(storeID snowflake.ID) context.Context {
	return storectx.WithStoreID(context.Background(), storeID)
}

func TestResolveTierDefaultsToFree(t *testing.T) {
	svc, _ := newTestService(t)

	tier, err := svc.ResolveTier(context.Background(), snowflake.ID(42))
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierFree, tier)
}

func TestResolveTierPremiumWhileActive(t *testing.T) {
	svc, db := newTestService(t)
	storeID := snowflake.ID(42)

	expires := time.Now().UTC().Add(24 * time.Hour)
	require.NoError(t, db.Create(&subscriptiondomain.Subscription{
		ID:        svc.node.Generate(),
		StoreID:   storeID,
		Tier:      subscriptiondomain.TierPremium,
		Status:    subscriptiondomain.SubscriptionStatusActive,
		StartAt:   time.Now().UTC().Add(-time.Hour),
		ExpiresAt: &expires,
	}).Error)

	tier, err := svc.ResolveTier(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierPremium, tier)
}

func TestResolveTierExpiresLazily(t *testing.T) {
	svc, db := newTestService(t)
	storeID := snowflake.ID(42)

	expired := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, db.Create(&subscriptiondomain.Subscription{
		ID:        svc.node.Generate(),
		StoreID:   storeID,
		Tier:      subscriptiondomain.TierPremium,
		Status:    subscriptiondomain.SubscriptionStatusActive,
		StartAt:   time.Now().UTC().Add(-48 * time.Hour),
		ExpiresAt: &expired,
	}).Error)

	tier, err := svc.ResolveTier(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierFree, tier)

	var row subscriptiondomain.Subscription
	require.NoError(t, db.Where("store_id = ?", storeID).First(&row).Error)
	assert.Equal(t, subscriptiondomain.SubscriptionStatusExpired, row.Status)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := storeContext(snowflake.ID(42))

	_, err := svc.CreateTransaction(context.Background(), subscriptiondomain.CreateTransactionRequest{Amount: 100, Currency: "IDR"})
	assert.ErrorIs(t, err, subscriptiondomain.ErrInvalidStore)

	_, err = svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 0, Currency: "IDR"})
	assert.ErrorIs(t, err, subscriptiondomain.ErrInvalidAmount)

	_, err = svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 100, Currency: "XXX"})
	assert.ErrorIs(t, err, subscriptiondomain.ErrInvalidCurrency)
}

func TestCreateTransactionRejectsSecondPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := storeContext(snowflake.ID(42))

	_, err := svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	assert.ErrorIs(t, err, subscriptiondomain.ErrPendingTransaction)
}

func TestReviewTransactionApproveActivatesPremium(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(42)
	ctx := storeContext(storeID)

	trx, err := svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	require.NoError(t, err)

	reviewed, err := svc.ReviewTransaction(context.Background(), subscriptiondomain.ReviewTransactionRequest{
		ID:      trx.ID,
		Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TransactionStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)

	tier, err := svc.ResolveTier(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierPremium, tier)

	// A reviewed transaction cannot be reviewed again.
	_, err = svc.ReviewTransaction(context.Background(), subscriptiondomain.ReviewTransactionRequest{ID: trx.ID, Approve: false})
	assert.ErrorIs(t, err, subscriptiondomain.ErrAlreadyReviewed)
}

func TestReviewTransactionRejectKeepsFree(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(42)
	ctx := storeContext(storeID)

	note := "proof unreadable"
	trx, err := svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	require.NoError(t, err)

	reviewed, err := svc.ReviewTransaction(context.Background(), subscriptiondomain.ReviewTransactionRequest{
		ID:      trx.ID,
		Approve: false,
		Note:    &note,
	})
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TransactionStatusRejected, reviewed.Status)
	require.NotNil(t, reviewed.Note)
	assert.Equal(t, note, *reviewed.Note)

	tier, err := svc.ResolveTier(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierFree, tier)
}

func TestReviewTransactionExtendsLivePremium(t *testing.T) {
	svc, db := newTestService(t)
	storeID := snowflake.ID(42)
	ctx := storeContext(storeID)

	trx, err := svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	require.NoError(t, err)
	_, err = svc.ReviewTransaction(context.Background(), subscriptiondomain.ReviewTransactionRequest{ID: trx.ID, Approve: true})
	require.NoError(t, err)

	var first subscriptiondomain.Subscription
	require.NoError(t, db.Where("store_id = ? AND status = ?", storeID, subscriptiondomain.SubscriptionStatusActive).First(&first).Error)

	trx2, err := svc.CreateTransaction(ctx, subscriptiondomain.CreateTransactionRequest{Amount: 99000, Currency: "IDR"})
	require.NoError(t, err)
	_, err = svc.ReviewTransaction(context.Background(), subscriptiondomain.ReviewTransactionRequest{ID: trx2.ID, Approve: true})
	require.NoError(t, err)

	var second subscriptiondomain.Subscription
	require.NoError(t, db.Where("store_id = ? AND status = ?", storeID, subscriptiondomain.SubscriptionStatusActive).First(&second).Error)

	assert.Equal(t, first.ID, second.ID, "live premium should be extended, not replaced")
	require.NotNil(t, first.ExpiresAt)
	require.NotNil(t, second.ExpiresAt)
	assert.True(t, second.ExpiresAt.After(*first.ExpiresAt))
}

func TestCurrentSubscriptionImplicitFree(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := storeContext(snowflake.ID(42))

	resp, err := svc.CurrentSubscription(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscriptiondomain.TierFree, resp.Tier)
	assert.Equal(t, subscriptiondomain.SubscriptionStatusActive, resp.Status)
	assert.Empty(t, resp.ID)
}
