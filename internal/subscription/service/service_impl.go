package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/invoice/format"
	"github.com/Candratama/invow-sub000/internal/storectx"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

const (
	tierCacheTTL = time.Minute

	// DefaultPremiumDuration is how long an approved upgrade lasts when the
	// reviewer does not specify one.
	DefaultPremiumDuration = 30 * 24 * time.Hour
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Repo  subscriptiondomain.Repository
	Cache cache.Store
	Node  *snowflake.Node
	Log   *zap.Logger
}

type Service struct {
	db    *gorm.DB
	repo  subscriptiondomain.Repository
	cache cache.Store
	node  *snowflake.Node
	log   *zap.Logger
	now   func() time.Time
}

func New(p Params) subscriptiondomain.Service {
	return &Service{
		db:    p.DB,
		repo:  p.Repo,
		cache: p.Cache,
		node:  p.Node,
		log:   p.Log.Named("subscription.service"),
		now:   time.Now,
	}
}

// ResolveTier returns the store's effective tier. Anything but a live active
// premium subscription resolves to free; expired rows are flipped lazily on
// read so the tier never outlives its expiry.
func (s *Service) ResolveTier(ctx context.Context, storeID snowflake.ID) (subscriptiondomain.Tier, error) {
	if storeID == 0 {
		return subscriptiondomain.TierFree, subscriptiondomain.ErrInvalidStore
	}

	key := cache.SubscriptionKey(storeID)
	var cached subscriptiondomain.Tier
	if hit, _ := s.cache.Get(ctx, key, &cached); hit && cached.Valid() {
		return cached, nil
	}

	sub, err := s.repo.FindActiveSubscription(ctx, s.db, storeID)
	if err != nil {
		return subscriptiondomain.TierFree, err
	}

	tier := subscriptiondomain.TierFree
	now := s.now().UTC()
	if sub != nil {
		if sub.Active(now) {
			tier = sub.Tier
		} else if sub.Status == subscriptiondomain.SubscriptionStatusActive {
			sub.Status = subscriptiondomain.SubscriptionStatusExpired
			sub.UpdatedAt = now
			if uerr := s.repo.UpdateSubscription(ctx, s.db, sub); uerr != nil {
				s.log.Warn("expire subscription failed",
					zap.Int64("subscription_id", int64(sub.ID)),
					zap.Error(uerr),
				)
			}
		}
	}

	_ = s.cache.Set(ctx, key, tier, tierCacheTTL)
	return tier, nil
}

func (s *Service) CurrentSubscription(ctx context.Context) (subscriptiondomain.SubscriptionResponse, error) {
	storeID, ok := storectx.StoreIDFromContext(ctx)
	if !ok || storeID == 0 {
		return subscriptiondomain.SubscriptionResponse{}, subscriptiondomain.ErrInvalidStore
	}

	sub, err := s.repo.FindActiveSubscription(ctx, s.db, storeID)
	if err != nil {
		return subscriptiondomain.SubscriptionResponse{}, err
	}
	if sub == nil || !sub.Active(s.now().UTC()) {
		// Every store has an implicit free subscription.
		return subscriptiondomain.SubscriptionResponse{
			StoreID: storeID.String(),
			Tier:    subscriptiondomain.TierFree,
			Status:  subscriptiondomain.SubscriptionStatusActive,
		}, nil
	}

	return toSubscriptionResponse(*sub), nil
}

func (s *Service) CreateTransaction(ctx context.Context, req subscriptiondomain.CreateTransactionRequest) (subscriptiondomain.TransactionResponse, error) {
	storeID, ok := storectx.StoreIDFromContext(ctx)
	if !ok || storeID == 0 {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrInvalidStore
	}
	if req.Amount <= 0 {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !format.SupportedCurrency(currency) {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrInvalidCurrency
	}

	pending, err := s.repo.FindPendingTransaction(ctx, s.db, storeID)
	if err != nil {
		return subscriptiondomain.TransactionResponse{}, err
	}
	if pending != nil {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrPendingTransaction
	}

	now := s.now().UTC()
	trx := &subscriptiondomain.Transaction{
		ID:        s.node.Generate(),
		StoreID:   storeID,
		Amount:    req.Amount,
		Currency:  currency,
		Status:    subscriptiondomain.TransactionStatusPending,
		ProofURL:  req.ProofURL,
		Note:      req.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertTransaction(ctx, s.db, trx); err != nil {
		return subscriptiondomain.TransactionResponse{}, err
	}

	s.log.Info("upgrade transaction submitted",
		zap.Int64("store_id", int64(storeID)),
		zap.Int64("transaction_id", int64(trx.ID)),
		zap.Int64("amount", trx.Amount),
		zap.String("currency", trx.Currency),
	)
	return toTransactionResponse(*trx), nil
}

func (s *Service) ListSubscriptions(ctx context.Context, req subscriptiondomain.ListSubscriptionsRequest) ([]subscriptiondomain.SubscriptionResponse, error) {
	rows, err := s.repo.ListSubscriptions(ctx, s.db, req)
	if err != nil {
		return nil, err
	}
	out := make([]subscriptiondomain.SubscriptionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSubscriptionResponse(row))
	}
	return out, nil
}

func (s *Service) ListTransactions(ctx context.Context, req subscriptiondomain.ListTransactionsRequest) ([]subscriptiondomain.TransactionResponse, error) {
	rows, err := s.repo.ListTransactions(ctx, s.db, req)
	if err != nil {
		return nil, err
	}
	out := make([]subscriptiondomain.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTransactionResponse(row))
	}
	return out, nil
}

func (s *Service) ReviewTransaction(ctx context.Context, req subscriptiondomain.ReviewTransactionRequest) (subscriptiondomain.TransactionResponse, error) {
	trxID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || trxID == 0 {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrInvalidID
	}

	trx, err := s.repo.FindTransactionByID(ctx, s.db, trxID)
	if err != nil {
		return subscriptiondomain.TransactionResponse{}, err
	}
	if trx == nil {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrNotFound
	}
	if trx.Status != subscriptiondomain.TransactionStatusPending {
		return subscriptiondomain.TransactionResponse{}, subscriptiondomain.ErrAlreadyReviewed
	}

	now := s.now().UTC()
	trx.ReviewedAt = &now
	trx.UpdatedAt = now
	if req.Note != nil {
		trx.Note = req.Note
	}
	if !req.Approve {
		trx.Status = subscriptiondomain.TransactionStatusRejected
		if err := s.repo.UpdateTransaction(ctx, s.db, trx); err != nil {
			return subscriptiondomain.TransactionResponse{}, err
		}
		return toTransactionResponse(*trx), nil
	}

	trx.Status = subscriptiondomain.TransactionStatusApproved
	duration := req.PremiumDuration
	if duration <= 0 {
		duration = DefaultPremiumDuration
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateTransaction(ctx, tx, trx); err != nil {
			return err
		}
		return s.activatePremium(ctx, tx, trx.StoreID, now, duration)
	})
	if err != nil {
		return subscriptiondomain.TransactionResponse{}, err
	}

	_ = s.cache.Del(ctx, cache.SubscriptionKey(trx.StoreID))
	s.log.Info("upgrade transaction approved",
		zap.Int64("store_id", int64(trx.StoreID)),
		zap.Int64("transaction_id", int64(trx.ID)),
		zap.Duration("premium_duration", duration),
	)
	return toTransactionResponse(*trx), nil
}

// activatePremium extends a live premium subscription or starts a new one.
func (s *Service) activatePremium(ctx context.Context, tx *gorm.DB, storeID snowflake.ID, now time.Time, duration time.Duration) error {
	current, err := s.repo.FindActiveSubscription(ctx, tx, storeID)
	if err != nil {
		return err
	}

	if current != nil && current.Active(now) && current.Tier == subscriptiondomain.TierPremium {
		base := now
		if current.ExpiresAt != nil && current.ExpiresAt.After(now) {
			base = *current.ExpiresAt
		}
		expires := base.Add(duration)
		current.ExpiresAt = &expires
		current.UpdatedAt = now
		return s.repo.UpdateSubscription(ctx, tx, current)
	}

	if current != nil && current.Status == subscriptiondomain.SubscriptionStatusActive {
		current.Status = subscriptiondomain.SubscriptionStatusCanceled
		current.UpdatedAt = now
		if err := s.repo.UpdateSubscription(ctx, tx, current); err != nil {
			return err
		}
	}

	expires := now.Add(duration)
	return s.repo.InsertSubscription(ctx, tx, &subscriptiondomain.Subscription{
		ID:        s.node.Generate(),
		StoreID:   storeID,
		Tier:      subscriptiondomain.TierPremium,
		Status:    subscriptiondomain.SubscriptionStatusActive,
		StartAt:   now,
		ExpiresAt: &expires,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func toSubscriptionResponse(sub subscriptiondomain.Subscription) subscriptiondomain.SubscriptionResponse {
	return subscriptiondomain.SubscriptionResponse{
		ID:        sub.ID.String(),
		StoreID:   sub.StoreID.String(),
		Tier:      sub.Tier,
		Status:    sub.Status,
		StartAt:   sub.StartAt,
		ExpiresAt: sub.ExpiresAt,
		CreatedAt: sub.CreatedAt,
	}
}

func toTransactionResponse(trx subscriptiondomain.Transaction) subscriptiondomain.TransactionResponse {
	return subscriptiondomain.TransactionResponse{
		ID:         trx.ID.String(),
		StoreID:    trx.StoreID.String(),
		Amount:     trx.Amount,
		Currency:   trx.Currency,
		Status:     trx.Status,
		ProofURL:   trx.ProofURL,
		Note:       trx.Note,
		ReviewedAt: trx.ReviewedAt,
		CreatedAt:  trx.CreatedAt,
	}
}
