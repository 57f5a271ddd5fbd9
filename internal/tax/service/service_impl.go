package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
)

const preferenceCacheTTL = 10 * time.Minute

type Params struct {
	fx.In

	DB    *gorm.DB
	Repo  taxdomain.Repository
	Cache cache.Store
	Node  *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	repo  taxdomain.Repository
	cache cache.Store
	node  *snowflake.Node
}

func New(p Params) taxdomain.Service {
	return &Service{db: p.DB, repo: p.Repo, cache: p.Cache, node: p.Node}
}

func (s *Service) Preference(ctx context.Context, storeID snowflake.ID) (*taxdomain.Preference, error) {
	if storeID == 0 {
		return nil, taxdomain.ErrInvalidStore
	}

	key := cache.TaxPreferenceKey(storeID)
	var cached taxdomain.Preference
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	row, err := s.repo.FindByStoreID(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		// Never persisted; tax is simply off.
		return &taxdomain.Preference{StoreID: storeID}, nil
	}

	_ = s.cache.Set(ctx, key, row, preferenceCacheTTL)
	return row, nil
}

func (s *Service) UpdatePreference(ctx context.Context, storeID snowflake.ID, req taxdomain.UpdatePreferenceRequest) (*taxdomain.Preference, error) {
	if storeID == 0 {
		return nil, taxdomain.ErrInvalidStore
	}
	if req.Percentage != nil && (*req.Percentage < 0 || *req.Percentage > 100) {
		return nil, taxdomain.ErrInvalidPercentage
	}

	row, err := s.repo.FindByStoreID(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if row == nil {
		row = &taxdomain.Preference{
			ID:        s.node.Generate(),
			StoreID:   storeID,
			CreatedAt: now,
		}
	}
	row.Enabled = req.Enabled
	if req.Percentage != nil {
		row.Percentage = *req.Percentage
	}
	row.UpdatedAt = now

	if err := s.repo.Upsert(ctx, s.db, row); err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, cache.TaxPreferenceKey(storeID))
	return row, nil
}
