package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/config"
	"github.com/Candratama/invow-sub000/internal/invoice/format"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	"github.com/Candratama/invow-sub000/pkg/db"
)

const settingsCacheTTL = 10 * time.Minute

var brandColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Repo  storedomain.Repository
	Cache cache.Store
	Node  *snowflake.Node
	Cfg   config.Config
	Log   *zap.Logger
}

type Service struct {
	db    *gorm.DB
	repo  storedomain.Repository
	cache cache.Store
	node  *snowflake.Node
	cfg   config.Config
	log   *zap.Logger
}

func New(p Params) storedomain.Service {
	return &Service{
		db:    p.DB,
		repo:  p.Repo,
		cache: p.Cache,
		node:  p.Node,
		cfg:   p.Cfg,
		log:   p.Log.Named("store.service"),
	}
}

func (s *Service) Settings(ctx context.Context, storeID snowflake.ID) (*storedomain.StoreSettings, error) {
	if storeID == 0 {
		return nil, storedomain.ErrInvalidStore
	}

	key := cache.StoreSettingsKey(storeID)
	var cached storedomain.StoreSettings
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return &cached, nil
	}

	row, err := s.repo.FindByStoreID(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row, err = s.createDefault(ctx, storeID)
		if err != nil {
			return nil, err
		}
	}

	_ = s.cache.Set(ctx, key, row, settingsCacheTTL)
	return row, nil
}

func (s *Service) UpdateSettings(ctx context.Context, storeID snowflake.ID, req storedomain.UpdateSettingsRequest) (*storedomain.StoreSettings, error) {
	if storeID == 0 {
		return nil, storedomain.ErrInvalidStore
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, storedomain.ErrInvalidName
	}
	if color := strings.TrimSpace(req.BrandColor); color != "" && !brandColorPattern.MatchString(color) {
		return nil, storedomain.ErrInvalidBrandColor
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency != "" && !format.SupportedCurrency(currency) {
		return nil, storedomain.ErrInvalidCurrency
	}

	row, err := s.repo.FindByStoreID(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	created := false
	if row == nil {
		created = true
		row = &storedomain.StoreSettings{
			ID:       s.node.Generate(),
			StoreID:  storeID,
			IsActive: true,
		}
	}

	row.Name = strings.TrimSpace(req.Name)
	row.LogoURL = strings.TrimSpace(req.LogoURL)
	row.Address = strings.TrimSpace(req.Address)
	row.WhatsApp = strings.TrimSpace(req.WhatsApp)
	row.Email = strings.TrimSpace(req.Email)
	row.Phone = strings.TrimSpace(req.Phone)
	row.Website = strings.TrimSpace(req.Website)
	row.BrandColor = strings.TrimSpace(req.BrandColor)
	row.AdminName = strings.TrimSpace(req.AdminName)
	row.AdminTitle = strings.TrimSpace(req.AdminTitle)
	row.SignatureURL = strings.TrimSpace(req.SignatureURL)
	row.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	row.Tagline = strings.TrimSpace(req.Tagline)
	row.StoreNumber = strings.TrimSpace(req.StoreNumber)
	row.StoreDescription = strings.TrimSpace(req.StoreDescription)
	row.InvoiceNumberTemplate = strings.TrimSpace(req.InvoiceNumberTemplate)
	if currency != "" {
		row.Currency = currency
	}
	row.UpdatedAt = time.Now().UTC()

	if created {
		row.CreatedAt = row.UpdatedAt
		err = s.repo.Insert(ctx, s.db, row)
	} else {
		err = s.repo.Update(ctx, s.db, row)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Del(ctx, cache.StoreSettingsKey(storeID))
	return row, nil
}

func (s *Service) SetActive(ctx context.Context, storeID snowflake.ID, active bool) (*storedomain.StoreSettings, error) {
	if storeID == 0 {
		return nil, storedomain.ErrInvalidStore
	}
	row, err := s.repo.FindByStoreID(ctx, s.db, storeID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, storedomain.ErrNotFound
	}
	if row.IsActive == active {
		return row, nil
	}
	row.IsActive = active
	row.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, row); err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, cache.StoreSettingsKey(storeID))
	s.log.Info("store active flag changed",
		zap.Int64("store_id", int64(storeID)),
		zap.Bool("active", active),
	)
	return row, nil
}

func (s *Service) ListStores(ctx context.Context) ([]storedomain.StoreSettings, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) createDefault(ctx context.Context, storeID snowflake.ID) (*storedomain.StoreSettings, error) {
	now := time.Now().UTC()
	row := &storedomain.StoreSettings{
		ID:        s.node.Generate(),
		StoreID:   storeID,
		Name:      "My Store",
		Currency:  s.cfg.DefaultCurrency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, row); err != nil {
		// Two concurrent first reads can both try to insert the default;
		// the loser reuses the winner's row.
		if db.IsDuplicateKeyErr(err) {
			return s.repo.FindByStoreID(ctx, s.db, storeID)
		}
		return nil, err
	}
	return row, nil
}
