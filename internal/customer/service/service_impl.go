package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	"github.com/Candratama/invow-sub000/pkg/db/pagination"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Repo customerdomain.Repository
	Node *snowflake.Node
}

type Service struct {
	db   *gorm.DB
	repo customerdomain.Repository
	node *snowflake.Node
}

func New(p Params) customerdomain.Service {
	return &Service{db: p.DB, repo: p.Repo, node: p.Node}
}

func (s *Service) Create(ctx context.Context, storeID snowflake.ID, req customerdomain.CreateRequest) (*customerdomain.Customer, error) {
	if storeID == 0 {
		return nil, customerdomain.ErrInvalidStore
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, customerdomain.ErrInvalidName
	}

	now := time.Now().UTC()
	row := &customerdomain.Customer{
		ID:        s.node.Generate(),
		StoreID:   storeID,
		Name:      strings.TrimSpace(req.Name),
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Status:    customerdomain.CustomerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service) Update(ctx context.Context, storeID, customerID snowflake.ID, req customerdomain.UpdateRequest) (*customerdomain.Customer, error) {
	if storeID == 0 {
		return nil, customerdomain.ErrInvalidStore
	}
	if customerID == 0 {
		return nil, customerdomain.ErrInvalidID
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, customerdomain.ErrInvalidName
	}

	row, err := s.repo.FindByID(ctx, s.db, storeID, customerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, customerdomain.ErrNotFound
	}

	row.Name = strings.TrimSpace(req.Name)
	row.Address = strings.TrimSpace(req.Address)
	row.Phone = strings.TrimSpace(req.Phone)
	row.Email = strings.TrimSpace(req.Email)
	if req.Status == customerdomain.CustomerStatusActive || req.Status == customerdomain.CustomerStatusInactive {
		row.Status = req.Status
	}
	row.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Service) Get(ctx context.Context, storeID, customerID snowflake.ID) (*customerdomain.Customer, error) {
	if storeID == 0 {
		return nil, customerdomain.ErrInvalidStore
	}
	if customerID == 0 {
		return nil, customerdomain.ErrInvalidID
	}
	row, err := s.repo.FindByID(ctx, s.db, storeID, customerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, customerdomain.ErrNotFound
	}
	return row, nil
}

func (s *Service) List(ctx context.Context, storeID snowflake.ID, filter customerdomain.ListFilter) (*customerdomain.ListResponse, error) {
	if storeID == 0 {
		return nil, customerdomain.ErrInvalidStore
	}

	limit := filter.PageSize
	if limit <= 0 {
		limit = 10
	}
	if limit > 250 {
		limit = 250
	}

	q := customerdomain.ListQuery{
		Search: filter.Search,
		Status: filter.Status,
		Limit:  limit + 1,
	}
	if filter.PageToken != "" {
		cursor, err := pagination.DecodeCursor(filter.PageToken)
		if err == nil && cursor.ID != "" {
			if id, perr := strconv.ParseInt(cursor.ID, 10, 64); perr == nil {
				q.AfterID = snowflake.ID(id)
			}
		}
	}

	rows, err := s.repo.List(ctx, s.db, storeID, q)
	if err != nil {
		return nil, err
	}

	pageInfo := pagination.BuildCursorPageInfo(rows, int32(limit), func(c *customerdomain.Customer) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(int64(c.ID), 10)})
		return token
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return &customerdomain.ListResponse{Customers: rows, PageInfo: pageInfo}, nil
}

func (s *Service) Delete(ctx context.Context, storeID, customerID snowflake.ID) error {
	if storeID == 0 {
		return customerdomain.ErrInvalidStore
	}
	if customerID == 0 {
		return customerdomain.ErrInvalidID
	}
	row, err := s.repo.FindByID(ctx, s.db, storeID, customerID)
	if err != nil {
		return err
	}
	if row == nil {
		return customerdomain.ErrNotFound
	}
	count, err := s.repo.CountInvoices(ctx, s.db, storeID, customerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return customerdomain.ErrHasInvoices
	}
	return s.repo.Delete(ctx, s.db, storeID, customerID)
}
