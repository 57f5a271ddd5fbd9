package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"github.com/Candratama/invow-sub000/pkg/db/pagination"
)

var (
	ErrInvalidStore = errors.New("customer: invalid store id")
	ErrInvalidID    = errors.New("customer: invalid customer id")
	ErrInvalidName  = errors.New("customer: name is required")
	ErrNotFound     = errors.New("customer: not found")
	ErrHasInvoices  = errors.New("customer: has invoices and cannot be deleted")
)

type CreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type UpdateRequest struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Status  CustomerStatus `json:"status"`
}

// ListFilter narrows a customer listing. Search matches name prefix,
// case-insensitive.
type ListFilter struct {
	pagination.Pagination
	Search string         `form:"search"`
	Status CustomerStatus `form:"status"`
}

type ListResponse struct {
	Customers []*Customer          `json:"customers"`
	PageInfo  *pagination.PageInfo `json:"page_info"`
}

// Service manages store-scoped customers.
type Service interface {
	Create(ctx context.Context, storeID snowflake.ID, req CreateRequest) (*Customer, error)
	Update(ctx context.Context, storeID, customerID snowflake.ID, req UpdateRequest) (*Customer, error)
	Get(ctx context.Context, storeID, customerID snowflake.ID) (*Customer, error)
	List(ctx context.Context, storeID snowflake.ID, filter ListFilter) (*ListResponse, error)
	Delete(ctx context.Context, storeID, customerID snowflake.ID) error
}
