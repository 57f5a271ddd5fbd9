package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
)

type repo struct{}

func Provide() customerdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *customerdomain.Customer) error {
	if db == nil || customer == nil {
		return nil
	}
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *customerdomain.Customer) error {
	if db == nil || customer == nil {
		return nil
	}
	return db.WithContext(ctx).Save(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) (*customerdomain.Customer, error) {
	if db == nil || storeID == 0 || customerID == 0 {
		return nil, nil
	}
	var row customerdomain.Customer
	err := db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, customerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, storeID snowflake.ID, q customerdomain.ListQuery) ([]*customerdomain.Customer, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}

	tx := db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC")
	if q.AfterID != 0 {
		tx = tx.Where("id > ?", q.AfterID)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", strings.ToLower(search)+"%")
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []*customerdomain.Customer
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) error {
	if db == nil || storeID == 0 || customerID == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, customerID).
		Delete(&customerdomain.Customer{}).Error
}

func (r *repo) CountInvoices(ctx context.Context, db *gorm.DB, storeID, customerID snowflake.ID) (int64, error) {
	if db == nil || storeID == 0 || customerID == 0 {
		return 0, nil
	}
	var count int64
	err := db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM invoices WHERE store_id = ? AND customer_id = ?`, storeID, customerID).
		Scan(&count).Error
	return count, err
}
