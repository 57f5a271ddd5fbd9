package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
)

type repo struct{}

func Provide() invoicedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *invoicedomain.Invoice, items []invoicedomain.InvoiceItem) error {
	if db == nil || invoice == nil {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *invoicedomain.Invoice) error {
	if db == nil || invoice == nil {
		return nil
	}
	return db.WithContext(ctx).Save(invoice).Error
}

func (r *repo) ReplaceItems(ctx context.Context, db *gorm.DB, invoice *invoicedomain.Invoice, items []invoicedomain.InvoiceItem) error {
	if db == nil || invoice == nil {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(invoice).Error; err != nil {
			return err
		}
		if err := tx.
			Where("invoice_id = ? AND store_id = ?", invoice.ID, invoice.StoreID).
			Delete(&invoicedomain.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) (*invoicedomain.Invoice, error) {
	if db == nil || storeID == 0 || invoiceID == 0 {
		return nil, nil
	}
	var row invoicedomain.Invoice
	err := db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, invoiceID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) FindByPublicToken(ctx context.Context, db *gorm.DB, token string) (*invoicedomain.Invoice, error) {
	token = strings.TrimSpace(token)
	if db == nil || token == "" {
		return nil, nil
	}
	var row invoicedomain.Invoice
	err := db.WithContext(ctx).
		Where("public_token = ?", token).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) ([]invoicedomain.InvoiceItem, error) {
	if db == nil || storeID == 0 || invoiceID == 0 {
		return nil, nil
	}
	var rows []invoicedomain.InvoiceItem
	if err := db.WithContext(ctx).
		Where("store_id = ? AND invoice_id = ?", storeID, invoiceID).
		Order("position ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, storeID snowflake.ID, q invoicedomain.ListQuery) ([]*invoicedomain.Invoice, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}

	tx := db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id DESC")
	if q.AfterID != 0 {
		tx = tx.Where("id < ?", q.AfterID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.CustomerID != 0 {
		tx = tx.Where("customer_id = ?", q.CustomerID)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []*invoicedomain.Invoice
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, storeID, invoiceID snowflake.ID) error {
	if db == nil || storeID == 0 || invoiceID == 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("store_id = ? AND invoice_id = ?", storeID, invoiceID).
			Delete(&invoicedomain.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.
			Where("store_id = ? AND id = ?", storeID, invoiceID).
			Delete(&invoicedomain.Invoice{}).Error
	})
}

func (r *repo) NextSequence(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (int64, error) {
	if db == nil || storeID == 0 {
		return 0, nil
	}
	var max int64
	if err := db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(sequence), 0) FROM invoices WHERE store_id = ?`, storeID).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
