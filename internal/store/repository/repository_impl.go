package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
)

type repo struct{}

func Provide() storedomain.Repository {
	return &repo{}
}

func (r *repo) FindByStoreID(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*storedomain.StoreSettings, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}
	var row storedomain.StoreSettings
	err := db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, settings *storedomain.StoreSettings) error {
	if db == nil || settings == nil {
		return nil
	}
	return db.WithContext(ctx).Create(settings).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, settings *storedomain.StoreSettings) error {
	if db == nil || settings == nil {
		return nil
	}
	return db.WithContext(ctx).Save(settings).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]storedomain.StoreSettings, error) {
	if db == nil {
		return nil, nil
	}
	var rows []storedomain.StoreSettings
	if err := db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
