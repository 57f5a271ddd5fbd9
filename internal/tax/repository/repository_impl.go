package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
)

type repo struct{}

func Provide() taxdomain.Repository {
	return &repo{}
}

func (r *repo) FindByStoreID(ctx context.Context, db *gorm.DB, storeID snowflake.ID) (*taxdomain.Preference, error) {
	if db == nil || storeID == 0 {
		return nil, nil
	}
	var row taxdomain.Preference
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

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, pref *taxdomain.Preference) error {
	if db == nil || pref == nil {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "percentage", "updated_at"}),
		}).
		Create(pref).Error
}
