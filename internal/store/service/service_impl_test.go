package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Candratama/invow-sub000/internal/cache"
	"github.com/Candratama/invow-sub000/internal/config"
	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	"github.com/Candratama/invow-sub000/internal/store/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&storedomain.StoreSettings{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Repo:  repository.Provide(),
		Cache: cache.NewNoopStore(),
		Node:  node,
		Cfg:   config.Config{DefaultCurrency: "IDR"},
		Log:   zap.NewNop(),
	}).(*Service)
}

func TestSettingsCreatesDefaultOnFirstRead(t *testing.T) {
	svc := newTestService(t)
	storeID := snowflake.ID(7)

	settings, err := svc.Settings(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, "My Store", settings.Name)
	assert.Equal(t, "IDR", settings.Currency)
	assert.True(t, settings.IsActive)

	again, err := svc.Settings(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc := newTestService(t)
	storeID := snowflake.ID(7)

	_, err := svc.UpdateSettings(context.Background(), storeID, storedomain.UpdateSettingsRequest{Name: "  "})
	assert.ErrorIs(t, err, storedomain.ErrInvalidName)

	_, err = svc.UpdateSettings(context.Background(), storeID, storedomain.UpdateSettingsRequest{
		Name:       "Toko Emas",
		BrandColor: "blue",
	})
	assert.ErrorIs(t, err, storedomain.ErrInvalidBrandColor)

	_, err = svc.UpdateSettings(context.Background(), storeID, storedomain.UpdateSettingsRequest{
		Name:     "Toko Emas",
		Currency: "XYZ",
	})
	assert.ErrorIs(t, err, storedomain.ErrInvalidCurrency)
}

func TestUpdateSettingsPersistsProfile(t *testing.T) {
	svc := newTestService(t)
	storeID := snowflake.ID(7)

	settings, err := svc.UpdateSettings(context.Background(), storeID, storedomain.UpdateSettingsRequest{
		Name:       "  Toko Emas Jaya  ",
		BrandColor: "#8b2635",
		Currency:   "usd",
		WhatsApp:   "+62 812 0000 0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Toko Emas Jaya", settings.Name)
	assert.Equal(t, "#8b2635", settings.BrandColor)
	assert.Equal(t, "USD", settings.Currency)

	read, err := svc.Settings(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, "Toko Emas Jaya", read.Name)
	assert.Equal(t, "+62 812 0000 0000", read.WhatsApp)
}

func TestSetActiveTogglesFlag(t *testing.T) {
	svc := newTestService(t)
	storeID := snowflake.ID(7)

	_, err := svc.SetActive(context.Background(), storeID, false)
	assert.ErrorIs(t, err, storedomain.ErrNotFound)

	_, err = svc.Settings(context.Background(), storeID)
	require.NoError(t, err)

	settings, err := svc.SetActive(context.Background(), storeID, false)
	require.NoError(t, err)
	assert.False(t, settings.IsActive)

	settings, err = svc.SetActive(context.Background(), storeID, true)
	require.NoError(t, err)
	assert.True(t, settings.IsActive)
}

func TestListStoresReturnsAllProfiles(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []snowflake.ID{1, 2, 3} {
		_, err := svc.Settings(context.Background(), id)
		require.NoError(t, err)
	}

	stores, err := svc.ListStores(context.Background())
	require.NoError(t, err)
	assert.Len(t, stores, 3)
}
