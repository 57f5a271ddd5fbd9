package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	"github.com/Candratama/invow-sub000/internal/customer/repository"
	invoicedomain "github.com/Candratama/invow-sub000/internal/invoice/domain"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&invoicedomain.Invoice{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Repo: repository.Provide(),
		Node: node,
	}).(*Service)
	return svc, db
}

func TestCreateTrimsAndActivates(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(7)

	row, err := svc.Create(context.Background(), storeID, customerdomain.CreateRequest{
		Name:  "  Budi Santoso  ",
		Phone: " +62 813 1111 1111 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", row.Name)
	assert.Equal(t, "+62 813 1111 1111", row.Phone)
	assert.Equal(t, customerdomain.CustomerStatusActive, row.Status)
	assert.NotZero(t, row.ID)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), snowflake.ID(7), customerdomain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, customerdomain.ErrInvalidName)

	_, err = svc.Create(context.Background(), 0, customerdomain.CreateRequest{Name: "Budi"})
	assert.ErrorIs(t, err, customerdomain.ErrInvalidStore)
}

func TestUpdateChangesStatusOnlyWhenValid(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(7)

	row, err := svc.Create(context.Background(), storeID, customerdomain.CreateRequest{Name: "Budi"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), storeID, row.ID, customerdomain.UpdateRequest{
		Name:   "Budi S.",
		Status: customerdomain.CustomerStatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", updated.Name)
	assert.Equal(t, customerdomain.CustomerStatusInactive, updated.Status)

	updated, err = svc.Update(context.Background(), storeID, row.ID, customerdomain.UpdateRequest{
		Name:   "Budi S.",
		Status: "BOGUS",
	})
	require.NoError(t, err)
	assert.Equal(t, customerdomain.CustomerStatusInactive, updated.Status)
}

func TestGetScopedToStore(t *testing.T) {
	svc, _ := newTestService(t)

	row, err := svc.Create(context.Background(), snowflake.ID(7), customerdomain.CreateRequest{Name: "Budi"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), snowflake.ID(8), row.ID)
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)

	found, err := svc.Get(context.Background(), snowflake.ID(7), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, found.ID)
}

func TestListSearchMatchesNamePrefix(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(7)

	for _, name := range []string{"Budi Santoso", "budiarti", "Citra Dewi"} {
		_, err := svc.Create(context.Background(), storeID, customerdomain.CreateRequest{Name: name})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), storeID, customerdomain.ListFilter{Search: "bud"})
	require.NoError(t, err)
	require.Len(t, resp.Customers, 2)
	for _, c := range resp.Customers {
		assert.Contains(t, []string{"Budi Santoso", "budiarti"}, c.Name)
	}
}

func TestListPaginatesWithCursor(t *testing.T) {
	svc, _ := newTestService(t)
	storeID := snowflake.ID(7)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), storeID, customerdomain.CreateRequest{
			Name: fmt.Sprintf("Customer %d", i),
		})
		require.NoError(t, err)
	}

	first, err := svc.List(context.Background(), storeID, customerdomain.ListFilter{})
	require.NoError(t, err)
	require.NotNil(t, first.PageInfo)

	page, err := svc.List(context.Background(), storeID, listFilterWithPage(2, ""))
	require.NoError(t, err)
	require.Len(t, page.Customers, 2)
	require.NotEmpty(t, page.PageInfo.NextPageToken)

	second, err := svc.List(context.Background(), storeID, listFilterWithPage(2, page.PageInfo.NextPageToken))
	require.NoError(t, err)
	require.Len(t, second.Customers, 2)
	assert.NotEqual(t, page.Customers[0].ID, second.Customers[0].ID)

	third, err := svc.List(context.Background(), storeID, listFilterWithPage(2, second.PageInfo.NextPageToken))
	require.NoError(t, err)
	assert.Len(t, third.Customers, 1)
}

func listFilterWithPage(size int, token string) customerdomain.ListFilter {
	var filter customerdomain.ListFilter
	filter.PageSize = size
	filter.PageToken = token
	return filter
}

func TestDeleteRefusedWhileInvoicesExist(t *testing.T) {
	svc, db := newTestService(t)
	storeID := snowflake.ID(7)

	row, err := svc.Create(context.Background(), storeID, customerdomain.CreateRequest{Name: "Budi"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&invoicedomain.Invoice{
		ID:          svc.node.Generate(),
		StoreID:     storeID,
		CustomerID:  row.ID,
		Number:      "INV-0001",
		Sequence:    1,
		Status:      invoicedomain.InvoiceStatusDraft,
		Currency:    "IDR",
		PublicToken: "tok-1",
	}).Error)

	err = svc.Delete(context.Background(), storeID, row.ID)
	assert.ErrorIs(t, err, customerdomain.ErrHasInvoices)

	require.NoError(t, db.Where("customer_id = ?", row.ID).Delete(&invoicedomain.Invoice{}).Error)
	require.NoError(t, svc.Delete(context.Background(), storeID, row.ID))

	_, err = svc.Get(context.Background(), storeID, row.ID)
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)
}
