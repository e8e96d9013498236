package sales_test

import (
	"context"
	"math/rand"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/ident"
	"github.com/warp/sales-engine/netsim"
	"github.com/warp/sales-engine/sales"
	"github.com/warp/sales-engine/store/memory"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newTestService builds a service over a fresh in-memory backend with
// zero latency and zero failures so tests are fast and deterministic.
func newTestService(t *testing.T, opts ...sales.Option) *sales.Service {
	t.Helper()
	return sales.New(
		memory.New(),
		netsim.New(0, 0, rand.New(rand.NewSource(1))),
		ident.New(rand.New(rand.NewSource(1))),
		opts...,
	)
}

func fixedClock(date string) sales.Option {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return sales.WithClock(func() time.Time { return day })
}

func strPtr(s string) *string          { return &s }
func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// =============================================================================
// CREATE / GET
// =============================================================================

func TestCreateCustomer_AssignsNameAndRoundTrips(t *testing.T) {
	// GIVEN: A customer without a name
	// WHEN: Creating it and reading it back
	// THEN: A CUST-prefixed name is assigned and every field survives

	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateCustomer(ctx, catalog.Customer{
		CustomerName: "Acme Corporation",
		CustomerType: catalog.CustomerCompany,
		Territory:    "North Zone",
		ContactEmail: "contact@acme.com",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CUST-[0-9A-Z]{9}$`), created.Name)

	got, err := svc.GetCustomer(ctx, created.Name)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestCreate_IgnoresCallerSuppliedName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateQuotation(ctx, catalog.Quotation{
		Name:     "QTN-HIJACK",
		Customer: "CUST-001",
		Status:   catalog.QuotationDraft,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "QTN-HIJACK", created.Name)
	assert.Regexp(t, regexp.MustCompile(`^QTN-[0-9A-Z]{9}$`), created.Name)
}

func TestCreateItem_ItemCodeIsTheIdentifier(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateItem(ctx, catalog.Item{
		ItemName:     "Office Chair",
		StandardRate: amt("399.99"),
		IsStockItem:  true,
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ITEM-[0-9A-Z]{9}$`), created.ItemCode)

	got, err := svc.GetItem(ctx, created.ItemCode)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Office Chair", got.ItemName)
}

func TestGet_MissingReturnsNilWithoutError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	got, err := svc.GetSalesOrder(ctx, "SO-MISSING")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateSalesOrder_PreservesLineItemsAndTotals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateSalesOrder(ctx, catalog.SalesOrder{
		Customer:        "CUST-001",
		TransactionDate: "2024-01-20",
		DeliveryDate:    "2024-01-25",
		Items: []catalog.LineItem{
			{ItemCode: "PROD-001", Qty: decimal.NewFromInt(5), Rate: amt("299.99"), Amount: amt("1499.95")},
			{ItemCode: "PROD-002", Qty: decimal.NewFromInt(10), Rate: amt("49.99"), Amount: amt("499.90")},
		},
		GrandTotal: amt("1999.85"),
		Status:     catalog.OrderToDeliverAndBill,
	})
	require.NoError(t, err)

	got, err := svc.GetSalesOrder(ctx, created.Name)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 2)
	assert.True(t, got.GrandTotal.Equal(amt("1999.85")))
	assert.True(t, got.Items[0].Amount.Equal(amt("1499.95")))
}

// =============================================================================
// LIST
// =============================================================================

func TestList_InsertionOrderAndIdempotence(t *testing.T) {
	// GIVEN: Three customers created in sequence
	// WHEN: Listing twice without intervening writes
	// THEN: Both listings are identical and in creation order

	ctx := context.Background()
	svc := newTestService(t)

	var names []string
	for _, display := range []string{"First", "Second", "Third"} {
		c, err := svc.CreateCustomer(ctx, catalog.Customer{CustomerName: display})
		require.NoError(t, err)
		names = append(names, c.Name)
	}

	first, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	second, err := svc.ListCustomers(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	for i, c := range first {
		assert.Equal(t, names[i], c.Name)
	}
}

func TestList_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	payments, err := svc.ListPaymentEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

// =============================================================================
// UPDATE
// =============================================================================

func TestUpdate_OnlyPatchedFieldsChange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateCustomer(ctx, catalog.Customer{
		CustomerName: "Acme Corporation",
		CustomerType: catalog.CustomerCompany,
		Territory:    "North Zone",
		ContactEmail: "contact@acme.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(ctx, created.Name, catalog.CustomerPatch{
		Territory: strPtr("South Zone"),
	})
	require.NoError(t, err)

	assert.Equal(t, "South Zone", updated.Territory)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
	assert.Equal(t, created.ContactEmail, updated.ContactEmail)

	got, err := svc.GetCustomer(ctx, created.Name)
	require.NoError(t, err)
	assert.Equal(t, updated, *got)
}

func TestUpdate_MissingRecordIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.UpdateSalesInvoice(ctx, "INV-MISSING", catalog.SalesInvoicePatch{
		OutstandingAmount: decPtr("0"),
	})
	assert.True(t, sales.IsNotFound(err))
}

func TestUpdate_NameIsImmutable(t *testing.T) {
	// The identifier is never part of a patch; it survives any update.
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateDeliveryNote(ctx, catalog.DeliveryNote{
		Customer:       "CUST-001",
		DeliveryStatus: catalog.DeliveryPending,
		Status:         catalog.NoteDraft,
	})
	require.NoError(t, err)

	delivered := catalog.DeliveryDelivered
	updated, err := svc.UpdateDeliveryNote(ctx, created.Name, catalog.DeliveryNotePatch{
		DeliveryStatus: &delivered,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, catalog.DeliveryDelivered, updated.DeliveryStatus)
}

func TestConcurrentUpdates_LastWriterWins(t *testing.T) {
	// GIVEN: Two writers racing on the same record
	// WHEN: Both updates complete
	// THEN: The stored value is exactly one of the two writes, whole

	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateCustomer(ctx, catalog.Customer{
		CustomerName: "Acme Corporation",
		Territory:    "North Zone",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, territory := range []string{"East Zone", "West Zone"} {
		wg.Add(1)
		go func(zone string) {
			defer wg.Done()
			_, err := svc.UpdateCustomer(ctx, created.Name, catalog.CustomerPatch{Territory: strPtr(zone)})
			assert.NoError(t, err)
		}(territory)
	}
	wg.Wait()

	got, err := svc.GetCustomer(ctx, created.Name)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, []string{"East Zone", "West Zone"}, got.Territory)
	assert.Equal(t, "Acme Corporation", got.CustomerName)
}

// =============================================================================
// DELETE
// =============================================================================

func TestDelete_RemovesRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreatePaymentEntry(ctx, catalog.PaymentEntry{
		PaymentType: catalog.PaymentReceive,
		PartyType:   "Customer",
		Party:       "CUST-001",
		PaidAmount:  amt("299.99"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePaymentEntry(ctx, created.Name))

	got, err := svc.GetPaymentEntry(ctx, created.Name)
	require.NoError(t, err)
	assert.Nil(t, got)

	// A second delete of the same name is a NotFound.
	assert.True(t, sales.IsNotFound(svc.DeletePaymentEntry(ctx, created.Name)))
}

// =============================================================================
// SIMULATED TRANSPORT
// =============================================================================

func TestTransientFailure_NoPartialMutation(t *testing.T) {
	// GIVEN: Two services over the same backend, one that always
	//        fails and one that never does
	// WHEN: A create fails on the flaky service
	// THEN: The backend holds no trace of the attempted record

	ctx := context.Background()
	backend := memory.New()
	gen := ident.New(rand.New(rand.NewSource(1)))

	flaky := sales.New(backend, netsim.New(0, 1, rand.New(rand.NewSource(1))), gen)
	clean := sales.New(backend, netsim.New(0, 0, rand.New(rand.NewSource(1))), gen)

	_, err := flaky.CreateCustomer(ctx, catalog.Customer{CustomerName: "Ghost Inc"})
	require.Error(t, err)
	assert.True(t, netsim.IsTransient(err))

	customers, err := clean.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestTransientFailure_SurfacesOnEveryOperation(t *testing.T) {
	ctx := context.Background()
	svc := sales.New(
		memory.New(),
		netsim.New(0, 1, rand.New(rand.NewSource(1))),
		ident.New(rand.New(rand.NewSource(1))),
	)

	_, err := svc.ListCustomers(ctx)
	assert.True(t, netsim.IsTransient(err))

	_, err = svc.GetCustomer(ctx, "CUST-001")
	assert.True(t, netsim.IsTransient(err))

	_, err = svc.KPI(ctx)
	assert.True(t, netsim.IsTransient(err))

	_, err = svc.Report(ctx, sales.DateRange{From: "2024-01-01", To: "2024-12-31"})
	assert.True(t, netsim.IsTransient(err))

	assert.True(t, netsim.IsTransient(svc.DeleteCustomer(ctx, "CUST-001")))
}

// =============================================================================
// STOCK BALANCES
// =============================================================================

func TestStockBalances_FilteredByItemAndWarehouse(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	require.NoError(t, svc.LoadDemoDataset(ctx))

	all, err := svc.StockBalances(ctx, "PROD-001", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := svc.StockBalances(ctx, "PROD-001", "Secondary Store")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.True(t, one[0].AvailableQty.Equal(decimal.NewFromInt(30)))

	none, err := svc.StockBalances(ctx, "PROD-404", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// DEMO DATASET
// =============================================================================

func TestLoadDemoDataset_ResetsAndRepopulates(t *testing.T) {
	// Loading twice leaves exactly one copy of everything, regardless
	// of records created in between.
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.LoadDemoDataset(ctx))

	_, err := svc.CreateCustomer(ctx, catalog.Customer{CustomerName: "Interloper"})
	require.NoError(t, err)

	require.NoError(t, svc.LoadDemoDataset(ctx))

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)

	orders, err := svc.ListSalesOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	got, err := svc.GetSalesOrder(ctx, "SO-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.GrandTotal.Equal(amt("1999.85")))
}
