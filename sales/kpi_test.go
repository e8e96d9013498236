package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/sales-engine/catalog"
)

func TestKPI_DemoDataset(t *testing.T) {
	// GIVEN: The demo dataset, clock fixed to SO-001's date
	// WHEN: Computing the dashboard snapshot
	// THEN: Every figure matches a hand computation over the seed data

	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)

	// Only SO-001 (1999.85) is dated 2024-01-20.
	assert.True(t, kpi.TodaySales.Equal(amt("1999.85")), "today_sales = %s", kpi.TodaySales)

	// DN-002 is Out for Delivery; DN-001 is Delivered.
	assert.Equal(t, 1, kpi.PendingDeliveries)

	// INV-002 (1999.85) + INV-003 (12999.90); INV-001 is Paid.
	assert.True(t, kpi.OutstandingPayments.Equal(amt("14999.75")), "outstanding = %s", kpi.OutstandingPayments)

	assert.Equal(t, 2, kpi.QuotationsCount)
	assert.Equal(t, 3, kpi.OrdersCount)
	assert.Equal(t, 2, kpi.DeliveriesCount)
	assert.Equal(t, 3, kpi.InvoicesCount)
	assert.Equal(t, 2, kpi.PaymentsCount)
}

func TestKPI_TodaySalesIsExactDateMatch(t *testing.T) {
	// A clock one day off SO-001's date excludes it; no range logic.
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-21"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.True(t, kpi.TodaySales.Equal(amt("299.99")), "only SO-002 is dated 2024-01-21")
}

func TestKPI_EmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)

	assert.True(t, kpi.TodaySales.IsZero())
	assert.True(t, kpi.OutstandingPayments.IsZero())
	assert.Zero(t, kpi.PendingDeliveries)
	assert.Zero(t, kpi.OrdersCount)
	assert.Zero(t, kpi.InvoicesCount)
}

func TestKPI_ReflectsNewOrderImmediately(t *testing.T) {
	// GIVEN: A KPI baseline over the demo dataset
	// WHEN: Creating an order dated today with grand_total 500
	// THEN: today_sales rises by exactly 500 on the next snapshot

	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	before, err := svc.KPI(ctx)
	require.NoError(t, err)

	_, err = svc.CreateSalesOrder(ctx, catalog.SalesOrder{
		Customer:        "CUST-001",
		TransactionDate: "2024-01-20",
		GrandTotal:      amt("500.00"),
		Status:          catalog.OrderDraft,
	})
	require.NoError(t, err)

	after, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.True(t, after.TodaySales.Equal(before.TodaySales.Add(amt("500.00"))))
	assert.Equal(t, before.OrdersCount+1, after.OrdersCount)
}

func TestKPI_ReflectsNewUnpaidInvoice(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	before, err := svc.KPI(ctx)
	require.NoError(t, err)

	_, err = svc.CreateSalesInvoice(ctx, catalog.SalesInvoice{
		Customer:          "CUST-002",
		PostingDate:       "2024-01-20",
		GrandTotal:        amt("500.00"),
		OutstandingAmount: amt("500.00"),
		Status:            catalog.InvoiceSubmitted,
	})
	require.NoError(t, err)

	after, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.True(t, after.OutstandingPayments.Equal(before.OutstandingPayments.Add(amt("500.00"))))
	assert.Equal(t, before.InvoicesCount+1, after.InvoicesCount)
}

func TestKPI_PayingInvoiceDropsOutstanding(t *testing.T) {
	// Marking INV-002 Paid removes its 1999.85 from the outstanding
	// sum even if outstanding_amount is left untouched.
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	paid := catalog.InvoicePaid
	_, err := svc.UpdateSalesInvoice(ctx, "INV-002", catalog.SalesInvoicePatch{Status: &paid})
	require.NoError(t, err)

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.True(t, kpi.OutstandingPayments.Equal(amt("12999.90")))
}

func TestKPI_DeletingDeliveryNoteDropsCounts(t *testing.T) {
	// GIVEN: The demo dataset with one pending delivery (DN-002)
	// WHEN: Deleting DN-002
	// THEN: Both deliveries_count and pending_deliveries drop

	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	require.NoError(t, svc.DeleteDeliveryNote(ctx, "DN-002"))

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kpi.DeliveriesCount)
	assert.Equal(t, 0, kpi.PendingDeliveries)
}

func TestKPI_DeterministicForSameState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	first, err := svc.KPI(ctx)
	require.NoError(t, err)
	second, err := svc.KPI(ctx)
	require.NoError(t, err)

	assert.True(t, first.TodaySales.Equal(second.TodaySales))
	assert.True(t, first.OutstandingPayments.Equal(second.OutstandingPayments))
	assert.Equal(t, first.PendingDeliveries, second.PendingDeliveries)
	assert.Equal(t, first.OrdersCount, second.OrdersCount)
}

func TestKPI_AllDeliveredMeansZeroPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2024-01-20"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	delivered := catalog.DeliveryDelivered
	_, err := svc.UpdateDeliveryNote(ctx, "DN-002", catalog.DeliveryNotePatch{DeliveryStatus: &delivered})
	require.NoError(t, err)

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, kpi.PendingDeliveries)
	assert.Equal(t, 2, kpi.DeliveriesCount)
}

func TestKPI_ZeroIsDecimalZeroNotMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, fixedClock("2030-01-01"))
	require.NoError(t, svc.LoadDemoDataset(ctx))

	kpi, err := svc.KPI(ctx)
	require.NoError(t, err)
	assert.True(t, kpi.TodaySales.Equal(decimal.Zero))
}
