/*
kpi.go - Dashboard metrics derived from current store state

PURPOSE:
  Recomputes every figure from scratch on each call. There is no
  incremental aggregation and no cache; the store never notifies the
  aggregator. Safe to call at any frequency - it is a pure read.

METRICS:
  today_sales          sum of grand_total over sales orders whose
                       transaction_date equals today (exact string
                       match, not a range)
  pending_deliveries   count of delivery notes not yet Delivered
  outstanding_payments sum of outstanding_amount over invoices whose
                       status is not Paid
  *_count              collection sizes

SEE ALSO:
  - report.go: the time-ranged derivations
*/
package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/warp/sales-engine/catalog"
)

// KPIData is one dashboard snapshot.
type KPIData struct {
	TodaySales          decimal.Decimal `json:"today_sales"`
	PendingDeliveries   int             `json:"pending_deliveries"`
	OutstandingPayments decimal.Decimal `json:"outstanding_payments"`
	QuotationsCount     int             `json:"quotations_count"`
	OrdersCount         int             `json:"orders_count"`
	DeliveriesCount     int             `json:"deliveries_count"`
	InvoicesCount       int             `json:"invoices_count"`
	PaymentsCount       int             `json:"payments_count"`
}

// KPI recomputes all dashboard metrics from current state. One
// transport round-trip covers the whole snapshot.
func (s *Service) KPI(ctx context.Context) (KPIData, error) {
	var kpi KPIData
	err := s.transport.Do(ctx, func() error {
		var inner error
		kpi, inner = s.computeKPI(ctx)
		return inner
	})
	return kpi, err
}

func (s *Service) computeKPI(ctx context.Context) (KPIData, error) {
	var kpi KPIData

	today := s.now().Format("2006-01-02")

	orders, err := s.orders.List(ctx)
	if err != nil {
		return kpi, err
	}
	kpi.TodaySales = decimal.Zero
	for _, o := range orders {
		if o.TransactionDate == today {
			kpi.TodaySales = kpi.TodaySales.Add(o.GrandTotal)
		}
	}
	kpi.OrdersCount = len(orders)

	deliveries, err := s.deliveries.List(ctx)
	if err != nil {
		return kpi, err
	}
	for _, d := range deliveries {
		if d.DeliveryStatus != catalog.DeliveryDelivered {
			kpi.PendingDeliveries++
		}
	}
	kpi.DeliveriesCount = len(deliveries)

	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return kpi, err
	}
	kpi.OutstandingPayments = decimal.Zero
	for _, inv := range invoices {
		if inv.Status != catalog.InvoicePaid {
			kpi.OutstandingPayments = kpi.OutstandingPayments.Add(inv.OutstandingAmount)
		}
	}
	kpi.InvoicesCount = len(invoices)

	quotations, err := s.quotations.List(ctx)
	if err != nil {
		return kpi, err
	}
	kpi.QuotationsCount = len(quotations)

	payments, err := s.payments.List(ctx)
	if err != nil {
		return kpi, err
	}
	kpi.PaymentsCount = len(payments)

	return kpi, nil
}
