/*
service.go - Public facade over the entity collections

PURPOSE:
  Service owns one Collection per entity kind and exposes the five
  store operations for each, every call wrapped by the simulated
  transport. This is the boundary the presentation layer talks to;
  nothing reaches the collections without passing through it.

GUARANTEES:
  - A transient failure means the store operation never ran.
  - No operation touches more than one collection. Creating a
    delivery note never mutates the originating sales order;
    compensating updates are the caller's job.
  - Records returned are defensive copies.
  - Two overlapping updates to the same identifier resolve
    last-writer-wins; completion order under differing transport
    latencies decides the winner, not call-issue order.

CLOCK:
  KPI "today" matching needs a current date. The clock is injected
  (WithClock) so tests can pin it.

SEE ALSO:
  - collection.go: the typed CRUD each method delegates to
  - kpi.go, report.go: derivations over current state
  - seed.go: the demo dataset loader
*/
package sales

import (
	"context"
	"time"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/ident"
	"github.com/warp/sales-engine/netsim"
)

// Service is the sales engine's public surface.
type Service struct {
	backend   Backend
	transport *netsim.Transport
	now       func() time.Time

	customers  *Collection[catalog.Customer]
	items      *Collection[catalog.Item]
	quotations *Collection[catalog.Quotation]
	orders     *Collection[catalog.SalesOrder]
	deliveries *Collection[catalog.DeliveryNote]
	invoices   *Collection[catalog.SalesInvoice]
	payments   *Collection[catalog.PaymentEntry]
	stock      *Collection[catalog.StockBalance]
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock used for "today" matching.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New wires the facade. The same generator feeds every collection so
// identifiers are unique per kind by prefix and suffix.
func New(backend Backend, transport *netsim.Transport, gen *ident.Generator, opts ...Option) *Service {
	s := &Service{
		backend:   backend,
		transport: transport,
		now:       time.Now,

		customers: NewCollection(catalog.KindCustomer, backend, gen,
			func(c catalog.Customer) string { return c.Name },
			func(c catalog.Customer, name string) catalog.Customer { c.Name = name; return c }),
		items: NewCollection(catalog.KindItem, backend, gen,
			func(i catalog.Item) string { return i.ItemCode },
			func(i catalog.Item, name string) catalog.Item { i.ItemCode = name; return i }),
		quotations: NewCollection(catalog.KindQuotation, backend, gen,
			func(q catalog.Quotation) string { return q.Name },
			func(q catalog.Quotation, name string) catalog.Quotation { q.Name = name; return q }),
		orders: NewCollection(catalog.KindSalesOrder, backend, gen,
			func(o catalog.SalesOrder) string { return o.Name },
			func(o catalog.SalesOrder, name string) catalog.SalesOrder { o.Name = name; return o }),
		deliveries: NewCollection(catalog.KindDeliveryNote, backend, gen,
			func(d catalog.DeliveryNote) string { return d.Name },
			func(d catalog.DeliveryNote, name string) catalog.DeliveryNote { d.Name = name; return d }),
		invoices: NewCollection(catalog.KindSalesInvoice, backend, gen,
			func(i catalog.SalesInvoice) string { return i.Name },
			func(i catalog.SalesInvoice, name string) catalog.SalesInvoice { i.Name = name; return i }),
		payments: NewCollection(catalog.KindPaymentEntry, backend, gen,
			func(p catalog.PaymentEntry) string { return p.Name },
			func(p catalog.PaymentEntry, name string) catalog.PaymentEntry { p.Name = name; return p }),
		stock: NewCollection(catalog.KindStockBalance, backend, gen,
			func(b catalog.StockBalance) string { return b.ItemCode + "|" + b.Warehouse },
			func(b catalog.StockBalance, _ string) catalog.StockBalance { return b }),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// TRANSPORT-WRAPPED HELPERS
// =============================================================================

func listVia[T any](ctx context.Context, tr *netsim.Transport, c *Collection[T]) ([]T, error) {
	var out []T
	err := tr.Do(ctx, func() error {
		var inner error
		out, inner = c.List(ctx)
		return inner
	})
	return out, err
}

func getVia[T any](ctx context.Context, tr *netsim.Transport, c *Collection[T], name string) (*T, error) {
	var out *T
	err := tr.Do(ctx, func() error {
		var inner error
		out, inner = c.Get(ctx, name)
		return inner
	})
	return out, err
}

func createVia[T any](ctx context.Context, tr *netsim.Transport, c *Collection[T], rec T) (T, error) {
	var out T
	err := tr.Do(ctx, func() error {
		var inner error
		out, inner = c.Create(ctx, rec)
		return inner
	})
	return out, err
}

func updateVia[T any](ctx context.Context, tr *netsim.Transport, c *Collection[T], name string, merge func(T) T) (T, error) {
	var out T
	err := tr.Do(ctx, func() error {
		var inner error
		out, inner = c.Update(ctx, name, merge)
		return inner
	})
	return out, err
}

func deleteVia[T any](ctx context.Context, tr *netsim.Transport, c *Collection[T], name string) error {
	return tr.Do(ctx, func() error {
		return c.Delete(ctx, name)
	})
}

// =============================================================================
// CUSTOMERS
// =============================================================================

func (s *Service) ListCustomers(ctx context.Context) ([]catalog.Customer, error) {
	return listVia(ctx, s.transport, s.customers)
}

func (s *Service) GetCustomer(ctx context.Context, name string) (*catalog.Customer, error) {
	return getVia(ctx, s.transport, s.customers, name)
}

func (s *Service) CreateCustomer(ctx context.Context, c catalog.Customer) (catalog.Customer, error) {
	return createVia(ctx, s.transport, s.customers, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, name string, p catalog.CustomerPatch) (catalog.Customer, error) {
	return updateVia(ctx, s.transport, s.customers, name, p.Apply)
}

func (s *Service) DeleteCustomer(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.customers, name)
}

// =============================================================================
// ITEMS
// =============================================================================

func (s *Service) ListItems(ctx context.Context) ([]catalog.Item, error) {
	return listVia(ctx, s.transport, s.items)
}

func (s *Service) GetItem(ctx context.Context, code string) (*catalog.Item, error) {
	return getVia(ctx, s.transport, s.items, code)
}

func (s *Service) CreateItem(ctx context.Context, i catalog.Item) (catalog.Item, error) {
	return createVia(ctx, s.transport, s.items, i)
}

func (s *Service) UpdateItem(ctx context.Context, code string, p catalog.ItemPatch) (catalog.Item, error) {
	return updateVia(ctx, s.transport, s.items, code, p.Apply)
}

func (s *Service) DeleteItem(ctx context.Context, code string) error {
	return deleteVia(ctx, s.transport, s.items, code)
}

// =============================================================================
// QUOTATIONS
// =============================================================================

func (s *Service) ListQuotations(ctx context.Context) ([]catalog.Quotation, error) {
	return listVia(ctx, s.transport, s.quotations)
}

func (s *Service) GetQuotation(ctx context.Context, name string) (*catalog.Quotation, error) {
	return getVia(ctx, s.transport, s.quotations, name)
}

func (s *Service) CreateQuotation(ctx context.Context, q catalog.Quotation) (catalog.Quotation, error) {
	return createVia(ctx, s.transport, s.quotations, q)
}

func (s *Service) UpdateQuotation(ctx context.Context, name string, p catalog.QuotationPatch) (catalog.Quotation, error) {
	return updateVia(ctx, s.transport, s.quotations, name, p.Apply)
}

func (s *Service) DeleteQuotation(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.quotations, name)
}

// =============================================================================
// SALES ORDERS
// =============================================================================

func (s *Service) ListSalesOrders(ctx context.Context) ([]catalog.SalesOrder, error) {
	return listVia(ctx, s.transport, s.orders)
}

func (s *Service) GetSalesOrder(ctx context.Context, name string) (*catalog.SalesOrder, error) {
	return getVia(ctx, s.transport, s.orders, name)
}

func (s *Service) CreateSalesOrder(ctx context.Context, o catalog.SalesOrder) (catalog.SalesOrder, error) {
	return createVia(ctx, s.transport, s.orders, o)
}

func (s *Service) UpdateSalesOrder(ctx context.Context, name string, p catalog.SalesOrderPatch) (catalog.SalesOrder, error) {
	return updateVia(ctx, s.transport, s.orders, name, p.Apply)
}

func (s *Service) DeleteSalesOrder(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.orders, name)
}

// =============================================================================
// DELIVERY NOTES
// =============================================================================

func (s *Service) ListDeliveryNotes(ctx context.Context) ([]catalog.DeliveryNote, error) {
	return listVia(ctx, s.transport, s.deliveries)
}

func (s *Service) GetDeliveryNote(ctx context.Context, name string) (*catalog.DeliveryNote, error) {
	return getVia(ctx, s.transport, s.deliveries, name)
}

func (s *Service) CreateDeliveryNote(ctx context.Context, d catalog.DeliveryNote) (catalog.DeliveryNote, error) {
	return createVia(ctx, s.transport, s.deliveries, d)
}

func (s *Service) UpdateDeliveryNote(ctx context.Context, name string, p catalog.DeliveryNotePatch) (catalog.DeliveryNote, error) {
	return updateVia(ctx, s.transport, s.deliveries, name, p.Apply)
}

func (s *Service) DeleteDeliveryNote(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.deliveries, name)
}

// =============================================================================
// SALES INVOICES
// =============================================================================

func (s *Service) ListSalesInvoices(ctx context.Context) ([]catalog.SalesInvoice, error) {
	return listVia(ctx, s.transport, s.invoices)
}

func (s *Service) GetSalesInvoice(ctx context.Context, name string) (*catalog.SalesInvoice, error) {
	return getVia(ctx, s.transport, s.invoices, name)
}

func (s *Service) CreateSalesInvoice(ctx context.Context, i catalog.SalesInvoice) (catalog.SalesInvoice, error) {
	return createVia(ctx, s.transport, s.invoices, i)
}

func (s *Service) UpdateSalesInvoice(ctx context.Context, name string, p catalog.SalesInvoicePatch) (catalog.SalesInvoice, error) {
	return updateVia(ctx, s.transport, s.invoices, name, p.Apply)
}

func (s *Service) DeleteSalesInvoice(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.invoices, name)
}

// =============================================================================
// PAYMENT ENTRIES
// =============================================================================

func (s *Service) ListPaymentEntries(ctx context.Context) ([]catalog.PaymentEntry, error) {
	return listVia(ctx, s.transport, s.payments)
}

func (s *Service) GetPaymentEntry(ctx context.Context, name string) (*catalog.PaymentEntry, error) {
	return getVia(ctx, s.transport, s.payments, name)
}

func (s *Service) CreatePaymentEntry(ctx context.Context, p catalog.PaymentEntry) (catalog.PaymentEntry, error) {
	return createVia(ctx, s.transport, s.payments, p)
}

func (s *Service) UpdatePaymentEntry(ctx context.Context, name string, p catalog.PaymentEntryPatch) (catalog.PaymentEntry, error) {
	return updateVia(ctx, s.transport, s.payments, name, p.Apply)
}

func (s *Service) DeletePaymentEntry(ctx context.Context, name string) error {
	return deleteVia(ctx, s.transport, s.payments, name)
}

// =============================================================================
// STOCK BALANCES - read-only, seeded
// =============================================================================

// StockBalances returns seeded balances for an item, optionally
// narrowed to one warehouse.
func (s *Service) StockBalances(ctx context.Context, itemCode, warehouse string) ([]catalog.StockBalance, error) {
	all, err := listVia(ctx, s.transport, s.stock)
	if err != nil {
		return nil, err
	}
	var out []catalog.StockBalance
	for _, b := range all {
		if b.ItemCode != itemCode {
			continue
		}
		if warehouse != "" && b.Warehouse != warehouse {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
