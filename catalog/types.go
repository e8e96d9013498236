/*
Package catalog defines the business records managed by the sales engine.

PURPOSE:
  Typed definitions for every entity kind the engine owns: customers,
  items, quotations, sales orders, delivery notes, sales invoices,
  payment entries, plus the shared line-item shape and stock balances.
  No behavior lives here beyond vocabulary checks and line arithmetic;
  everything else consumes these types.

KEY CONCEPTS IN THIS FILE (types.go):
  - Record identifiers: every document carries a unique, immutable
    Name assigned at creation (ERPNext-style, e.g. "SO-K3J9X2M1Q").
    Items are identified by their ItemCode instead.
  - Status vocabularies: each document kind enumerates its permitted
    status values. Membership helpers are provided; the store does NOT
    enforce transition legality.
  - Money and quantities use decimal.Decimal to avoid floating-point
    drift in totals and KPI sums.
  - Dates are calendar-day strings ("2006-01-02"). KPI matching is an
    exact string comparison on these fields.

DESIGN PRINCIPLES:
  1. The store trusts caller-supplied aggregates: Amount and
     GrandTotal are never recomputed. LineTotal is a convenience for
     callers assembling documents.
  2. Field names follow the ERPNext wire shape (item_code,
     grand_total, posting_date) so documents round-trip unchanged.

SEE ALSO:
  - patch.go: partial-update types for each entity kind
  - sales/: the store facade operating on these records
*/
package catalog

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ENTITY KINDS
// =============================================================================

// Kind identifies one of the engine's record collections.
type Kind string

const (
	KindCustomer     Kind = "customer"
	KindItem         Kind = "item"
	KindQuotation    Kind = "quotation"
	KindSalesOrder   Kind = "sales_order"
	KindDeliveryNote Kind = "delivery_note"
	KindSalesInvoice Kind = "sales_invoice"
	KindPaymentEntry Kind = "payment_entry"
	KindStockBalance Kind = "stock_balance"
)

// Prefix returns the identifier prefix used for records of this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindCustomer:
		return "CUST"
	case KindItem:
		return "ITEM"
	case KindQuotation:
		return "QTN"
	case KindSalesOrder:
		return "SO"
	case KindDeliveryNote:
		return "DN"
	case KindSalesInvoice:
		return "INV"
	case KindPaymentEntry:
		return "PAY"
	default:
		return "DOC"
	}
}

// =============================================================================
// CUSTOMER
// =============================================================================

type CustomerType string

const (
	CustomerCompany    CustomerType = "Company"
	CustomerIndividual CustomerType = "Individual"
)

type Customer struct {
	Name            string       `json:"name"`
	CustomerName    string       `json:"customer_name"`
	CustomerType    CustomerType `json:"customer_type"`
	Territory       string       `json:"territory"`
	CustomerGroup   string       `json:"customer_group"`
	ContactEmail    string       `json:"contact_email,omitempty"`
	ContactPhone    string       `json:"contact_phone,omitempty"`
	BillingAddress  string       `json:"billing_address,omitempty"`
	ShippingAddress string       `json:"shipping_address,omitempty"`
	TaxID           string       `json:"gstin,omitempty"`
}

// =============================================================================
// ITEM
// =============================================================================

type Item struct {
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	Description  string          `json:"description"`
	ItemGroup    string          `json:"item_group"`
	StockUOM     string          `json:"stock_uom"`
	StandardRate decimal.Decimal `json:"standard_rate"`
	IsStockItem  bool            `json:"is_stock_item"`
}

// =============================================================================
// LINE ITEMS - shared shape across documents
// =============================================================================

// LineItem is one row of a quotation, order or invoice.
// Amount is caller-supplied; the store never recomputes it.
type LineItem struct {
	ItemCode string          `json:"item_code"`
	Qty      decimal.Decimal `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// DeliveryLineItem carries no pricing; deliveries move stock, not money.
type DeliveryLineItem struct {
	ItemCode          string          `json:"item_code"`
	Qty               decimal.Decimal `json:"qty"`
	Warehouse         string          `json:"warehouse"`
	AgainstSalesOrder string          `json:"against_sales_order,omitempty"`
}

// LineTotal computes qty x rate. Offered to callers assembling
// documents; the invariant grand_total == sum(amounts) is theirs to keep.
func LineTotal(qty, rate decimal.Decimal) decimal.Decimal {
	return qty.Mul(rate)
}

// =============================================================================
// QUOTATION
// =============================================================================

type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "Draft"
	QuotationSubmitted QuotationStatus = "Submitted"
	QuotationConverted QuotationStatus = "Converted"
	QuotationCancelled QuotationStatus = "Cancelled"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationDraft, QuotationSubmitted, QuotationConverted, QuotationCancelled:
		return true
	}
	return false
}

// Quotation is never structurally linked to a SalesOrder by the store.
// "Conversion" is a caller-side pair of operations: create the order,
// then update the quotation's status.
type Quotation struct {
	Name          string          `json:"name"`
	Customer      string          `json:"customer"`
	QuotationDate string          `json:"quotation_date"`
	ValidTill     string          `json:"valid_till"`
	Items         []LineItem      `json:"items"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Status        QuotationStatus `json:"status"`
}

// =============================================================================
// SALES ORDER
// =============================================================================

type SalesOrderStatus string

const (
	OrderDraft            SalesOrderStatus = "Draft"
	OrderToDeliverAndBill SalesOrderStatus = "To Deliver and Bill"
	OrderToBill           SalesOrderStatus = "To Bill"
	OrderToDeliver        SalesOrderStatus = "To Deliver"
	OrderCompleted        SalesOrderStatus = "Completed"
	OrderCancelled        SalesOrderStatus = "Cancelled"
)

func (s SalesOrderStatus) Valid() bool {
	switch s {
	case OrderDraft, OrderToDeliverAndBill, OrderToBill, OrderToDeliver, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type SalesOrder struct {
	Name            string           `json:"name"`
	Customer        string           `json:"customer"`
	TransactionDate string           `json:"transaction_date"`
	DeliveryDate    string           `json:"delivery_date"`
	Items           []LineItem       `json:"items"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
	Status          SalesOrderStatus `json:"status"`
}

// =============================================================================
// DELIVERY NOTE
// =============================================================================

type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "Pending"
	DeliveryOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryDelivered      DeliveryStatus = "Delivered"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryOutForDelivery, DeliveryDelivered:
		return true
	}
	return false
}

type DeliveryNoteStatus string

const (
	NoteDraft        DeliveryNoteStatus = "Draft"
	NoteToBill       DeliveryNoteStatus = "To Bill"
	NoteReturnIssued DeliveryNoteStatus = "Return Issued"
	NoteCompleted    DeliveryNoteStatus = "Completed"
	NoteCancelled    DeliveryNoteStatus = "Cancelled"
)

func (s DeliveryNoteStatus) Valid() bool {
	switch s {
	case NoteDraft, NoteToBill, NoteReturnIssued, NoteCompleted, NoteCancelled:
		return true
	}
	return false
}

type DeliveryNote struct {
	Name            string             `json:"name"`
	Customer        string             `json:"customer"`
	SalesOrder      string             `json:"sales_order,omitempty"`
	PostingDate     string             `json:"posting_date"`
	Items           []DeliveryLineItem `json:"items"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	DeliveryStatus  DeliveryStatus     `json:"delivery_status"`
	Status          DeliveryNoteStatus `json:"status"`
}

// =============================================================================
// SALES INVOICE
// =============================================================================

type InvoiceStatus string

const (
	InvoiceDraft            InvoiceStatus = "Draft"
	InvoiceReturn           InvoiceStatus = "Return"
	InvoiceCreditNoteIssued InvoiceStatus = "Credit Note Issued"
	InvoiceSubmitted        InvoiceStatus = "Submitted"
	InvoicePaid             InvoiceStatus = "Paid"
	InvoiceOverdue          InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceReturn, InvoiceCreditNoteIssued, InvoiceSubmitted, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

type SalesInvoice struct {
	Name              string          `json:"name"`
	Customer          string          `json:"customer"`
	PostingDate       string          `json:"posting_date"`
	DueDate           string          `json:"due_date"`
	Items             []LineItem      `json:"items"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Status            InvoiceStatus   `json:"status"`
}

// =============================================================================
// PAYMENT ENTRY
// =============================================================================

type PaymentType string

const (
	PaymentReceive PaymentType = "Receive"
	PaymentPay     PaymentType = "Pay"
)

type PaymentMode string

const (
	ModeCash PaymentMode = "Cash"
	ModeBank PaymentMode = "Bank"
	ModeUPI  PaymentMode = "UPI"
	ModeCard PaymentMode = "Card"
)

// PaymentEntry carries the raw invoice linkage only. No reconciliation
// against invoice outstanding amounts happens anywhere in the engine;
// compensating updates are the caller's responsibility.
type PaymentEntry struct {
	Name             string          `json:"name"`
	PaymentType      PaymentType     `json:"payment_type"`
	PartyType        string          `json:"party_type"`
	Party            string          `json:"party"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	PostingDate      string          `json:"posting_date"`
	ModeOfPayment    PaymentMode     `json:"mode_of_payment"`
	ReferenceInvoice string          `json:"reference_invoice,omitempty"`
	ReferenceNo      string          `json:"reference_no,omitempty"`
}

// =============================================================================
// STOCK BALANCE - read-only, seeded
// =============================================================================

type StockBalance struct {
	ItemCode     string          `json:"item_code"`
	Warehouse    string          `json:"warehouse"`
	ActualQty    decimal.Decimal `json:"actual_qty"`
	ReservedQty  decimal.Decimal `json:"reserved_qty"`
	AvailableQty decimal.Decimal `json:"available_qty"`
}
