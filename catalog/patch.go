/*
patch.go - Partial-update types for every entity kind

PURPOSE:
  Updates never replace a whole record. Callers send a patch whose
  fields are all optional; only the fields present overwrite the
  stored value, everything else is left byte-for-byte untouched.

CONVENTIONS:
  - Every patch field is a pointer. nil means "leave alone",
    non-nil means "overwrite with this value".
  - Line-item slices are replaced wholesale when present. There is no
    per-row merge.
  - Apply is a value-in value-out function so patches compose and the
    store can apply them on top of a freshly decoded record.

SEE ALSO:
  - types.go: the records being patched
  - sales/collection.go: where patches are applied inside update()
*/
package catalog

import "github.com/shopspring/decimal"

// =============================================================================
// CUSTOMER
// =============================================================================

type CustomerPatch struct {
	CustomerName    *string       `json:"customer_name,omitempty"`
	CustomerType    *CustomerType `json:"customer_type,omitempty"`
	Territory       *string       `json:"territory,omitempty"`
	CustomerGroup   *string       `json:"customer_group,omitempty"`
	ContactEmail    *string       `json:"contact_email,omitempty"`
	ContactPhone    *string       `json:"contact_phone,omitempty"`
	BillingAddress  *string       `json:"billing_address,omitempty"`
	ShippingAddress *string       `json:"shipping_address,omitempty"`
	TaxID           *string       `json:"gstin,omitempty"`
}

func (p CustomerPatch) Apply(c Customer) Customer {
	if p.CustomerName != nil {
		c.CustomerName = *p.CustomerName
	}
	if p.CustomerType != nil {
		c.CustomerType = *p.CustomerType
	}
	if p.Territory != nil {
		c.Territory = *p.Territory
	}
	if p.CustomerGroup != nil {
		c.CustomerGroup = *p.CustomerGroup
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		c.ContactPhone = *p.ContactPhone
	}
	if p.BillingAddress != nil {
		c.BillingAddress = *p.BillingAddress
	}
	if p.ShippingAddress != nil {
		c.ShippingAddress = *p.ShippingAddress
	}
	if p.TaxID != nil {
		c.TaxID = *p.TaxID
	}
	return c
}

// =============================================================================
// ITEM
// =============================================================================

type ItemPatch struct {
	ItemName     *string          `json:"item_name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	ItemGroup    *string          `json:"item_group,omitempty"`
	StockUOM     *string          `json:"stock_uom,omitempty"`
	StandardRate *decimal.Decimal `json:"standard_rate,omitempty"`
	IsStockItem  *bool            `json:"is_stock_item,omitempty"`
}

func (p ItemPatch) Apply(i Item) Item {
	if p.ItemName != nil {
		i.ItemName = *p.ItemName
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.ItemGroup != nil {
		i.ItemGroup = *p.ItemGroup
	}
	if p.StockUOM != nil {
		i.StockUOM = *p.StockUOM
	}
	if p.StandardRate != nil {
		i.StandardRate = *p.StandardRate
	}
	if p.IsStockItem != nil {
		i.IsStockItem = *p.IsStockItem
	}
	return i
}

// =============================================================================
// QUOTATION
// =============================================================================

type QuotationPatch struct {
	Customer      *string          `json:"customer,omitempty"`
	QuotationDate *string          `json:"quotation_date,omitempty"`
	ValidTill     *string          `json:"valid_till,omitempty"`
	Items         *[]LineItem      `json:"items,omitempty"`
	GrandTotal    *decimal.Decimal `json:"grand_total,omitempty"`
	Status        *QuotationStatus `json:"status,omitempty"`
}

func (p QuotationPatch) Apply(q Quotation) Quotation {
	if p.Customer != nil {
		q.Customer = *p.Customer
	}
	if p.QuotationDate != nil {
		q.QuotationDate = *p.QuotationDate
	}
	if p.ValidTill != nil {
		q.ValidTill = *p.ValidTill
	}
	if p.Items != nil {
		q.Items = *p.Items
	}
	if p.GrandTotal != nil {
		q.GrandTotal = *p.GrandTotal
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
	return q
}

// =============================================================================
// SALES ORDER
// =============================================================================

type SalesOrderPatch struct {
	Customer        *string           `json:"customer,omitempty"`
	TransactionDate *string           `json:"transaction_date,omitempty"`
	DeliveryDate    *string           `json:"delivery_date,omitempty"`
	Items           *[]LineItem       `json:"items,omitempty"`
	GrandTotal      *decimal.Decimal  `json:"grand_total,omitempty"`
	Status          *SalesOrderStatus `json:"status,omitempty"`
}

func (p SalesOrderPatch) Apply(o SalesOrder) SalesOrder {
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.TransactionDate != nil {
		o.TransactionDate = *p.TransactionDate
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = *p.DeliveryDate
	}
	if p.Items != nil {
		o.Items = *p.Items
	}
	if p.GrandTotal != nil {
		o.GrandTotal = *p.GrandTotal
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	return o
}

// =============================================================================
// DELIVERY NOTE
// =============================================================================

type DeliveryNotePatch struct {
	Customer        *string             `json:"customer,omitempty"`
	SalesOrder      *string             `json:"sales_order,omitempty"`
	PostingDate     *string             `json:"posting_date,omitempty"`
	Items           *[]DeliveryLineItem `json:"items,omitempty"`
	ShippingAddress *string             `json:"shipping_address,omitempty"`
	DeliveryStatus  *DeliveryStatus     `json:"delivery_status,omitempty"`
	Status          *DeliveryNoteStatus `json:"status,omitempty"`
}

func (p DeliveryNotePatch) Apply(d DeliveryNote) DeliveryNote {
	if p.Customer != nil {
		d.Customer = *p.Customer
	}
	if p.SalesOrder != nil {
		d.SalesOrder = *p.SalesOrder
	}
	if p.PostingDate != nil {
		d.PostingDate = *p.PostingDate
	}
	if p.Items != nil {
		d.Items = *p.Items
	}
	if p.ShippingAddress != nil {
		d.ShippingAddress = *p.ShippingAddress
	}
	if p.DeliveryStatus != nil {
		d.DeliveryStatus = *p.DeliveryStatus
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	return d
}

// =============================================================================
// SALES INVOICE
// =============================================================================

type SalesInvoicePatch struct {
	Customer          *string          `json:"customer,omitempty"`
	PostingDate       *string          `json:"posting_date,omitempty"`
	DueDate           *string          `json:"due_date,omitempty"`
	Items             *[]LineItem      `json:"items,omitempty"`
	GrandTotal        *decimal.Decimal `json:"grand_total,omitempty"`
	OutstandingAmount *decimal.Decimal `json:"outstanding_amount,omitempty"`
	Status            *InvoiceStatus   `json:"status,omitempty"`
}

func (p SalesInvoicePatch) Apply(inv SalesInvoice) SalesInvoice {
	if p.Customer != nil {
		inv.Customer = *p.Customer
	}
	if p.PostingDate != nil {
		inv.PostingDate = *p.PostingDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Items != nil {
		inv.Items = *p.Items
	}
	if p.GrandTotal != nil {
		inv.GrandTotal = *p.GrandTotal
	}
	if p.OutstandingAmount != nil {
		inv.OutstandingAmount = *p.OutstandingAmount
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	return inv
}

// =============================================================================
// PAYMENT ENTRY
// =============================================================================

type PaymentEntryPatch struct {
	PaymentType      *PaymentType     `json:"payment_type,omitempty"`
	PartyType        *string          `json:"party_type,omitempty"`
	Party            *string          `json:"party,omitempty"`
	PaidAmount       *decimal.Decimal `json:"paid_amount,omitempty"`
	PostingDate      *string          `json:"posting_date,omitempty"`
	ModeOfPayment    *PaymentMode     `json:"mode_of_payment,omitempty"`
	ReferenceInvoice *string          `json:"reference_invoice,omitempty"`
	ReferenceNo      *string          `json:"reference_no,omitempty"`
}

func (p PaymentEntryPatch) Apply(e PaymentEntry) PaymentEntry {
	if p.PaymentType != nil {
		e.PaymentType = *p.PaymentType
	}
	if p.PartyType != nil {
		e.PartyType = *p.PartyType
	}
	if p.Party != nil {
		e.Party = *p.Party
	}
	if p.PaidAmount != nil {
		e.PaidAmount = *p.PaidAmount
	}
	if p.PostingDate != nil {
		e.PostingDate = *p.PostingDate
	}
	if p.ModeOfPayment != nil {
		e.ModeOfPayment = *p.ModeOfPayment
	}
	if p.ReferenceInvoice != nil {
		e.ReferenceInvoice = *p.ReferenceInvoice
	}
	if p.ReferenceNo != nil {
		e.ReferenceNo = *p.ReferenceNo
	}
	return e
}
