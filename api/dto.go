/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from
  the catalog types. Money crosses the wire as plain numbers (the
  dashboard frontend expects them); inside the engine everything is
  decimal. The conversion lives here and nowhere else.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - Create*Request: full-record creation bodies (name ignored)
  - Update*Request: partial bodies; absent fields leave the stored
    value untouched

VALIDATION:
  DTOs are pure data carriers. Handlers reject undecodable bodies;
  business-rule validation (negative quantities, total consistency)
  is deliberately absent, matching the engine contract.

SEE ALSO:
  - handlers.go: uses these types
  - catalog/patch.go: the typed patches Update requests convert into
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/sales"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// LINE ITEMS
// =============================================================================

type LineItemDTO struct {
	ItemCode string  `json:"item_code"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

type DeliveryLineItemDTO struct {
	ItemCode          string  `json:"item_code"`
	Qty               float64 `json:"qty"`
	Warehouse         string  `json:"warehouse"`
	AgainstSalesOrder string  `json:"against_sales_order,omitempty"`
}

func toLineItemDTOs(items []catalog.LineItem) []LineItemDTO {
	out := make([]LineItemDTO, len(items))
	for i, li := range items {
		out[i] = LineItemDTO{
			ItemCode: li.ItemCode,
			Qty:      li.Qty.InexactFloat64(),
			Rate:     li.Rate.InexactFloat64(),
			Amount:   li.Amount.InexactFloat64(),
		}
	}
	return out
}

func fromLineItemDTOs(items []LineItemDTO) []catalog.LineItem {
	out := make([]catalog.LineItem, len(items))
	for i, li := range items {
		out[i] = catalog.LineItem{
			ItemCode: li.ItemCode,
			Qty:      decimal.NewFromFloat(li.Qty),
			Rate:     decimal.NewFromFloat(li.Rate),
			Amount:   decimal.NewFromFloat(li.Amount),
		}
	}
	return out
}

func toDeliveryLineItemDTOs(items []catalog.DeliveryLineItem) []DeliveryLineItemDTO {
	out := make([]DeliveryLineItemDTO, len(items))
	for i, li := range items {
		out[i] = DeliveryLineItemDTO{
			ItemCode:          li.ItemCode,
			Qty:               li.Qty.InexactFloat64(),
			Warehouse:         li.Warehouse,
			AgainstSalesOrder: li.AgainstSalesOrder,
		}
	}
	return out
}

func fromDeliveryLineItemDTOs(items []DeliveryLineItemDTO) []catalog.DeliveryLineItem {
	out := make([]catalog.DeliveryLineItem, len(items))
	for i, li := range items {
		out[i] = catalog.DeliveryLineItem{
			ItemCode:          li.ItemCode,
			Qty:               decimal.NewFromFloat(li.Qty),
			Warehouse:         li.Warehouse,
			AgainstSalesOrder: li.AgainstSalesOrder,
		}
	}
	return out
}

// =============================================================================
// CUSTOMERS
// =============================================================================

type CustomerDTO struct {
	Name            string `json:"name"`
	CustomerName    string `json:"customer_name"`
	CustomerType    string `json:"customer_type"`
	Territory       string `json:"territory"`
	CustomerGroup   string `json:"customer_group"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	TaxID           string `json:"gstin,omitempty"`
}

func toCustomerDTO(c catalog.Customer) CustomerDTO {
	return CustomerDTO{
		Name:            c.Name,
		CustomerName:    c.CustomerName,
		CustomerType:    string(c.CustomerType),
		Territory:       c.Territory,
		CustomerGroup:   c.CustomerGroup,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		BillingAddress:  c.BillingAddress,
		ShippingAddress: c.ShippingAddress,
		TaxID:           c.TaxID,
	}
}

type CreateCustomerRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerType    string `json:"customer_type"`
	Territory       string `json:"territory"`
	CustomerGroup   string `json:"customer_group"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	BillingAddress  string `json:"billing_address"`
	ShippingAddress string `json:"shipping_address"`
	TaxID           string `json:"gstin"`
}

func (r CreateCustomerRequest) toRecord() catalog.Customer {
	return catalog.Customer{
		CustomerName:    r.CustomerName,
		CustomerType:    catalog.CustomerType(r.CustomerType),
		Territory:       r.Territory,
		CustomerGroup:   r.CustomerGroup,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		BillingAddress:  r.BillingAddress,
		ShippingAddress: r.ShippingAddress,
		TaxID:           r.TaxID,
	}
}

type UpdateCustomerRequest struct {
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerType    *string `json:"customer_type,omitempty"`
	Territory       *string `json:"territory,omitempty"`
	CustomerGroup   *string `json:"customer_group,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	BillingAddress  *string `json:"billing_address,omitempty"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
	TaxID           *string `json:"gstin,omitempty"`
}

func (r UpdateCustomerRequest) toPatch() catalog.CustomerPatch {
	p := catalog.CustomerPatch{
		CustomerName:    r.CustomerName,
		Territory:       r.Territory,
		CustomerGroup:   r.CustomerGroup,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		BillingAddress:  r.BillingAddress,
		ShippingAddress: r.ShippingAddress,
		TaxID:           r.TaxID,
	}
	if r.CustomerType != nil {
		ct := catalog.CustomerType(*r.CustomerType)
		p.CustomerType = &ct
	}
	return p
}

// =============================================================================
// ITEMS
// =============================================================================

type ItemDTO struct {
	ItemCode     string  `json:"item_code"`
	ItemName     string  `json:"item_name"`
	Description  string  `json:"description"`
	ItemGroup    string  `json:"item_group"`
	StockUOM     string  `json:"stock_uom"`
	StandardRate float64 `json:"standard_rate"`
	IsStockItem  bool    `json:"is_stock_item"`
}

func toItemDTO(i catalog.Item) ItemDTO {
	return ItemDTO{
		ItemCode:     i.ItemCode,
		ItemName:     i.ItemName,
		Description:  i.Description,
		ItemGroup:    i.ItemGroup,
		StockUOM:     i.StockUOM,
		StandardRate: i.StandardRate.InexactFloat64(),
		IsStockItem:  i.IsStockItem,
	}
}

type CreateItemRequest struct {
	ItemName     string  `json:"item_name"`
	Description  string  `json:"description"`
	ItemGroup    string  `json:"item_group"`
	StockUOM     string  `json:"stock_uom"`
	StandardRate float64 `json:"standard_rate"`
	IsStockItem  bool    `json:"is_stock_item"`
}

func (r CreateItemRequest) toRecord() catalog.Item {
	return catalog.Item{
		ItemName:     r.ItemName,
		Description:  r.Description,
		ItemGroup:    r.ItemGroup,
		StockUOM:     r.StockUOM,
		StandardRate: decimal.NewFromFloat(r.StandardRate),
		IsStockItem:  r.IsStockItem,
	}
}

type UpdateItemRequest struct {
	ItemName     *string  `json:"item_name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	ItemGroup    *string  `json:"item_group,omitempty"`
	StockUOM     *string  `json:"stock_uom,omitempty"`
	StandardRate *float64 `json:"standard_rate,omitempty"`
	IsStockItem  *bool    `json:"is_stock_item,omitempty"`
}

func (r UpdateItemRequest) toPatch() catalog.ItemPatch {
	p := catalog.ItemPatch{
		ItemName:    r.ItemName,
		Description: r.Description,
		ItemGroup:   r.ItemGroup,
		StockUOM:    r.StockUOM,
		IsStockItem: r.IsStockItem,
	}
	if r.StandardRate != nil {
		d := decimal.NewFromFloat(*r.StandardRate)
		p.StandardRate = &d
	}
	return p
}

// =============================================================================
// QUOTATIONS
// =============================================================================

type QuotationDTO struct {
	Name          string        `json:"name"`
	Customer      string        `json:"customer"`
	QuotationDate string        `json:"quotation_date"`
	ValidTill     string        `json:"valid_till"`
	Items         []LineItemDTO `json:"items"`
	GrandTotal    float64       `json:"grand_total"`
	Status        string        `json:"status"`
}

func toQuotationDTO(q catalog.Quotation) QuotationDTO {
	return QuotationDTO{
		Name:          q.Name,
		Customer:      q.Customer,
		QuotationDate: q.QuotationDate,
		ValidTill:     q.ValidTill,
		Items:         toLineItemDTOs(q.Items),
		GrandTotal:    q.GrandTotal.InexactFloat64(),
		Status:        string(q.Status),
	}
}

type CreateQuotationRequest struct {
	Customer      string        `json:"customer"`
	QuotationDate string        `json:"quotation_date"`
	ValidTill     string        `json:"valid_till"`
	Items         []LineItemDTO `json:"items"`
	GrandTotal    float64       `json:"grand_total"`
	Status        string        `json:"status"`
}

func (r CreateQuotationRequest) toRecord() catalog.Quotation {
	return catalog.Quotation{
		Customer:      r.Customer,
		QuotationDate: r.QuotationDate,
		ValidTill:     r.ValidTill,
		Items:         fromLineItemDTOs(r.Items),
		GrandTotal:    decimal.NewFromFloat(r.GrandTotal),
		Status:        catalog.QuotationStatus(r.Status),
	}
}

type UpdateQuotationRequest struct {
	Customer      *string        `json:"customer,omitempty"`
	QuotationDate *string        `json:"quotation_date,omitempty"`
	ValidTill     *string        `json:"valid_till,omitempty"`
	Items         *[]LineItemDTO `json:"items,omitempty"`
	GrandTotal    *float64       `json:"grand_total,omitempty"`
	Status        *string        `json:"status,omitempty"`
}

func (r UpdateQuotationRequest) toPatch() catalog.QuotationPatch {
	p := catalog.QuotationPatch{
		Customer:      r.Customer,
		QuotationDate: r.QuotationDate,
		ValidTill:     r.ValidTill,
	}
	if r.Items != nil {
		items := fromLineItemDTOs(*r.Items)
		p.Items = &items
	}
	if r.GrandTotal != nil {
		d := decimal.NewFromFloat(*r.GrandTotal)
		p.GrandTotal = &d
	}
	if r.Status != nil {
		st := catalog.QuotationStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// =============================================================================
// SALES ORDERS
// =============================================================================

type SalesOrderDTO struct {
	Name            string        `json:"name"`
	Customer        string        `json:"customer"`
	TransactionDate string        `json:"transaction_date"`
	DeliveryDate    string        `json:"delivery_date"`
	Items           []LineItemDTO `json:"items"`
	GrandTotal      float64       `json:"grand_total"`
	Status          string        `json:"status"`
}

func toSalesOrderDTO(o catalog.SalesOrder) SalesOrderDTO {
	return SalesOrderDTO{
		Name:            o.Name,
		Customer:        o.Customer,
		TransactionDate: o.TransactionDate,
		DeliveryDate:    o.DeliveryDate,
		Items:           toLineItemDTOs(o.Items),
		GrandTotal:      o.GrandTotal.InexactFloat64(),
		Status:          string(o.Status),
	}
}

type CreateSalesOrderRequest struct {
	Customer        string        `json:"customer"`
	TransactionDate string        `json:"transaction_date"`
	DeliveryDate    string        `json:"delivery_date"`
	Items           []LineItemDTO `json:"items"`
	GrandTotal      float64       `json:"grand_total"`
	Status          string        `json:"status"`
}

func (r CreateSalesOrderRequest) toRecord() catalog.SalesOrder {
	return catalog.SalesOrder{
		Customer:        r.Customer,
		TransactionDate: r.TransactionDate,
		DeliveryDate:    r.DeliveryDate,
		Items:           fromLineItemDTOs(r.Items),
		GrandTotal:      decimal.NewFromFloat(r.GrandTotal),
		Status:          catalog.SalesOrderStatus(r.Status),
	}
}

type UpdateSalesOrderRequest struct {
	Customer        *string        `json:"customer,omitempty"`
	TransactionDate *string        `json:"transaction_date,omitempty"`
	DeliveryDate    *string        `json:"delivery_date,omitempty"`
	Items           *[]LineItemDTO `json:"items,omitempty"`
	GrandTotal      *float64       `json:"grand_total,omitempty"`
	Status          *string        `json:"status,omitempty"`
}

func (r UpdateSalesOrderRequest) toPatch() catalog.SalesOrderPatch {
	p := catalog.SalesOrderPatch{
		Customer:        r.Customer,
		TransactionDate: r.TransactionDate,
		DeliveryDate:    r.DeliveryDate,
	}
	if r.Items != nil {
		items := fromLineItemDTOs(*r.Items)
		p.Items = &items
	}
	if r.GrandTotal != nil {
		d := decimal.NewFromFloat(*r.GrandTotal)
		p.GrandTotal = &d
	}
	if r.Status != nil {
		st := catalog.SalesOrderStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// =============================================================================
// DELIVERY NOTES
// =============================================================================

type DeliveryNoteDTO struct {
	Name            string                `json:"name"`
	Customer        string                `json:"customer"`
	SalesOrder      string                `json:"sales_order,omitempty"`
	PostingDate     string                `json:"posting_date"`
	Items           []DeliveryLineItemDTO `json:"items"`
	ShippingAddress string                `json:"shipping_address,omitempty"`
	DeliveryStatus  string                `json:"delivery_status"`
	Status          string                `json:"status"`
}

func toDeliveryNoteDTO(d catalog.DeliveryNote) DeliveryNoteDTO {
	return DeliveryNoteDTO{
		Name:            d.Name,
		Customer:        d.Customer,
		SalesOrder:      d.SalesOrder,
		PostingDate:     d.PostingDate,
		Items:           toDeliveryLineItemDTOs(d.Items),
		ShippingAddress: d.ShippingAddress,
		DeliveryStatus:  string(d.DeliveryStatus),
		Status:          string(d.Status),
	}
}

type CreateDeliveryNoteRequest struct {
	Customer        string                `json:"customer"`
	SalesOrder      string                `json:"sales_order"`
	PostingDate     string                `json:"posting_date"`
	Items           []DeliveryLineItemDTO `json:"items"`
	ShippingAddress string                `json:"shipping_address"`
	DeliveryStatus  string                `json:"delivery_status"`
	Status          string                `json:"status"`
}

func (r CreateDeliveryNoteRequest) toRecord() catalog.DeliveryNote {
	return catalog.DeliveryNote{
		Customer:        r.Customer,
		SalesOrder:      r.SalesOrder,
		PostingDate:     r.PostingDate,
		Items:           fromDeliveryLineItemDTOs(r.Items),
		ShippingAddress: r.ShippingAddress,
		DeliveryStatus:  catalog.DeliveryStatus(r.DeliveryStatus),
		Status:          catalog.DeliveryNoteStatus(r.Status),
	}
}

type UpdateDeliveryNoteRequest struct {
	Customer        *string                `json:"customer,omitempty"`
	SalesOrder      *string                `json:"sales_order,omitempty"`
	PostingDate     *string                `json:"posting_date,omitempty"`
	Items           *[]DeliveryLineItemDTO `json:"items,omitempty"`
	ShippingAddress *string                `json:"shipping_address,omitempty"`
	DeliveryStatus  *string                `json:"delivery_status,omitempty"`
	Status          *string                `json:"status,omitempty"`
}

func (r UpdateDeliveryNoteRequest) toPatch() catalog.DeliveryNotePatch {
	p := catalog.DeliveryNotePatch{
		Customer:        r.Customer,
		SalesOrder:      r.SalesOrder,
		PostingDate:     r.PostingDate,
		ShippingAddress: r.ShippingAddress,
	}
	if r.Items != nil {
		items := fromDeliveryLineItemDTOs(*r.Items)
		p.Items = &items
	}
	if r.DeliveryStatus != nil {
		ds := catalog.DeliveryStatus(*r.DeliveryStatus)
		p.DeliveryStatus = &ds
	}
	if r.Status != nil {
		st := catalog.DeliveryNoteStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// =============================================================================
// SALES INVOICES
// =============================================================================

type SalesInvoiceDTO struct {
	Name              string        `json:"name"`
	Customer          string        `json:"customer"`
	PostingDate       string        `json:"posting_date"`
	DueDate           string        `json:"due_date"`
	Items             []LineItemDTO `json:"items"`
	GrandTotal        float64       `json:"grand_total"`
	OutstandingAmount float64       `json:"outstanding_amount"`
	Status            string        `json:"status"`
}

func toSalesInvoiceDTO(i catalog.SalesInvoice) SalesInvoiceDTO {
	return SalesInvoiceDTO{
		Name:              i.Name,
		Customer:          i.Customer,
		PostingDate:       i.PostingDate,
		DueDate:           i.DueDate,
		Items:             toLineItemDTOs(i.Items),
		GrandTotal:        i.GrandTotal.InexactFloat64(),
		OutstandingAmount: i.OutstandingAmount.InexactFloat64(),
		Status:            string(i.Status),
	}
}

type CreateSalesInvoiceRequest struct {
	Customer          string        `json:"customer"`
	PostingDate       string        `json:"posting_date"`
	DueDate           string        `json:"due_date"`
	Items             []LineItemDTO `json:"items"`
	GrandTotal        float64       `json:"grand_total"`
	OutstandingAmount float64       `json:"outstanding_amount"`
	Status            string        `json:"status"`
}

func (r CreateSalesInvoiceRequest) toRecord() catalog.SalesInvoice {
	return catalog.SalesInvoice{
		Customer:          r.Customer,
		PostingDate:       r.PostingDate,
		DueDate:           r.DueDate,
		Items:             fromLineItemDTOs(r.Items),
		GrandTotal:        decimal.NewFromFloat(r.GrandTotal),
		OutstandingAmount: decimal.NewFromFloat(r.OutstandingAmount),
		Status:            catalog.InvoiceStatus(r.Status),
	}
}

type UpdateSalesInvoiceRequest struct {
	Customer          *string        `json:"customer,omitempty"`
	PostingDate       *string        `json:"posting_date,omitempty"`
	DueDate           *string        `json:"due_date,omitempty"`
	Items             *[]LineItemDTO `json:"items,omitempty"`
	GrandTotal        *float64       `json:"grand_total,omitempty"`
	OutstandingAmount *float64       `json:"outstanding_amount,omitempty"`
	Status            *string        `json:"status,omitempty"`
}

func (r UpdateSalesInvoiceRequest) toPatch() catalog.SalesInvoicePatch {
	p := catalog.SalesInvoicePatch{
		Customer:    r.Customer,
		PostingDate: r.PostingDate,
		DueDate:     r.DueDate,
	}
	if r.Items != nil {
		items := fromLineItemDTOs(*r.Items)
		p.Items = &items
	}
	if r.GrandTotal != nil {
		d := decimal.NewFromFloat(*r.GrandTotal)
		p.GrandTotal = &d
	}
	if r.OutstandingAmount != nil {
		d := decimal.NewFromFloat(*r.OutstandingAmount)
		p.OutstandingAmount = &d
	}
	if r.Status != nil {
		st := catalog.InvoiceStatus(*r.Status)
		p.Status = &st
	}
	return p
}

// =============================================================================
// PAYMENT ENTRIES
// =============================================================================

type PaymentEntryDTO struct {
	Name             string  `json:"name"`
	PaymentType      string  `json:"payment_type"`
	PartyType        string  `json:"party_type"`
	Party            string  `json:"party"`
	PaidAmount       float64 `json:"paid_amount"`
	PostingDate      string  `json:"posting_date"`
	ModeOfPayment    string  `json:"mode_of_payment"`
	ReferenceInvoice string  `json:"reference_invoice,omitempty"`
	ReferenceNo      string  `json:"reference_no,omitempty"`
}

func toPaymentEntryDTO(p catalog.PaymentEntry) PaymentEntryDTO {
	return PaymentEntryDTO{
		Name:             p.Name,
		PaymentType:      string(p.PaymentType),
		PartyType:        p.PartyType,
		Party:            p.Party,
		PaidAmount:       p.PaidAmount.InexactFloat64(),
		PostingDate:      p.PostingDate,
		ModeOfPayment:    string(p.ModeOfPayment),
		ReferenceInvoice: p.ReferenceInvoice,
		ReferenceNo:      p.ReferenceNo,
	}
}

type CreatePaymentEntryRequest struct {
	PaymentType      string  `json:"payment_type"`
	PartyType        string  `json:"party_type"`
	Party            string  `json:"party"`
	PaidAmount       float64 `json:"paid_amount"`
	PostingDate      string  `json:"posting_date"`
	ModeOfPayment    string  `json:"mode_of_payment"`
	ReferenceInvoice string  `json:"reference_invoice"`
	ReferenceNo      string  `json:"reference_no"`
}

func (r CreatePaymentEntryRequest) toRecord() catalog.PaymentEntry {
	return catalog.PaymentEntry{
		PaymentType:      catalog.PaymentType(r.PaymentType),
		PartyType:        r.PartyType,
		Party:            r.Party,
		PaidAmount:       decimal.NewFromFloat(r.PaidAmount),
		PostingDate:      r.PostingDate,
		ModeOfPayment:    catalog.PaymentMode(r.ModeOfPayment),
		ReferenceInvoice: r.ReferenceInvoice,
		ReferenceNo:      r.ReferenceNo,
	}
}

type UpdatePaymentEntryRequest struct {
	PaymentType      *string  `json:"payment_type,omitempty"`
	PartyType        *string  `json:"party_type,omitempty"`
	Party            *string  `json:"party,omitempty"`
	PaidAmount       *float64 `json:"paid_amount,omitempty"`
	PostingDate      *string  `json:"posting_date,omitempty"`
	ModeOfPayment    *string  `json:"mode_of_payment,omitempty"`
	ReferenceInvoice *string  `json:"reference_invoice,omitempty"`
	ReferenceNo      *string  `json:"reference_no,omitempty"`
}

func (r UpdatePaymentEntryRequest) toPatch() catalog.PaymentEntryPatch {
	p := catalog.PaymentEntryPatch{
		PartyType:        r.PartyType,
		Party:            r.Party,
		PostingDate:      r.PostingDate,
		ReferenceInvoice: r.ReferenceInvoice,
		ReferenceNo:      r.ReferenceNo,
	}
	if r.PaymentType != nil {
		pt := catalog.PaymentType(*r.PaymentType)
		p.PaymentType = &pt
	}
	if r.PaidAmount != nil {
		d := decimal.NewFromFloat(*r.PaidAmount)
		p.PaidAmount = &d
	}
	if r.ModeOfPayment != nil {
		m := catalog.PaymentMode(*r.ModeOfPayment)
		p.ModeOfPayment = &m
	}
	return p
}

// =============================================================================
// STOCK, KPI, REPORTS
// =============================================================================

type StockBalanceDTO struct {
	ItemCode     string  `json:"item_code"`
	Warehouse    string  `json:"warehouse"`
	ActualQty    float64 `json:"actual_qty"`
	ReservedQty  float64 `json:"reserved_qty"`
	AvailableQty float64 `json:"available_qty"`
}

func toStockBalanceDTO(b catalog.StockBalance) StockBalanceDTO {
	return StockBalanceDTO{
		ItemCode:     b.ItemCode,
		Warehouse:    b.Warehouse,
		ActualQty:    b.ActualQty.InexactFloat64(),
		ReservedQty:  b.ReservedQty.InexactFloat64(),
		AvailableQty: b.AvailableQty.InexactFloat64(),
	}
}

type KPIDTO struct {
	TodaySales          float64 `json:"today_sales"`
	PendingDeliveries   int     `json:"pending_deliveries"`
	OutstandingPayments float64 `json:"outstanding_payments"`
	QuotationsCount     int     `json:"quotations_count"`
	OrdersCount         int     `json:"orders_count"`
	DeliveriesCount     int     `json:"deliveries_count"`
	InvoicesCount       int     `json:"invoices_count"`
	PaymentsCount       int     `json:"payments_count"`
}

func toKPIDTO(k sales.KPIData) KPIDTO {
	return KPIDTO{
		TodaySales:          k.TodaySales.InexactFloat64(),
		PendingDeliveries:   k.PendingDeliveries,
		OutstandingPayments: k.OutstandingPayments.InexactFloat64(),
		QuotationsCount:     k.QuotationsCount,
		OrdersCount:         k.OrdersCount,
		DeliveriesCount:     k.DeliveriesCount,
		InvoicesCount:       k.InvoicesCount,
		PaymentsCount:       k.PaymentsCount,
	}
}

type DateRangeDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TrendPointDTO struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type CustomerSalesDTO struct {
	Customer   string  `json:"customer"`
	TotalSales float64 `json:"total_sales"`
}

type ItemSalesDTO struct {
	ItemCode    string  `json:"item_code"`
	ItemName    string  `json:"item_name"`
	QtySold     float64 `json:"qty_sold"`
	TotalAmount float64 `json:"total_amount"`
}

type ReportDTO struct {
	DateRange    DateRangeDTO       `json:"date_range"`
	SalesTrends  []TrendPointDTO    `json:"sales_trends"`
	TopCustomers []CustomerSalesDTO `json:"top_customers"`
	TopItems     []ItemSalesDTO     `json:"top_items"`
}

func toReportDTO(r sales.ReportData) ReportDTO {
	out := ReportDTO{
		DateRange:    DateRangeDTO{From: r.DateRange.From, To: r.DateRange.To},
		SalesTrends:  make([]TrendPointDTO, len(r.SalesTrends)),
		TopCustomers: make([]CustomerSalesDTO, len(r.TopCustomers)),
		TopItems:     make([]ItemSalesDTO, len(r.TopItems)),
	}
	for i, p := range r.SalesTrends {
		out.SalesTrends[i] = TrendPointDTO{Date: p.Date, Amount: p.Amount.InexactFloat64()}
	}
	for i, c := range r.TopCustomers {
		out.TopCustomers[i] = CustomerSalesDTO{Customer: c.Customer, TotalSales: c.TotalSales.InexactFloat64()}
	}
	for i, it := range r.TopItems {
		out.TopItems[i] = ItemSalesDTO{
			ItemCode:    it.ItemCode,
			ItemName:    it.ItemName,
			QtySold:     it.QtySold.InexactFloat64(),
			TotalAmount: it.TotalAmount.InexactFloat64(),
		}
	}
	return out
}

// =============================================================================
// SCENARIOS
// =============================================================================

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}
