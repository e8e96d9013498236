/*
seed.go - Demo dataset loader

PURPOSE:
  Populates the store with a small, realistic dataset: five
  customers, five items, and a handful of documents in various
  lifecycle states, plus stock balances for the stock query. Used by
  the server's -demo flag and the scenario endpoint for demos and
  manual testing.

NOTE:
  Seeding resets the store first and bypasses the simulated
  transport - it is an operator action, not a simulated client call.
  Seed records keep their well-known names (CUST-001, PROD-001, ...)
  instead of generated identifiers.

SEE ALSO:
  - api/scenarios.go: the HTTP trigger for this loader
*/
package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/sales-engine/catalog"
)

// DemoScenarioID names the single built-in scenario.
const DemoScenarioID = "demo-dataset"

// LoadDemoDataset resets the store and loads the demo records.
func (s *Service) LoadDemoDataset(ctx context.Context) error {
	if err := s.backend.Reset(ctx); err != nil {
		return fmt.Errorf("reset before seed: %w", err)
	}

	for _, c := range demoCustomers() {
		if err := s.customers.Seed(ctx, c); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}
	for _, i := range demoItems() {
		if err := s.items.Seed(ctx, i); err != nil {
			return fmt.Errorf("seed items: %w", err)
		}
	}
	for _, q := range demoQuotations() {
		if err := s.quotations.Seed(ctx, q); err != nil {
			return fmt.Errorf("seed quotations: %w", err)
		}
	}
	for _, o := range demoSalesOrders() {
		if err := s.orders.Seed(ctx, o); err != nil {
			return fmt.Errorf("seed sales orders: %w", err)
		}
	}
	for _, d := range demoDeliveryNotes() {
		if err := s.deliveries.Seed(ctx, d); err != nil {
			return fmt.Errorf("seed delivery notes: %w", err)
		}
	}
	for _, i := range demoSalesInvoices() {
		if err := s.invoices.Seed(ctx, i); err != nil {
			return fmt.Errorf("seed sales invoices: %w", err)
		}
	}
	for _, p := range demoPaymentEntries() {
		if err := s.payments.Seed(ctx, p); err != nil {
			return fmt.Errorf("seed payment entries: %w", err)
		}
	}
	for _, b := range demoStockBalances() {
		if err := s.stock.Seed(ctx, b); err != nil {
			return fmt.Errorf("seed stock balances: %w", err)
		}
	}
	return nil
}

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }
func qty(n int64) decimal.Decimal  { return decimal.NewFromInt(n) }

func demoCustomers() []catalog.Customer {
	return []catalog.Customer{
		{
			Name: "CUST-001", CustomerName: "Acme Corporation", CustomerType: catalog.CustomerCompany,
			Territory: "North Zone", CustomerGroup: "B2B Enterprise",
			ContactEmail: "contact@acme.com", ContactPhone: "+1-555-0123",
			BillingAddress:  "123 Business St, Corporate City, CC 12345",
			ShippingAddress: "456 Warehouse Ave, Industrial Zone, IZ 67890",
			TaxID:           "29ABCDE1234F1Z5",
		},
		{
			Name: "CUST-002", CustomerName: "Tech Solutions Ltd", CustomerType: catalog.CustomerCompany,
			Territory: "South Zone", CustomerGroup: "B2B Enterprise",
			ContactEmail: "orders@techsolutions.com", ContactPhone: "+1-555-0124",
			BillingAddress:  "789 Tech Park, Silicon Valley, SV 11111",
			ShippingAddress: "789 Tech Park, Silicon Valley, SV 11111",
			TaxID:           "29ABCDE1234F2Z6",
		},
		{
			Name: "CUST-003", CustomerName: "John Smith", CustomerType: catalog.CustomerIndividual,
			Territory: "East Zone", CustomerGroup: "Retail",
			ContactEmail: "john.smith@email.com", ContactPhone: "+1-555-0125",
		},
		{
			Name: "CUST-004", CustomerName: "Global Manufacturing Inc", CustomerType: catalog.CustomerCompany,
			Territory: "West Zone", CustomerGroup: "B2B Enterprise",
			ContactEmail: "procurement@global-mfg.com", ContactPhone: "+1-555-0126",
			BillingAddress:  "101 Industrial Blvd, Manufacturing District, MD 54321",
			ShippingAddress: "202 Distribution Center, Logistics Park, LP 98765",
			TaxID:           "29ABCDE1234F3Z7",
		},
		{
			Name: "CUST-005", CustomerName: "Sarah Johnson", CustomerType: catalog.CustomerIndividual,
			Territory: "Central Zone", CustomerGroup: "Retail",
			ContactEmail: "sarah.j@email.com", ContactPhone: "+1-555-0127",
		},
	}
}

func demoItems() []catalog.Item {
	return []catalog.Item{
		{
			ItemCode: "PROD-001", ItemName: "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			ItemGroup:   "Electronics", StockUOM: "Nos", StandardRate: amt("299.99"), IsStockItem: true,
		},
		{
			ItemCode: "PROD-002", ItemName: "Smart Phone Case",
			Description: "Protective case for smartphones with premium materials",
			ItemGroup:   "Accessories", StockUOM: "Nos", StandardRate: amt("49.99"), IsStockItem: true,
		},
		{
			ItemCode: "SERV-001", ItemName: "Installation Service",
			Description: "Professional installation and setup service",
			ItemGroup:   "Services", StockUOM: "Hours", StandardRate: amt("75.00"), IsStockItem: false,
		},
		{
			ItemCode: "PROD-003", ItemName: "Laptop Computer",
			Description: "High-performance laptop for business use",
			ItemGroup:   "Electronics", StockUOM: "Nos", StandardRate: amt("1299.99"), IsStockItem: true,
		},
		{
			ItemCode: "PROD-004", ItemName: "Office Chair",
			Description: "Ergonomic office chair with lumbar support",
			ItemGroup:   "Furniture", StockUOM: "Nos", StandardRate: amt("399.99"), IsStockItem: true,
		},
	}
}

func demoQuotations() []catalog.Quotation {
	return []catalog.Quotation{
		{
			Name: "QTN-001", Customer: "Acme Corporation",
			QuotationDate: "2024-01-15", ValidTill: "2024-02-15",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-001", Qty: qty(10), Rate: amt("299.99"), Amount: amt("2999.90")},
				{ItemCode: "PROD-002", Qty: qty(20), Rate: amt("49.99"), Amount: amt("999.80")},
			},
			GrandTotal: amt("3999.70"), Status: catalog.QuotationSubmitted,
		},
		{
			Name: "QTN-002", Customer: "Tech Solutions Ltd",
			QuotationDate: "2024-01-16", ValidTill: "2024-02-16",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-003", Qty: qty(5), Rate: amt("1299.99"), Amount: amt("6499.95")},
			},
			GrandTotal: amt("6499.95"), Status: catalog.QuotationDraft,
		},
	}
}

func demoSalesOrders() []catalog.SalesOrder {
	return []catalog.SalesOrder{
		{
			Name: "SO-001", Customer: "Acme Corporation",
			TransactionDate: "2024-01-20", DeliveryDate: "2024-01-25",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-001", Qty: qty(5), Rate: amt("299.99"), Amount: amt("1499.95")},
				{ItemCode: "PROD-002", Qty: qty(10), Rate: amt("49.99"), Amount: amt("499.90")},
			},
			GrandTotal: amt("1999.85"), Status: catalog.OrderToDeliverAndBill,
		},
		{
			Name: "SO-002", Customer: "John Smith",
			TransactionDate: "2024-01-21", DeliveryDate: "2024-01-23",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-001", Qty: qty(1), Rate: amt("299.99"), Amount: amt("299.99")},
			},
			GrandTotal: amt("299.99"), Status: catalog.OrderCompleted,
		},
		{
			Name: "SO-003", Customer: "Global Manufacturing Inc",
			TransactionDate: "2024-01-22", DeliveryDate: "2024-01-28",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-003", Qty: qty(25), Rate: amt("1299.99"), Amount: amt("32499.75")},
				{ItemCode: "PROD-004", Qty: qty(25), Rate: amt("399.99"), Amount: amt("9999.75")},
			},
			GrandTotal: amt("42499.50"), Status: catalog.OrderToDeliverAndBill,
		},
	}
}

func demoDeliveryNotes() []catalog.DeliveryNote {
	return []catalog.DeliveryNote{
		{
			Name: "DN-001", Customer: "John Smith", SalesOrder: "SO-002",
			PostingDate: "2024-01-23",
			Items: []catalog.DeliveryLineItem{
				{ItemCode: "PROD-001", Qty: qty(1), Warehouse: "Main Store"},
			},
			ShippingAddress: "789 Home Street, Residential Area, RA 12345",
			DeliveryStatus:  catalog.DeliveryDelivered, Status: catalog.NoteCompleted,
		},
		{
			Name: "DN-002", Customer: "Acme Corporation", SalesOrder: "SO-001",
			PostingDate: "2024-01-24",
			Items: []catalog.DeliveryLineItem{
				{ItemCode: "PROD-001", Qty: qty(5), Warehouse: "Main Store"},
				{ItemCode: "PROD-002", Qty: qty(10), Warehouse: "Main Store"},
			},
			ShippingAddress: "456 Warehouse Ave, Industrial Zone, IZ 67890",
			DeliveryStatus:  catalog.DeliveryOutForDelivery, Status: catalog.NoteToBill,
		},
	}
}

func demoSalesInvoices() []catalog.SalesInvoice {
	return []catalog.SalesInvoice{
		{
			Name: "INV-001", Customer: "John Smith",
			PostingDate: "2024-01-23", DueDate: "2024-02-23",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-001", Qty: qty(1), Rate: amt("299.99"), Amount: amt("299.99")},
			},
			GrandTotal: amt("299.99"), OutstandingAmount: decimal.Zero, Status: catalog.InvoicePaid,
		},
		{
			Name: "INV-002", Customer: "Acme Corporation",
			PostingDate: "2024-01-25", DueDate: "2024-02-25",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-001", Qty: qty(5), Rate: amt("299.99"), Amount: amt("1499.95")},
				{ItemCode: "PROD-002", Qty: qty(10), Rate: amt("49.99"), Amount: amt("499.90")},
			},
			GrandTotal: amt("1999.85"), OutstandingAmount: amt("1999.85"), Status: catalog.InvoiceSubmitted,
		},
		{
			Name: "INV-003", Customer: "Global Manufacturing Inc",
			PostingDate: "2024-01-15", DueDate: "2024-01-15",
			Items: []catalog.LineItem{
				{ItemCode: "PROD-003", Qty: qty(10), Rate: amt("1299.99"), Amount: amt("12999.90")},
			},
			GrandTotal: amt("12999.90"), OutstandingAmount: amt("12999.90"), Status: catalog.InvoiceOverdue,
		},
	}
}

func demoPaymentEntries() []catalog.PaymentEntry {
	return []catalog.PaymentEntry{
		{
			Name: "PAY-001", PaymentType: catalog.PaymentReceive, PartyType: "Customer",
			Party: "John Smith", PaidAmount: amt("299.99"), PostingDate: "2024-01-23",
			ModeOfPayment: catalog.ModeUPI, ReferenceInvoice: "INV-001", ReferenceNo: "UPI123456789",
		},
		{
			Name: "PAY-002", PaymentType: catalog.PaymentReceive, PartyType: "Customer",
			Party: "Tech Solutions Ltd", PaidAmount: amt("5000.00"), PostingDate: "2024-01-20",
			ModeOfPayment: catalog.ModeBank, ReferenceNo: "CHQ789012345",
		},
	}
}

func demoStockBalances() []catalog.StockBalance {
	return []catalog.StockBalance{
		{ItemCode: "PROD-001", Warehouse: "Main Store", ActualQty: qty(50), ReservedQty: qty(5), AvailableQty: qty(45)},
		{ItemCode: "PROD-002", Warehouse: "Main Store", ActualQty: qty(100), ReservedQty: qty(10), AvailableQty: qty(90)},
		{ItemCode: "PROD-003", Warehouse: "Main Store", ActualQty: qty(25), ReservedQty: qty(25), AvailableQty: qty(0)},
		{ItemCode: "PROD-004", Warehouse: "Main Store", ActualQty: qty(75), ReservedQty: qty(25), AvailableQty: qty(50)},
		{ItemCode: "PROD-001", Warehouse: "Secondary Store", ActualQty: qty(30), ReservedQty: qty(0), AvailableQty: qty(30)},
	}
}
