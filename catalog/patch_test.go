package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/sales-engine/catalog"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func strPtr(s string) *string                   { return &s }
func decPtr(s string) *decimal.Decimal          { d := decimal.RequireFromString(s); return &d }
func boolPtr(b bool) *bool                      { return &b }
func orderStatusPtr(s catalog.SalesOrderStatus) *catalog.SalesOrderStatus { return &s }

// =============================================================================
// PATCH SEMANTICS
// =============================================================================

func TestCustomerPatch_OnlyPresentFieldsChange(t *testing.T) {
	// GIVEN: A fully populated customer
	// WHEN: Applying a patch that only sets territory
	// THEN: Territory changes, every other field is untouched

	before := catalog.Customer{
		Name: "CUST-001", CustomerName: "Acme Corporation",
		CustomerType: catalog.CustomerCompany,
		Territory:    "North Zone", CustomerGroup: "B2B Enterprise",
		ContactEmail: "contact@acme.com", TaxID: "29ABCDE1234F1Z5",
	}

	after := catalog.CustomerPatch{Territory: strPtr("South Zone")}.Apply(before)

	assert.Equal(t, "South Zone", after.Territory)

	after.Territory = before.Territory
	assert.Equal(t, before, after, "no other field may change")
}

func TestCustomerPatch_EmptyPatchIsIdentity(t *testing.T) {
	before := catalog.Customer{Name: "CUST-001", CustomerName: "Acme Corporation"}
	after := catalog.CustomerPatch{}.Apply(before)
	assert.Equal(t, before, after)
}

func TestCustomerPatch_CanSetFieldToEmptyString(t *testing.T) {
	// A present-but-empty value is an overwrite, not an omission.
	before := catalog.Customer{Name: "CUST-001", ContactEmail: "contact@acme.com"}
	after := catalog.CustomerPatch{ContactEmail: strPtr("")}.Apply(before)
	assert.Equal(t, "", after.ContactEmail)
}

func TestItemPatch_NumericAndBoolFields(t *testing.T) {
	before := catalog.Item{
		ItemCode: "PROD-001", ItemName: "Premium Wireless Headphones",
		StandardRate: decimal.RequireFromString("299.99"), IsStockItem: true,
	}

	after := catalog.ItemPatch{
		StandardRate: decPtr("279.99"),
		IsStockItem:  boolPtr(false),
	}.Apply(before)

	assert.True(t, after.StandardRate.Equal(decimal.RequireFromString("279.99")))
	assert.False(t, after.IsStockItem)
	assert.Equal(t, before.ItemName, after.ItemName)
}

func TestSalesOrderPatch_ItemsReplacedWholesale(t *testing.T) {
	// GIVEN: An order with two line items
	// WHEN: Patching with a single-line slice
	// THEN: The new slice replaces the old one entirely; no per-row merge

	before := catalog.SalesOrder{
		Name: "SO-001", Customer: "Acme Corporation",
		Items: []catalog.LineItem{
			{ItemCode: "PROD-001", Qty: decimal.NewFromInt(5)},
			{ItemCode: "PROD-002", Qty: decimal.NewFromInt(10)},
		},
		Status: catalog.OrderDraft,
	}

	replacement := []catalog.LineItem{
		{ItemCode: "PROD-003", Qty: decimal.NewFromInt(1), Rate: decimal.RequireFromString("1299.99"), Amount: decimal.RequireFromString("1299.99")},
	}
	after := catalog.SalesOrderPatch{
		Items:  &replacement,
		Status: orderStatusPtr(catalog.OrderToDeliverAndBill),
	}.Apply(before)

	assert.Len(t, after.Items, 1)
	assert.Equal(t, "PROD-003", after.Items[0].ItemCode)
	assert.Equal(t, catalog.OrderToDeliverAndBill, after.Status)
	assert.Equal(t, before.Customer, after.Customer)
}

func TestSalesInvoicePatch_OutstandingAmount(t *testing.T) {
	before := catalog.SalesInvoice{
		Name:              "INV-002",
		GrandTotal:        decimal.RequireFromString("1999.85"),
		OutstandingAmount: decimal.RequireFromString("1999.85"),
		Status:            catalog.InvoiceSubmitted,
	}

	paid := catalog.InvoicePaid
	after := catalog.SalesInvoicePatch{
		OutstandingAmount: decPtr("0"),
		Status:            &paid,
	}.Apply(before)

	assert.True(t, after.OutstandingAmount.IsZero())
	assert.Equal(t, catalog.InvoicePaid, after.Status)
	assert.True(t, after.GrandTotal.Equal(before.GrandTotal))
}

// =============================================================================
// VOCABULARY AND ARITHMETIC
// =============================================================================

func TestStatusVocabularies(t *testing.T) {
	assert.True(t, catalog.QuotationConverted.Valid())
	assert.False(t, catalog.QuotationStatus("Shipped").Valid())

	assert.True(t, catalog.OrderToDeliverAndBill.Valid())
	assert.False(t, catalog.SalesOrderStatus("").Valid())

	assert.True(t, catalog.DeliveryOutForDelivery.Valid())
	assert.True(t, catalog.NoteReturnIssued.Valid())
	assert.True(t, catalog.InvoiceCreditNoteIssued.Valid())
}

func TestLineTotal(t *testing.T) {
	got := catalog.LineTotal(decimal.NewFromInt(5), decimal.RequireFromString("299.99"))
	assert.True(t, got.Equal(decimal.RequireFromString("1499.95")))
}

func TestKindPrefix(t *testing.T) {
	assert.Equal(t, "CUST", catalog.KindCustomer.Prefix())
	assert.Equal(t, "SO", catalog.KindSalesOrder.Prefix())
	assert.Equal(t, "INV", catalog.KindSalesInvoice.Prefix())
	assert.Equal(t, "DOC", catalog.KindStockBalance.Prefix())
}
