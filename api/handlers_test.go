package api_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/sales-engine/api"
	"github.com/warp/sales-engine/ident"
	"github.com/warp/sales-engine/netsim"
	"github.com/warp/sales-engine/sales"
	"github.com/warp/sales-engine/store/memory"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newTestServer builds a full HTTP stack over a fresh in-memory
// backend. Zero latency, zero failures - transport behavior has its
// own tests.
func newTestServer(t *testing.T, opts ...sales.Option) (*httptest.Server, *sales.Service) {
	t.Helper()
	svc := sales.New(
		memory.New(),
		netsim.New(0, 0, rand.New(rand.NewSource(1))),
		ident.New(rand.New(rand.NewSource(1))),
		opts...,
	)
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc)))
	t.Cleanup(srv.Close)
	return srv, svc
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func loadDemo(t *testing.T, srv *httptest.Server) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/scenarios/load",
		map[string]string{"scenario_id": sales.DemoScenarioID})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// =============================================================================
// CRUD OVER HTTP
// =============================================================================

func TestCustomerLifecycle(t *testing.T) {
	// GIVEN: An empty store
	// WHEN: Creating, reading, updating and deleting a customer
	// THEN: Each step returns the expected status and body

	srv, _ := newTestServer(t)

	// Create
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/customers", map[string]any{
		"customer_name": "Acme Corporation",
		"customer_type": "Company",
		"territory":     "North Zone",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	name, _ := created["name"].(string)
	require.NotEmpty(t, name)
	assert.Regexp(t, `^CUST-[0-9A-Z]{9}$`, name)

	// Get
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/customers/"+name, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]any
	decodeBody(t, resp, &got)
	assert.Equal(t, "Acme Corporation", got["customer_name"])

	// Update one field
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/customers/"+name, map[string]any{
		"territory": "South Zone",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "South Zone", updated["territory"])
	assert.Equal(t, "Acme Corporation", updated["customer_name"], "unpatched field must survive")

	// Delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/customers/"+name, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Gone
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/customers/"+name, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSalesOrderCreate_WithLineItems(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sales-orders", map[string]any{
		"customer":         "CUST-001",
		"transaction_date": "2024-01-20",
		"delivery_date":    "2024-01-25",
		"items": []map[string]any{
			{"item_code": "PROD-001", "qty": 5, "rate": 299.99, "amount": 1499.95},
		},
		"grand_total": 1499.95,
		"status":      "To Deliver and Bill",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Regexp(t, `^SO-[0-9A-Z]{9}$`, created["name"])
	assert.InDelta(t, 1499.95, created["grand_total"], 0.001)

	items, ok := created["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestList_ReturnsSeededRecords(t *testing.T) {
	srv, _ := newTestServer(t)
	loadDemo(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	decodeBody(t, resp, &items)
	assert.Len(t, items, 5)
}

// =============================================================================
// ERROR MAPPING
// =============================================================================

func TestUpdateMissing_Is404(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/invoices/INV-MISSING", map[string]any{
		"status": "Paid",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestDeleteMissing_Is404(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/payments/PAY-MISSING", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMalformedBody_Is400(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/customers", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransientFailure_Is503WithRetryAfter(t *testing.T) {
	// A transport that always fails surfaces as 503 on every route.
	svc := sales.New(
		memory.New(),
		netsim.New(0, 1, rand.New(rand.NewSource(1))),
		ident.New(rand.New(rand.NewSource(1))),
	)
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(svc)))
	defer srv.Close()

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/customers", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
}

func TestReport_MissingRangeIs400(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports?from=2024-01-01", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// DASHBOARD, REPORTS, STOCK
// =============================================================================

func TestKPIEndpoint(t *testing.T) {
	day, _ := time.Parse("2006-01-02", "2024-01-20")
	srv, _ := newTestServer(t, sales.WithClock(func() time.Time { return day }))
	loadDemo(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/kpis", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var kpi map[string]any
	decodeBody(t, resp, &kpi)
	assert.InDelta(t, 1999.85, kpi["today_sales"], 0.001)
	assert.InDelta(t, 14999.75, kpi["outstanding_payments"], 0.001)
	assert.EqualValues(t, 1, kpi["pending_deliveries"])
	assert.EqualValues(t, 3, kpi["orders_count"])
}

func TestReportEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	loadDemo(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports?from=2024-01-01&to=2024-01-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report map[string]any
	decodeBody(t, resp, &report)

	trends, ok := report["sales_trends"].([]any)
	require.True(t, ok)
	assert.Len(t, trends, 3)

	customers, ok := report["top_customers"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, customers)
	top := customers[0].(map[string]any)
	assert.Equal(t, "Global Manufacturing Inc", top["customer"])
}

func TestStockEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	loadDemo(t, srv)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/stock/PROD-001", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var balances []map[string]any
	decodeBody(t, resp, &balances)
	assert.Len(t, balances, 2)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/stock/PROD-001?warehouse=Main+Store", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &balances)
	require.Len(t, balances, 1)
	assert.InDelta(t, 45, balances[0]["available_qty"], 0.001)
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestListScenarios(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/scenarios", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, sales.DemoScenarioID, list[0]["id"])
}

func TestLoadUnknownScenario_Is404(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/scenarios/load",
		map[string]string{"scenario_id": "does-not-exist"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
