/*
handlers.go - HTTP handlers for the sales engine

PURPOSE:
  Exposes the sales service via REST. Handles HTTP request/response,
  JSON serialization, and delegates everything else to the service.

ENDPOINTS (per entity kind):
  GET    /api/<kind>          List all records
  POST   /api/<kind>          Create a record
  GET    /api/<kind>/{name}   Get one record
  PUT    /api/<kind>/{name}   Partial update
  DELETE /api/<kind>/{name}   Delete

  Plus:
  GET    /api/kpis                        Dashboard metrics
  GET    /api/reports?from=..&to=..       Ranged report
  GET    /api/stock/{item_code}           Stock balances (?warehouse=)
  GET    /api/scenarios                   Available demo scenarios
  POST   /api/scenarios/load              Load a demo scenario

ERROR HANDLING:
  - 400: undecodable request body, missing query parameters
  - 404: NotFound from the store
  - 503: Transient from the simulated transport (clients retry)
  - 500: anything else

  GET of a missing record is a 404 as well, mapped here from the
  service's explicit nil result - absence is not an error inside the
  engine, but it is one at the HTTP boundary.

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: router setup and middleware
  - scenarios.go: demo dataset endpoints
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/sales-engine/netsim"
	"github.com/warp/sales-engine/sales"
)

// Handler holds the handlers' single dependency, the sales service.
type Handler struct {
	Service *sales.Service
}

// NewHandler creates a handler around the service.
func NewHandler(svc *sales.Service) *Handler {
	return &Handler{Service: svc}
}

// =============================================================================
// CUSTOMERS
// =============================================================================

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list customers", err)
		return
	}
	dtos := make([]CustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = toCustomerDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetCustomer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get customer", err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Customer not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerDTO(*c))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c, err := h.Service.CreateCustomer(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create customer", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerDTO(c))
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c, err := h.Service.UpdateCustomer(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update customer", err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerDTO(c))
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCustomer(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete customer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ITEMS
// =============================================================================

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list items", err)
		return
	}
	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.Service.GetItem(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(w, "Failed to get item", err)
		return
	}
	if it == nil {
		writeError(w, http.StatusNotFound, "Item not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*it))
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	it, err := h.Service.CreateItem(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create item", err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDTO(it))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	it, err := h.Service.UpdateItem(r.Context(), chi.URLParam(r, "code"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update item", err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteItem(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeServiceError(w, "Failed to delete item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// QUOTATIONS
// =============================================================================

func (h *Handler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.Service.ListQuotations(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list quotations", err)
		return
	}
	dtos := make([]QuotationDTO, len(quotations))
	for i, q := range quotations {
		dtos[i] = toQuotationDTO(q)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	q, err := h.Service.GetQuotation(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get quotation", err)
		return
	}
	if q == nil {
		writeError(w, http.StatusNotFound, "Quotation not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toQuotationDTO(*q))
}

func (h *Handler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	q, err := h.Service.CreateQuotation(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create quotation", err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuotationDTO(q))
}

func (h *Handler) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	q, err := h.Service.UpdateQuotation(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update quotation", err)
		return
	}
	writeJSON(w, http.StatusOK, toQuotationDTO(q))
}

func (h *Handler) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteQuotation(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete quotation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SALES ORDERS
// =============================================================================

func (h *Handler) ListSalesOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListSalesOrders(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list sales orders", err)
		return
	}
	dtos := make([]SalesOrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toSalesOrderDTO(o)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetSalesOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Service.GetSalesOrder(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get sales order", err)
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "Sales Order not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toSalesOrderDTO(*o))
}

func (h *Handler) CreateSalesOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateSalesOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	o, err := h.Service.CreateSalesOrder(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create sales order", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSalesOrderDTO(o))
}

func (h *Handler) UpdateSalesOrder(w http.ResponseWriter, r *http.Request) {
	var req UpdateSalesOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	o, err := h.Service.UpdateSalesOrder(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update sales order", err)
		return
	}
	writeJSON(w, http.StatusOK, toSalesOrderDTO(o))
}

func (h *Handler) DeleteSalesOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSalesOrder(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete sales order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DELIVERY NOTES
// =============================================================================

func (h *Handler) ListDeliveryNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Service.ListDeliveryNotes(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list delivery notes", err)
		return
	}
	dtos := make([]DeliveryNoteDTO, len(notes))
	for i, d := range notes {
		dtos[i] = toDeliveryNoteDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetDeliveryNote(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.GetDeliveryNote(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get delivery note", err)
		return
	}
	if d == nil {
		writeError(w, http.StatusNotFound, "Delivery Note not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toDeliveryNoteDTO(*d))
}

func (h *Handler) CreateDeliveryNote(w http.ResponseWriter, r *http.Request) {
	var req CreateDeliveryNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	d, err := h.Service.CreateDeliveryNote(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create delivery note", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeliveryNoteDTO(d))
}

func (h *Handler) UpdateDeliveryNote(w http.ResponseWriter, r *http.Request) {
	var req UpdateDeliveryNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	d, err := h.Service.UpdateDeliveryNote(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update delivery note", err)
		return
	}
	writeJSON(w, http.StatusOK, toDeliveryNoteDTO(d))
}

func (h *Handler) DeleteDeliveryNote(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteDeliveryNote(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete delivery note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SALES INVOICES
// =============================================================================

func (h *Handler) ListSalesInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.ListSalesInvoices(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list sales invoices", err)
		return
	}
	dtos := make([]SalesInvoiceDTO, len(invoices))
	for i, inv := range invoices {
		dtos[i] = toSalesInvoiceDTO(inv)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetSalesInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.Service.GetSalesInvoice(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get sales invoice", err)
		return
	}
	if inv == nil {
		writeError(w, http.StatusNotFound, "Sales Invoice not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toSalesInvoiceDTO(*inv))
}

func (h *Handler) CreateSalesInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateSalesInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	inv, err := h.Service.CreateSalesInvoice(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create sales invoice", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSalesInvoiceDTO(inv))
}

func (h *Handler) UpdateSalesInvoice(w http.ResponseWriter, r *http.Request) {
	var req UpdateSalesInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	inv, err := h.Service.UpdateSalesInvoice(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update sales invoice", err)
		return
	}
	writeJSON(w, http.StatusOK, toSalesInvoiceDTO(inv))
}

func (h *Handler) DeleteSalesInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteSalesInvoice(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete sales invoice", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYMENT ENTRIES
// =============================================================================

func (h *Handler) ListPaymentEntries(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListPaymentEntries(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to list payment entries", err)
		return
	}
	dtos := make([]PaymentEntryDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentEntryDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetPaymentEntry(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetPaymentEntry(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, "Failed to get payment entry", err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Payment Entry not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentEntryDTO(*p))
}

func (h *Handler) CreatePaymentEntry(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	p, err := h.Service.CreatePaymentEntry(r.Context(), req.toRecord())
	if err != nil {
		writeServiceError(w, "Failed to create payment entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentEntryDTO(p))
}

func (h *Handler) UpdatePaymentEntry(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	p, err := h.Service.UpdatePaymentEntry(r.Context(), chi.URLParam(r, "name"), req.toPatch())
	if err != nil {
		writeServiceError(w, "Failed to update payment entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentEntryDTO(p))
}

func (h *Handler) DeletePaymentEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePaymentEntry(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, "Failed to delete payment entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// STOCK, KPI, REPORTS
// =============================================================================

func (h *Handler) GetStockBalance(w http.ResponseWriter, r *http.Request) {
	itemCode := chi.URLParam(r, "code")
	warehouse := r.URL.Query().Get("warehouse")

	balances, err := h.Service.StockBalances(r.Context(), itemCode, warehouse)
	if err != nil {
		writeServiceError(w, "Failed to get stock balance", err)
		return
	}
	dtos := make([]StockBalanceDTO, len(balances))
	for i, b := range balances {
		dtos[i] = toStockBalanceDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.Service.KPI(r.Context())
	if err != nil {
		writeServiceError(w, "Failed to compute KPIs", err)
		return
	}
	writeJSON(w, http.StatusOK, toKPIDTO(kpi))
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "Missing from/to query parameters", nil)
		return
	}

	report, err := h.Service.Report(r.Context(), sales.DateRange{From: from, To: to})
	if err != nil {
		writeServiceError(w, "Failed to compute report", err)
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps the engine's error taxonomy to HTTP status
// codes. Transient gets 503 + Retry-After so well-behaved clients
// back off and retry.
func writeServiceError(w http.ResponseWriter, message string, err error) {
	switch {
	case sales.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case netsim.IsTransient(err):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
