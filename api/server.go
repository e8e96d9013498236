/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/customers/*       Customer master data
  /api/items/*           Item master data
  /api/quotations/*      Quotations
  /api/sales-orders/*    Sales orders
  /api/delivery-notes/*  Delivery notes
  /api/invoices/*        Sales invoices
  /api/payments/*        Payment entries
  /api/stock/*           Warehouse stock balances
  /api/kpis              Dashboard metrics
  /api/reports           Ranged sales reports
  /api/scenarios/*       Demo datasets

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.ListCustomers)
			r.Post("/", h.CreateCustomer)
			r.Get("/{name}", h.GetCustomer)
			r.Put("/{name}", h.UpdateCustomer)
			r.Delete("/{name}", h.DeleteCustomer)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.ListItems)
			r.Post("/", h.CreateItem)
			r.Get("/{code}", h.GetItem)
			r.Put("/{code}", h.UpdateItem)
			r.Delete("/{code}", h.DeleteItem)
		})

		r.Route("/quotations", func(r chi.Router) {
			r.Get("/", h.ListQuotations)
			r.Post("/", h.CreateQuotation)
			r.Get("/{name}", h.GetQuotation)
			r.Put("/{name}", h.UpdateQuotation)
			r.Delete("/{name}", h.DeleteQuotation)
		})

		r.Route("/sales-orders", func(r chi.Router) {
			r.Get("/", h.ListSalesOrders)
			r.Post("/", h.CreateSalesOrder)
			r.Get("/{name}", h.GetSalesOrder)
			r.Put("/{name}", h.UpdateSalesOrder)
			r.Delete("/{name}", h.DeleteSalesOrder)
		})

		r.Route("/delivery-notes", func(r chi.Router) {
			r.Get("/", h.ListDeliveryNotes)
			r.Post("/", h.CreateDeliveryNote)
			r.Get("/{name}", h.GetDeliveryNote)
			r.Put("/{name}", h.UpdateDeliveryNote)
			r.Delete("/{name}", h.DeleteDeliveryNote)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.ListSalesInvoices)
			r.Post("/", h.CreateSalesInvoice)
			r.Get("/{name}", h.GetSalesInvoice)
			r.Put("/{name}", h.UpdateSalesInvoice)
			r.Delete("/{name}", h.DeleteSalesInvoice)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.ListPaymentEntries)
			r.Post("/", h.CreatePaymentEntry)
			r.Get("/{name}", h.GetPaymentEntry)
			r.Put("/{name}", h.UpdatePaymentEntry)
			r.Delete("/{name}", h.DeletePaymentEntry)
		})

		// Stock balances (filtered by optional ?warehouse=)
		r.Get("/stock/{code}", h.GetStockBalance)

		// Dashboard
		r.Get("/kpis", h.GetKPIs)
		r.Get("/reports", h.GetReport)

		// Demo scenarios
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
