/*
scenarios.go - Demo dataset loaders for testing and demonstrations

PURPOSE:

	Provides pre-built datasets that populate the store with realistic
	data for demos. Loading a scenario resets the store first, so the
	result is the same every time regardless of prior state.

AVAILABLE SCENARIOS:

	demo-dataset: the full demo ERP dataset - customers, items,
	              quotations, orders, deliveries, invoices, payments
	              and warehouse stock, all cross-referenced.

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "demo-dataset"}

NOTE:

	Scenarios reset the store. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: response helpers
  - sales/seed.go: the dataset itself
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/sales-engine/sales"
)

var scenarios = []ScenarioDTO{
	{
		ID:          sales.DemoScenarioID,
		Name:        "Demo Dataset",
		Description: "Full sales cycle: customers, items, quotations, orders, deliveries, invoices, payments and stock",
	},
}

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the store and loads the requested dataset.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch req.ScenarioID {
	case sales.DemoScenarioID:
		if err := h.Service.LoadDemoDataset(r.Context()); err != nil {
			writeServiceError(w, "Failed to load scenario", err)
			return
		}
	default:
		writeError(w, http.StatusNotFound, "Unknown scenario: "+req.ScenarioID, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "loaded",
		"scenario": req.ScenarioID,
	})
}
