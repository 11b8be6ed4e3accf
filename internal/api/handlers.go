package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fschneider13/valuation/internal/domain"
	"github.com/fschneider13/valuation/internal/financial"
	"github.com/fschneider13/valuation/internal/pkg/httputil"
	"github.com/fschneider13/valuation/internal/pkg/logger"
)

// Handlers bundles the HTTP handlers with their dependencies.
type Handlers struct {
	store      *ScenarioStore
	calculator *financial.Calculator
}

// NewHandlers creates the handler set.
func NewHandlers(store *ScenarioStore, calculator *financial.Calculator) *Handlers {
	return &Handlers{store: store, calculator: calculator}
}

type scenarioCreateRequest struct {
	// Scenario stays raw so a clone_from base can be overlaid: unmarshalling
	// over the base only replaces the fields the payload actually carries.
	Scenario  json.RawMessage `json:"scenario"`
	CloneFrom string          `json:"clone_from,omitempty"`
}

type scenarioCreateResponse struct {
	ScenarioID string `json:"scenario_id"`
}

type scenarioListResponse struct {
	Scenarios []string `json:"scenarios"`
}

type scenarioRunRequest struct {
	ScenarioID string                `json:"scenario_id,omitempty"`
	Scenario   *domain.ScenarioInput `json:"scenario,omitempty"`
	Months     int                   `json:"months,omitempty"`
}

type scenarioRunResponse struct {
	Result *domain.ScenarioResult `json:"result"`
}

type scenarioCompareResponse struct {
	ScenarioIDs []string  `json:"scenario_ids"`
	Valuation   []float64 `json:"valuation"`
}

// CreateScenario stores a scenario under its meta id.
//
//	POST /scenarios
func (h *Handlers) CreateScenario(w http.ResponseWriter, r *http.Request) {
	var req scenarioCreateRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if len(req.Scenario) == 0 {
		httputil.BadRequest(w, "scenario is required")
		return
	}

	var scenario domain.ScenarioInput
	if req.CloneFrom != "" {
		source, ok := h.store.Get(req.CloneFrom)
		if !ok {
			httputil.NotFound(w, fmt.Sprintf("scenario %s not found", req.CloneFrom))
			return
		}
		scenario = source
	}
	if err := json.Unmarshal(req.Scenario, &scenario); err != nil {
		httputil.BadRequest(w, "invalid scenario: "+err.Error())
		return
	}

	scenario.Normalize()
	if err := scenario.Validate(); err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	id := h.store.Put(scenario)
	logger.Info("scenario stored", "scenario_id", id, "name", scenario.Meta.Name)
	httputil.OK(w, scenarioCreateResponse{ScenarioID: id})
}

// ListScenarios returns all stored scenario ids.
//
//	GET /scenarios
func (h *Handlers) ListScenarios(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, scenarioListResponse{Scenarios: h.store.List()})
}

// GetScenario recomputes and returns the projection for a stored scenario.
// Results are never cached; the run is cheap and always reflects the stored
// input.
//
//	GET /scenarios/{id}
func (h *Handlers) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	scenario, ok := h.store.Get(id)
	if !ok {
		httputil.NotFound(w, "scenario not found")
		return
	}
	h.runAndRespond(w, &scenario)
}

// RunScenario projects an inline scenario or a stored one, with an optional
// horizon override.
//
//	POST /run
func (h *Handlers) RunScenario(w http.ResponseWriter, r *http.Request) {
	var req scenarioRunRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	var scenario domain.ScenarioInput
	switch {
	case req.Scenario != nil:
		scenario = *req.Scenario
		scenario.Normalize()
	case req.ScenarioID != "":
		stored, ok := h.store.Get(req.ScenarioID)
		if !ok {
			httputil.NotFound(w, "scenario not found")
			return
		}
		scenario = stored
	default:
		httputil.NotFound(w, "scenario not found")
		return
	}

	if req.Months > 0 {
		scenario.Timeframe.Months = req.Months
	}
	h.runAndRespond(w, &scenario)
}

// CompareScenarios runs the base scenario plus every id in the query and
// returns the enterprise values side by side.
//
//	GET /scenarios/{id}/compare?ids=a,b,c
func (h *Handlers) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	ids := []string{chi.URLParam(r, "id")}
	for _, part := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if part != "" {
			ids = append(ids, part)
		}
	}

	valuations := make([]float64, 0, len(ids))
	for _, id := range ids {
		scenario, ok := h.store.Get(id)
		if !ok {
			httputil.NotFound(w, fmt.Sprintf("scenario %s not found", id))
			return
		}
		result, err := h.calculator.Run(&scenario)
		if err != nil {
			h.writeRunError(w, err)
			return
		}
		valuations = append(valuations, result.Valuation.DCF.EnterpriseValue)
	}

	httputil.OK(w, scenarioCompareResponse{ScenarioIDs: ids, Valuation: valuations})
}

// HealthCheck reports liveness.
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "ok"})
}

func (h *Handlers) runAndRespond(w http.ResponseWriter, scenario *domain.ScenarioInput) {
	result, err := h.calculator.Run(scenario)
	if err != nil {
		h.writeRunError(w, err)
		return
	}
	httputil.OK(w, scenarioRunResponse{Result: result})
}

func (h *Handlers) writeRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidScenario) {
		httputil.BadRequest(w, err.Error())
		return
	}
	httputil.InternalError(w, err)
}
