package api

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fschneider13/valuation/internal/domain"
)

// ScenarioStore is the process-wide scenario registry behind the HTTP
// surface. Insertion order is preserved so listings are stable. Safe for
// concurrent use.
type ScenarioStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.ScenarioInput
}

// NewScenarioStore creates an empty store.
func NewScenarioStore() *ScenarioStore {
	return &ScenarioStore{byID: make(map[string]domain.ScenarioInput)}
}

// Put stores the scenario under its meta id, generating one when empty, and
// returns the id. Re-putting an existing id replaces the scenario in place.
func (s *ScenarioStore) Put(scenario domain.ScenarioInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if scenario.Meta.ID == "" {
		scenario.Meta.ID = uuid.New().String()
	}
	if _, exists := s.byID[scenario.Meta.ID]; !exists {
		s.order = append(s.order, scenario.Meta.ID)
	}
	s.byID[scenario.Meta.ID] = scenario
	return scenario.Meta.ID
}

// Get returns the scenario stored under id.
func (s *ScenarioStore) Get(id string) (domain.ScenarioInput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scenario, ok := s.byID[id]
	return scenario, ok
}

// List returns all stored scenario ids in insertion order.
func (s *ScenarioStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
