package domain

import "errors"

// Sentinel errors for scenario input handling.
var (
	ErrInvalidScenario = errors.New("invalid scenario")
)
