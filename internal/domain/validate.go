package domain

import (
	"fmt"
	"strings"
)

// Validate checks structural correctness of the scenario input. It assumes
// Normalize has already run. All problems are collected into a single error
// wrapping ErrInvalidScenario.
func (s *ScenarioInput) Validate() error {
	var problems []string

	if s.Meta.Name == "" {
		problems = append(problems, "meta.name is required")
	}
	if s.Timeframe.Months < 1 {
		problems = append(problems, "timeframe.months must be at least 1")
	}
	if s.Timeframe.StartDate.IsZero() {
		problems = append(problems, "timeframe.start_date is required")
	}
	if s.CompanyState.AsOf.IsZero() {
		problems = append(problems, "company_state.as_of is required")
	}

	for i, plan := range s.Revenue.Plans {
		if plan.Name == "" {
			problems = append(problems, fmt.Sprintf("revenue.plans[%d].name is required", i))
		}
		if plan.RevenueDeferralMonths < 0 {
			problems = append(problems, fmt.Sprintf("revenue.plans[%d].revenue_deferral_months must not be negative", i))
		}
		if plan.RampUp.Months < 1 {
			problems = append(problems, fmt.Sprintf("revenue.plans[%d].ramp_up.months must be at least 1", i))
		}
		if plan.RampUp.Factor < 0 || plan.RampUp.Factor > 1 {
			problems = append(problems, fmt.Sprintf("revenue.plans[%d].ramp_up.factor must be within [0, 1]", i))
		}
		if n := len(plan.SeasonalPattern.Values); n != 0 && n != 12 {
			problems = append(problems, fmt.Sprintf("revenue.plans[%d].seasonal_pattern must have 12 values", i))
		}
	}

	for i, pos := range s.Headcount.Positions {
		if pos.Role == "" {
			problems = append(problems, fmt.Sprintf("headcount.positions[%d].role is required", i))
		}
	}

	for i, item := range s.Capex.Items {
		if item.UsefulLifeMonths < 1 {
			problems = append(problems, fmt.Sprintf("capex.items[%d].useful_life_months must be at least 1", i))
		}
	}

	for i, instrument := range s.Funding.Debt {
		if instrument.TermMonths < 1 {
			problems = append(problems, fmt.Sprintf("funding.debt[%d].term_months must be at least 1", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(problems, "; "))
	}
	return nil
}
