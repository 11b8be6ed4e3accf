package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	s := ScenarioInput{
		Revenue: RevenueModel{Plans: []RevenuePlan{{Name: "SaaS"}}},
		Costs: CostModel{
			Items:             []CostItem{{Name: "Rent"}},
			SupplierContracts: []SupplierContract{{Name: "CRM"}},
		},
		Funding: FundingModel{Debt: []DebtInstrument{{Name: "Loan"}}},
	}
	s.Normalize()

	assert.Equal(t, ScenarioBase, s.Meta.ScenarioType)
	assert.Equal(t, "America/Sao_Paulo", s.Meta.Timezone)
	assert.Equal(t, 1.0, s.Currency.FXRate)

	plan := s.Revenue.Plans[0]
	assert.Equal(t, RecognitionSubscription, plan.Recognition)
	require.Len(t, plan.SeasonalPattern.Values, 12)
	assert.Equal(t, RampUpSettings{Months: 1, Factor: 1.0}, plan.RampUp)

	item := s.Costs.Items[0]
	assert.Equal(t, DriverRevenue, item.Driver)
	assert.Equal(t, CenterOther, item.CostCenter)
	assert.Equal(t, 1.0, item.Schedule.ValueFor(0))

	contract := s.Costs.SupplierContracts[0]
	assert.Equal(t, 12, contract.EscalationFrequencyMonths)
	assert.Equal(t, AllocationOpex, contract.Allocation)

	assert.Equal(t, DebtTerm, s.Funding.Debt[0].DebtType)

	assert.Equal(t, TerminalPerpetuity, s.Valuation.TerminalMethod)
	assert.Equal(t, MetricEBITDA, s.Valuation.TerminalMultipleMetric)
	assert.Equal(t, 5, s.Valuation.TargetExitYear)
	assert.Equal(t, 0.30, s.Valuation.DiscountRateVC)
	assert.Equal(t, 1.0, s.Valuation.ProbabilityOfSuccess)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	s := ScenarioInput{
		Meta:     ScenarioMeta{ScenarioType: ScenarioBull, Timezone: "UTC"},
		Currency: CurrencySettings{FXRate: 5.2},
		Valuation: ValuationSettings{
			TerminalMethod:         TerminalMultiple,
			TerminalMultipleMetric: MetricARR,
			TargetExitYear:         7,
			DiscountRateVC:         0.5,
			ProbabilityOfSuccess:   0.6,
		},
	}
	s.Normalize()

	assert.Equal(t, ScenarioBull, s.Meta.ScenarioType)
	assert.Equal(t, "UTC", s.Meta.Timezone)
	assert.Equal(t, 5.2, s.Currency.FXRate)
	assert.Equal(t, TerminalMultiple, s.Valuation.TerminalMethod)
	assert.Equal(t, MetricARR, s.Valuation.TerminalMultipleMetric)
	assert.Equal(t, 7, s.Valuation.TargetExitYear)
	assert.Equal(t, 0.5, s.Valuation.DiscountRateVC)
	assert.Equal(t, 0.6, s.Valuation.ProbabilityOfSuccess)
}

func TestNormalizeKeepsExplicitRampUp(t *testing.T) {
	s := ScenarioInput{Revenue: RevenueModel{Plans: []RevenuePlan{{
		Name:   "SaaS",
		RampUp: RampUpSettings{Months: 6, Factor: 0.5},
	}}}}
	s.Normalize()

	assert.Equal(t, RampUpSettings{Months: 6, Factor: 0.5}, s.Revenue.Plans[0].RampUp)
}
