package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fschneider13/valuation/internal/domain"
)

func TestComputeHeadcountCostComponents(t *testing.T) {
	model := domain.HeadcountModel{Positions: []domain.HeadcountPosition{{
		Role:          "Engineer",
		Area:          "Engineering",
		CurrentFTE:    1,
		BaseSalary:    120_000,
		BenefitsPct:   0.2,
		BonusPct:      0.1,
		PayrollTaxPct: 0.3,
		Subscriptions: []domain.SubscriptionCost{{Name: "IDE", MonthlyCost: 100}},
	}}}
	roster := newHeadcountRoster(model.Positions)

	breakdown, payroll := computeHeadcount(0, model, roster, nil)
	require.Len(t, breakdown, 1)

	entry := breakdown[0]
	assert.Equal(t, "Engineering", entry.Area)
	assert.InDelta(t, 10_000, entry.Salaries, 1e-9)
	assert.InDelta(t, 2000+1000+3000, entry.Benefits, 1e-9)
	assert.InDelta(t, 100, entry.Subscriptions, 1e-9)
	assert.InDelta(t, 16_100, entry.Total, 1e-9)
	assert.InDelta(t, 16_100, payroll, 1e-9)
}

func TestComputeHeadcountAttritionCompounds(t *testing.T) {
	model := domain.HeadcountModel{
		Positions:    []domain.HeadcountPosition{{Role: "Sales", Area: "Sales", CurrentFTE: 10, BaseSalary: 120_000}},
		AttritionPct: domain.Schedule(0.1),
	}
	roster := newHeadcountRoster(model.Positions)

	computeHeadcount(0, model, roster, nil)
	computeHeadcount(1, model, roster, nil)

	state, ok := roster.get("Sales")
	require.True(t, ok)
	assert.InDelta(t, 10*0.9*0.9, state.fte, 1e-9)
}

func TestComputeHeadcountHiresApplyBeforeAttrition(t *testing.T) {
	model := domain.HeadcountModel{
		Positions:    []domain.HeadcountPosition{{Role: "Sales", Area: "Sales", CurrentFTE: 0, BaseSalary: 120_000}},
		AttritionPct: domain.Schedule(0.1),
	}
	roster := newHeadcountRoster(model.Positions)
	hires := map[int][]domain.HiringPlan{0: {{Role: "Sales", MonthIndex: 0, Quantity: 2}}}

	computeHeadcount(0, model, roster, hires)

	state, ok := roster.get("Sales")
	require.True(t, ok)
	assert.InDelta(t, 2*0.9, state.fte, 1e-9)
}

func TestComputeHeadcountUnknownRoleHireSkipped(t *testing.T) {
	model := domain.HeadcountModel{Positions: []domain.HeadcountPosition{{Role: "Sales", Area: "Sales", CurrentFTE: 1, BaseSalary: 120_000}}}
	roster := newHeadcountRoster(model.Positions)
	hires := map[int][]domain.HiringPlan{0: {{Role: "Astronaut", MonthIndex: 0, Quantity: 5}}}

	breakdown, _ := computeHeadcount(0, model, roster, hires)
	require.Len(t, breakdown, 1)
	_, ok := roster.get("Astronaut")
	assert.False(t, ok)
}

func TestComputeHeadcountSalaryOverride(t *testing.T) {
	model := domain.HeadcountModel{Positions: []domain.HeadcountPosition{{Role: "Sales", Area: "Sales", CurrentFTE: 1, BaseSalary: 120_000}}}
	roster := newHeadcountRoster(model.Positions)
	hires := map[int][]domain.HiringPlan{0: {{Role: "Sales", MonthIndex: 0, Quantity: 1, SalaryOverride: 240_000}}}

	_, payroll := computeHeadcount(0, model, roster, hires)
	assert.InDelta(t, 2*240_000/12.0, payroll, 1e-9)
}

func TestComputeHeadcountGroupsByAreaInPositionOrder(t *testing.T) {
	model := domain.HeadcountModel{Positions: []domain.HeadcountPosition{
		{Role: "Engineer", Area: "Engineering", CurrentFTE: 1, BaseSalary: 120_000},
		{Role: "AE", Area: "Sales", CurrentFTE: 1, BaseSalary: 120_000},
		{Role: "SRE", Area: "Engineering", CurrentFTE: 1, BaseSalary: 120_000},
	}}
	roster := newHeadcountRoster(model.Positions)

	breakdown, _ := computeHeadcount(0, model, roster, nil)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Engineering", breakdown[0].Area)
	assert.InDelta(t, 2, breakdown[0].FTE, 1e-9)
	assert.Equal(t, "Sales", breakdown[1].Area)
}

func TestComputeHeadcountZeroFTERolesExcluded(t *testing.T) {
	model := domain.HeadcountModel{Positions: []domain.HeadcountPosition{
		{Role: "Engineer", Area: "Engineering", CurrentFTE: 0, BaseSalary: 120_000},
	}}
	roster := newHeadcountRoster(model.Positions)

	breakdown, payroll := computeHeadcount(0, model, roster, nil)
	assert.Empty(t, breakdown)
	assert.Zero(t, payroll)
}
