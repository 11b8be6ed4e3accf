package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fschneider13/valuation/internal/domain"
)

func TestComputeCostsSplitsAllocation(t *testing.T) {
	model := domain.CostModel{Items: []domain.CostItem{
		{Name: "Hosting", Nature: domain.CostFixed, Allocation: domain.AllocationCOGS, CostCenter: domain.CenterEngineering, BaseAmount: 5000, Schedule: domain.Schedule(1)},
		{Name: "Rent", Nature: domain.CostFixed, Allocation: domain.AllocationOpex, CostCenter: domain.CenterGNA, BaseAmount: 8000, Schedule: domain.Schedule(1)},
	}}

	breakdown, cogs, opex := computeCosts(0, model, domain.RevenueSummary{})
	assert.InDelta(t, 5000, cogs, 1e-9)
	assert.InDelta(t, 8000, opex, 1e-9)
	require.Len(t, breakdown, 2)
	assert.Equal(t, domain.CenterEngineering, breakdown[0].CostCenter)
	assert.Equal(t, domain.CenterGNA, breakdown[1].CostCenter)
}

func TestComputeCostsVariableDriverSelection(t *testing.T) {
	revenue := domain.RevenueSummary{TotalGross: 200_000, TotalNet: 100_000}
	model := domain.CostModel{Items: []domain.CostItem{
		{Name: "Net-driven", Nature: domain.CostVariable, Allocation: domain.AllocationOpex, Driver: domain.DriverRevenue, VariableRate: 0.1, Schedule: domain.Schedule(1)},
		{Name: "Gross-driven", Nature: domain.CostVariable, Allocation: domain.AllocationOpex, Driver: domain.DriverGrossRevenue, VariableRate: 0.1, Schedule: domain.Schedule(1)},
	}}

	_, _, opex := computeCosts(0, model, revenue)
	assert.InDelta(t, 0.1*100_000+0.1*200_000, opex, 1e-9)
}

func TestComputeCostsScheduleScalesAmount(t *testing.T) {
	model := domain.CostModel{Items: []domain.CostItem{{
		Name:       "Marketing",
		Nature:     domain.CostFixed,
		Allocation: domain.AllocationOpex,
		BaseAmount: 1000,
		Schedule:   domain.MonthlySchedule{Default: 1, Adjustments: map[int]float64{2: 3}},
	}}}

	_, _, regular := computeCosts(0, model, domain.RevenueSummary{})
	_, _, boosted := computeCosts(2, model, domain.RevenueSummary{})
	assert.InDelta(t, 1000, regular, 1e-9)
	assert.InDelta(t, 3000, boosted, 1e-9)
}

func TestComputeCostsSupplierEscalationBoundary(t *testing.T) {
	model := domain.CostModel{SupplierContracts: []domain.SupplierContract{{
		Name:                      "CRM",
		StartMonth:                0,
		BaseAmount:                1000,
		EscalationPct:             0.1,
		EscalationFrequencyMonths: 12,
		Allocation:                domain.AllocationOpex,
	}}}

	_, _, month11 := computeCosts(11, model, domain.RevenueSummary{})
	_, _, month12 := computeCosts(12, model, domain.RevenueSummary{})
	assert.InDelta(t, 1000, month11, 1e-9)
	assert.InDelta(t, 1100, month12, 1e-9)
}

func TestComputeCostsSupplierContractStartsAtStartMonth(t *testing.T) {
	model := domain.CostModel{SupplierContracts: []domain.SupplierContract{{
		Name:                      "CRM",
		StartMonth:                4,
		BaseAmount:                1000,
		EscalationFrequencyMonths: 12,
		Allocation:                domain.AllocationOpex,
	}}}

	breakdown, _, before := computeCosts(3, model, domain.RevenueSummary{})
	assert.Zero(t, before)
	assert.Empty(t, breakdown)
	_, _, after := computeCosts(4, model, domain.RevenueSummary{})
	assert.InDelta(t, 1000, after, 1e-9)
}

func TestComputeRevenueTaxesBases(t *testing.T) {
	revenue := domain.RevenueSummary{TotalGross: 200_000, TotalNet: 100_000}
	model := domain.TaxModel{Taxes: []domain.TaxComponent{
		{Name: "PIS/COFINS", Base: domain.BaseGrossRevenue, Rate: 0.01},
		{Name: "ISS", Base: domain.BaseNetRevenue, Rate: 0.02},
		{Name: "INSS", Base: domain.BasePayroll, Rate: 0.10},
	}}

	total, breakdown := computeRevenueTaxes(revenue, model, 50_000)
	require.Len(t, breakdown, 3)
	assert.InDelta(t, 2000, breakdown[0].Amount, 1e-9)
	assert.InDelta(t, 2000, breakdown[1].Amount, 1e-9)
	assert.InDelta(t, 5000, breakdown[2].Amount, 1e-9)
	// Payroll components are reported but never deducted from revenue.
	assert.InDelta(t, 4000, total, 1e-9)
}

func TestComputeRevenueTaxesUnknownBaseDefaultsToNet(t *testing.T) {
	revenue := domain.RevenueSummary{TotalNet: 100_000}
	model := domain.TaxModel{Taxes: []domain.TaxComponent{{Name: "CIT", Base: domain.BaseEBT, Rate: 0.05}}}

	total, breakdown := computeRevenueTaxes(revenue, model, 0)
	require.Len(t, breakdown, 1)
	assert.InDelta(t, 5000, breakdown[0].Amount, 1e-9)
	assert.Zero(t, total)
}
