package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fschneider13/valuation/internal/domain"
)

func annualWith(netRevenue, ebitda, fcff float64) []domain.AnnualSummary {
	return []domain.AnnualSummary{{
		Year: 2024,
		IncomeStatement: domain.IncomeStatement{
			NetRevenue: netRevenue,
			EBITDA:     ebitda,
		},
		CashFlow: domain.CashFlowStatement{FCFF: fcff},
	}}
}

func TestComputeTerminalValuePerpetuity(t *testing.T) {
	settings := domain.ValuationSettings{
		TerminalMethod:      domain.TerminalPerpetuity,
		WACC:                0.15,
		PerpetualGrowthRate: 0.03,
	}
	annual := annualWith(0, 0, 120_000)

	tv := computeTerminalValue(settings, annual)
	assert.InDelta(t, 10_000*1.03/0.12, tv, 1e-6)
}

func TestComputeTerminalValueMultipleMetric(t *testing.T) {
	settings := domain.ValuationSettings{
		TerminalMethod:         domain.TerminalMultiple,
		TerminalMultiple:       6,
		TerminalMultipleMetric: domain.MetricRevenue,
	}
	annual := annualWith(1_000_000, 400_000, 0)

	assert.InDelta(t, 6_000_000, computeTerminalValue(settings, annual), 1e-6)
}

func TestComputeTerminalValueEmptyAnnualsIsZero(t *testing.T) {
	assert.Zero(t, computeTerminalValue(domain.ValuationSettings{TerminalMethod: domain.TerminalPerpetuity, WACC: 0.15}, nil))
}

func TestComputeMultiplesOrderAndSelection(t *testing.T) {
	settings := domain.ValuationSettings{
		TerminalMultiple:       8,
		TerminalMultipleMetric: domain.MetricEBITDA,
		ExitYearMultiple:       5,
	}
	annual := annualWith(1_000_000, 400_000, 0)

	multiples := computeMultiples(settings, annual)
	require.Len(t, multiples, 3)

	assert.Equal(t, domain.MetricEBITDA, multiples[0].Metric)
	assert.InDelta(t, 8, multiples[0].Multiple, 1e-9)
	assert.InDelta(t, 3_200_000, multiples[0].Value, 1e-6)

	assert.Equal(t, domain.MetricRevenue, multiples[1].Metric)
	assert.InDelta(t, 5, multiples[1].Multiple, 1e-9)
	assert.InDelta(t, 5_000_000, multiples[1].Value, 1e-6)

	assert.Equal(t, domain.MetricARR, multiples[2].Metric)
	assert.InDelta(t, 5, multiples[2].Multiple, 1e-9)
}

func TestComputeMultiplesFallBackToTerminalMultiple(t *testing.T) {
	settings := domain.ValuationSettings{
		TerminalMultiple:       8,
		TerminalMultipleMetric: domain.MetricEBITDA,
	}
	multiples := computeMultiples(settings, annualWith(1_000_000, 400_000, 0))
	for _, m := range multiples {
		assert.InDelta(t, 8, m.Multiple, 1e-9)
	}
}

func TestComputeVCMethodOwnershipClampedToOne(t *testing.T) {
	settings := domain.ValuationSettings{
		ExitYearMultiple:     2,
		TargetExitYear:       5,
		DiscountRateVC:       0.35,
		ProbabilityOfSuccess: 0.5,
	}
	funding := domain.FundingModel{EquityRounds: []domain.EquityRound{{Name: "A", Amount: 1_000_000_000}}}

	result := computeVCMethod(settings, funding, annualWith(100_000, 0, 0))
	assert.GreaterOrEqual(t, result.OwnershipRequired, 0.0)
	assert.LessOrEqual(t, result.OwnershipRequired, 1.0)
	assert.InDelta(t, result.PostMoney-1_000_000_000, result.PreMoney, 1e-6)
}

func TestComputeVCMethodNoInvestment(t *testing.T) {
	settings := domain.ValuationSettings{
		ExitYearMultiple:     5,
		TargetExitYear:       5,
		DiscountRateVC:       0.30,
		ProbabilityOfSuccess: 1,
	}

	result := computeVCMethod(settings, domain.FundingModel{}, annualWith(1_000_000, 0, 0))
	assert.InDelta(t, 5_000_000, result.ExitValue, 1e-6)
	assert.Zero(t, result.OwnershipRequired)
	// With nothing invested the post money defaults to the exit value.
	assert.InDelta(t, result.ExitValue, result.PostMoney, 1e-6)
}

func TestComputeVCMethodEmptyAnnualsIsZero(t *testing.T) {
	result := computeVCMethod(domain.ValuationSettings{}, domain.FundingModel{}, nil)
	assert.Zero(t, result.ExitValue)
	assert.Zero(t, result.PostMoney)
}

func TestComputeScorecard(t *testing.T) {
	assert.Nil(t, computeScorecard(domain.ValuationSettings{}, 1_000_000))

	settings := domain.ValuationSettings{ScorecardWeights: map[string]float64{"team": 3, "market": 1}}
	result := computeScorecard(settings, 1_000_000)
	require.NotNil(t, result)
	assert.InDelta(t, 1.0, result.TotalScore, 1e-9)
	assert.InDelta(t, 1_000_000, result.Valuation, 1e-6)
}
