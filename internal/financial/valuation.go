package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
)

// buildValuation derives the valuation layer from a finished projection:
// a DCF over the monthly FCFF stream, comparable multiples off the final
// year, the VC method and the optional scorecard overlay.
func buildValuation(
	monthly []domain.MonthlyProjection,
	annual []domain.AnnualSummary,
	scenario *domain.ScenarioInput,
) domain.ValuationResult {
	settings := scenario.Valuation
	wacc := settings.WACC

	discountFactors := make([]float64, len(monthly))
	pvCashFlows := 0.0
	for i, month := range monthly {
		df := math.Pow(1+wacc, float64(i+1)/12)
		discountFactors[i] = df
		pvCashFlows += month.CashFlow.FCFF / df
	}

	terminalValue := computeTerminalValue(settings, annual)
	pvTerminal := terminalValue / math.Pow(1+wacc, float64(len(monthly))/12)
	enterpriseValue := pvCashFlows + pvTerminal

	lastBalance := monthly[len(monthly)-1].BalanceSheet
	equityValue := enterpriseValue - lastBalance.Debt + lastBalance.Cash

	dcf := domain.DiscountedCashFlowResult{
		EnterpriseValue:   enterpriseValue,
		EquityValue:       equityValue,
		PVOfCashFlows:     pvCashFlows,
		PVOfTerminalValue: pvTerminal,
		TerminalValue:     terminalValue,
		DiscountFactors:   discountFactors,
	}

	return domain.ValuationResult{
		DCF:       dcf,
		Multiples: computeMultiples(settings, annual),
		VCMethod:  computeVCMethod(settings, scenario.Funding, annual),
		Scorecard: computeScorecard(settings, equityValue),
	}
}

// computeTerminalValue returns the terminal value off the final projected
// year: Gordon-growth on the average monthly FCFF, or a multiple on the
// chosen metric.
func computeTerminalValue(settings domain.ValuationSettings, annual []domain.AnnualSummary) float64 {
	if len(annual) == 0 {
		return 0
	}
	last := annual[len(annual)-1]
	if settings.TerminalMethod == domain.TerminalPerpetuity {
		fcff := last.CashFlow.FCFF / 12
		return fcff * (1 + settings.PerpetualGrowthRate) / (settings.WACC - settings.PerpetualGrowthRate)
	}
	return terminalMetricValue(settings.TerminalMultipleMetric, last) * settings.TerminalMultiple
}

// terminalMetricValue maps a multiple metric onto the final year's
// statements. ARR approximates to net revenue at annual grain; unknown
// metrics fall back to EBITDA.
func terminalMetricValue(metric domain.MultipleMetric, last domain.AnnualSummary) float64 {
	switch metric {
	case domain.MetricRevenue, domain.MetricARR:
		return last.IncomeStatement.NetRevenue
	case domain.MetricEBITDA:
		return last.IncomeStatement.EBITDA
	default:
		return last.IncomeStatement.EBITDA
	}
}

// computeMultiples values the final year under each comparable metric. The
// terminal multiple applies to its own metric; the others use the exit-year
// multiple when set.
func computeMultiples(settings domain.ValuationSettings, annual []domain.AnnualSummary) []domain.MultipleValuationResult {
	if len(annual) == 0 {
		return nil
	}
	last := annual[len(annual)-1]

	results := make([]domain.MultipleValuationResult, 0, 3)
	for _, metric := range []domain.MultipleMetric{domain.MetricEBITDA, domain.MetricRevenue, domain.MetricARR} {
		multiple := settings.ExitYearMultiple
		if metric == settings.TerminalMultipleMetric || multiple == 0 {
			multiple = settings.TerminalMultiple
		}
		value := terminalMetricValue(metric, last)
		results = append(results, domain.MultipleValuationResult{
			Metric:   metric,
			Multiple: multiple,
			Value:    value * multiple,
		})
	}
	return results
}

// computeVCMethod runs the venture-capital method off the final year's net
// revenue: exit value discounted at the VC rate over the target horizon,
// required ownership for the total equity invested, then post and pre money.
func computeVCMethod(
	settings domain.ValuationSettings,
	funding domain.FundingModel,
	annual []domain.AnnualSummary,
) domain.VCValuationResult {
	if len(annual) == 0 {
		return domain.VCValuationResult{}
	}
	last := annual[len(annual)-1]

	exitValue := last.IncomeStatement.NetRevenue * settings.ExitYearMultiple
	discountedExit := exitValue / math.Pow(1+settings.DiscountRateVC, float64(settings.TargetExitYear))

	investment := 0.0
	for _, round := range funding.EquityRounds {
		investment += round.Amount
	}

	requiredOwnership := 0.0
	if discountedExit != 0 {
		requiredOwnership = investment / (discountedExit * settings.ProbabilityOfSuccess)
	}

	postMoney := exitValue
	if requiredOwnership != 0 {
		postMoney = investment / math.Max(requiredOwnership, 1e-6)
	}

	return domain.VCValuationResult{
		ExitValue:         exitValue,
		OwnershipRequired: math.Min(1, requiredOwnership),
		PostMoney:         postMoney,
		PreMoney:          postMoney - investment,
	}
}

// computeScorecard applies the scorecard overlay: weights normalized to one,
// total score applied to the DCF equity value. Nil when no weights are set.
func computeScorecard(settings domain.ValuationSettings, baseEquity float64) *domain.ScorecardValuationResult {
	if len(settings.ScorecardWeights) == 0 {
		return nil
	}
	totalWeight := 0.0
	for _, weight := range settings.ScorecardWeights {
		totalWeight += weight
	}
	score := 0.0
	for _, weight := range settings.ScorecardWeights {
		score += weight / totalWeight
	}
	return &domain.ScorecardValuationResult{
		TotalScore: score,
		Valuation:  baseEquity * score,
	}
}
