package financial

import "github.com/fschneider13/valuation/internal/domain"

// buildDashboards shapes the run into the chart-ready slices the API serves:
// revenue and cash trends, the valuation headline figures and per-month unit
// economics.
func buildDashboards(monthly []domain.MonthlyProjection, valuation domain.ValuationResult) []domain.DashboardSlice {
	months := make([]string, len(monthly))
	netRevenue := make([]float64, len(monthly))
	ebitda := make([]float64, len(monthly))
	cash := make([]float64, len(monthly))
	fcff := make([]float64, len(monthly))
	grossMarginPct := make([]float64, len(monthly))
	burnRate := make([]float64, len(monthly))

	for i, month := range monthly {
		months[i] = month.PeriodStart.String()
		netRevenue[i] = month.IncomeStatement.NetRevenue
		ebitda[i] = month.IncomeStatement.EBITDA
		cash[i] = month.BalanceSheet.Cash
		fcff[i] = month.CashFlow.FCFF

		if month.IncomeStatement.NetRevenue != 0 {
			grossMarginPct[i] = month.IncomeStatement.GrossMargin / month.IncomeStatement.NetRevenue
		}
		burnRate[i] = -(month.CashFlow.OperatingCashFlow + month.CashFlow.InvestingCashFlow)
	}

	return []domain.DashboardSlice{
		{
			Name: "revenue",
			Data: map[string]interface{}{
				"months":      months,
				"net_revenue": netRevenue,
				"ebitda":      ebitda,
			},
		},
		{
			Name: "cash",
			Data: map[string]interface{}{
				"months": months,
				"cash":   cash,
				"fcff":   fcff,
			},
		},
		{
			Name: "valuation",
			Data: map[string]interface{}{
				"enterprise_value": valuation.DCF.EnterpriseValue,
				"equity_value":     valuation.DCF.EquityValue,
				"pv_cash_flows":    valuation.DCF.PVOfCashFlows,
				"pv_terminal":      valuation.DCF.PVOfTerminalValue,
			},
		},
		{
			Name: "unit_economics",
			Data: map[string]interface{}{
				"gross_margin_pct": grossMarginPct,
				"burn_rate":        burnRate,
			},
		},
	}
}
