package financial

import (
	"sort"

	"github.com/fschneider13/valuation/internal/domain"
)

// annualAccumulator rolls monthly statements up by calendar year. Line items
// sum straight through; GrossMargin is recomputed at summary time so it stays
// consistent with the summed net revenue and COGS, and EndingCash is left
// zero since a flow summary has no closing balance.
type annualAccumulator struct {
	years  map[int]*yearTotals
	sorted []int
}

type yearTotals struct {
	income domain.IncomeStatement
	cash   domain.CashFlowStatement
}

func newAnnualAccumulator() *annualAccumulator {
	return &annualAccumulator{years: make(map[int]*yearTotals)}
}

func (a *annualAccumulator) accumulate(year int, income domain.IncomeStatement, cash domain.CashFlowStatement) {
	totals, ok := a.years[year]
	if !ok {
		totals = &yearTotals{}
		a.years[year] = totals
		a.sorted = append(a.sorted, year)
	}

	totals.income.GrossRevenue += income.GrossRevenue
	totals.income.RevenueTaxes += income.RevenueTaxes
	totals.income.NetRevenue += income.NetRevenue
	totals.income.COGS += income.COGS
	totals.income.OperatingExpenses += income.OperatingExpenses
	totals.income.EBITDA += income.EBITDA
	totals.income.Depreciation += income.Depreciation
	totals.income.Amortization += income.Amortization
	totals.income.EBIT += income.EBIT
	totals.income.Interest += income.Interest
	totals.income.EBT += income.EBT
	totals.income.IncomeTax += income.IncomeTax
	totals.income.NetIncome += income.NetIncome

	totals.cash.OperatingCashFlow += cash.OperatingCashFlow
	totals.cash.InvestingCashFlow += cash.InvestingCashFlow
	totals.cash.FinancingCashFlow += cash.FinancingCashFlow
	totals.cash.FCFF += cash.FCFF
	totals.cash.FCFE += cash.FCFE
}

// summaries returns the per-year roll-ups in ascending year order.
func (a *annualAccumulator) summaries() []domain.AnnualSummary {
	sort.Ints(a.sorted)
	out := make([]domain.AnnualSummary, 0, len(a.sorted))
	for _, year := range a.sorted {
		totals := a.years[year]

		income := totals.income
		income.GrossMargin = income.NetRevenue - income.COGS

		cash := totals.cash
		cash.NetChangeInCash = cash.OperatingCashFlow + cash.InvestingCashFlow + cash.FinancingCashFlow

		out = append(out, domain.AnnualSummary{Year: year, IncomeStatement: income, CashFlow: cash})
	}
	return out
}
