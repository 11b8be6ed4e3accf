package domain

import "github.com/fschneider13/valuation/internal/pkg/dateutil"

// IncomeStatement is one period's P&L, monthly or annual.
type IncomeStatement struct {
	GrossRevenue      float64 `json:"gross_revenue"`
	RevenueTaxes      float64 `json:"revenue_taxes"`
	NetRevenue        float64 `json:"net_revenue"`
	COGS              float64 `json:"cogs"`
	GrossMargin       float64 `json:"gross_margin"`
	OperatingExpenses float64 `json:"operating_expenses"`
	EBITDA            float64 `json:"ebitda"`
	Depreciation      float64 `json:"depreciation"`
	Amortization      float64 `json:"amortization"`
	EBIT              float64 `json:"ebit"`
	Interest          float64 `json:"interest"`
	EBT               float64 `json:"ebt"`
	IncomeTax         float64 `json:"income_tax"`
	NetIncome         float64 `json:"net_income"`
}

// BalanceSheet is the month-end balance-sheet snapshot.
type BalanceSheet struct {
	Cash                    float64 `json:"cash"`
	AccountsReceivable      float64 `json:"accounts_receivable"`
	Inventory               float64 `json:"inventory"`
	FixedAssets             float64 `json:"fixed_assets"`
	AccumulatedDepreciation float64 `json:"accumulated_depreciation"`
	AccountsPayable         float64 `json:"accounts_payable"`
	Debt                    float64 `json:"debt"`
	Equity                  float64 `json:"equity"`
}

// CashFlowStatement is one period's cash-flow lines. In months where the
// min-cash backstop fires, NetChangeInCash stays the pre-backstop figure
// while FinancingCashFlow includes the injection.
type CashFlowStatement struct {
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	InvestingCashFlow float64 `json:"investing_cash_flow"`
	FinancingCashFlow float64 `json:"financing_cash_flow"`
	NetChangeInCash   float64 `json:"net_change_in_cash"`
	EndingCash        float64 `json:"ending_cash"`
	FCFF              float64 `json:"fcff"`
	FCFE              float64 `json:"fcfe"`
}

// MonthlyProjection is the full statement set for one projected month.
type MonthlyProjection struct {
	PeriodStart        dateutil.Date            `json:"period_start"`
	IncomeStatement    IncomeStatement          `json:"income_statement"`
	BalanceSheet       BalanceSheet             `json:"balance_sheet"`
	CashFlow           CashFlowStatement        `json:"cash_flow"`
	RevenueSummary     RevenueSummary           `json:"revenue_summary"`
	HeadcountBreakdown []HeadcountCostBreakdown `json:"headcount_breakdown"`
	CostBreakdown      []CostBreakdown          `json:"cost_breakdown"`
	TaxBreakdown       []TaxBreakdown           `json:"tax_breakdown"`
	WorkingCapital     WorkingCapitalDelta      `json:"working_capital_delta"`
}

// AnnualSummary rolls one calendar year's monthly statements up into a
// single income statement and cash-flow statement.
type AnnualSummary struct {
	Year            int               `json:"year"`
	IncomeStatement IncomeStatement   `json:"income_statement"`
	CashFlow        CashFlowStatement `json:"cash_flow"`
}

// DashboardSlice is one named series bundle derived from the run. Data holds
// scalars, series and nested objects as the slice requires.
type DashboardSlice struct {
	Name string                 `json:"name"`
	Data map[string]interface{} `json:"data"`
}

// ScenarioResult is the complete output of one calculator run.
type ScenarioResult struct {
	Monthly    []MonthlyProjection `json:"monthly"`
	Annual     []AnnualSummary     `json:"annual"`
	Valuation  ValuationResult     `json:"valuation"`
	Dashboards []DashboardSlice    `json:"dashboards"`
}
