package domain

// DebtType enumerates the supported debt instrument flavors.
type DebtType string

const (
	DebtTerm     DebtType = "term"
	DebtRevolver DebtType = "revolver"
)

// EquityRound is a cash injection at a given month.
type EquityRound struct {
	Name               string  `json:"name"`
	MonthIndex         int     `json:"month_index"`
	Amount             float64 `json:"amount"`
	PostMoneyValuation float64 `json:"post_money_valuation"`
	DilutionPct        float64 `json:"dilution_pct"`
}

// DebtInstrument is a loan drawn at a given month and amortized monthly
// after any grace period.
type DebtInstrument struct {
	Name               string   `json:"name"`
	MonthIndex         int      `json:"month_index"`
	Amount             float64  `json:"amount"`
	InterestRateAnnual float64  `json:"interest_rate_annual"`
	TermMonths         int      `json:"term_months"`
	DebtType           DebtType `json:"debt_type"`
	GracePeriodMonths  int      `json:"grace_period_months"`
}

// FundingModel groups equity rounds and debt instruments.
type FundingModel struct {
	EquityRounds []EquityRound    `json:"equity_rounds,omitempty"`
	Debt         []DebtInstrument `json:"debt,omitempty"`
}
