package domain

// TerminalValueMethod selects how the DCF terminal value is derived.
type TerminalValueMethod string

const (
	TerminalPerpetuity TerminalValueMethod = "perpetuity"
	TerminalMultiple   TerminalValueMethod = "multiple"
)

// MultipleMetric enumerates the comparable-multiple bases.
type MultipleMetric string

const (
	MetricRevenue MultipleMetric = "revenue"
	MetricEBITDA  MultipleMetric = "ebitda"
	MetricARR     MultipleMetric = "arr"
)

// ValuationSettings are the assumptions for the valuation layer.
type ValuationSettings struct {
	WACC                   float64             `json:"wacc"`
	PerpetualGrowthRate    float64             `json:"perpetual_growth_rate"`
	TerminalMethod         TerminalValueMethod `json:"terminal_method"`
	TerminalMultiple       float64             `json:"terminal_multiple"`
	TerminalMultipleMetric MultipleMetric      `json:"terminal_multiple_metric"`
	ExitYearMultiple       float64             `json:"exit_year_multiple"`
	TargetExitYear         int                 `json:"target_exit_year"`
	DiscountRateVC         float64             `json:"discount_rate_vc"`
	ProbabilityOfSuccess   float64             `json:"probability_of_success"`
	ScorecardWeights       map[string]float64  `json:"scorecard_weights,omitempty"`
}

// DiscountedCashFlowResult holds the DCF outputs.
type DiscountedCashFlowResult struct {
	EnterpriseValue   float64   `json:"enterprise_value"`
	EquityValue       float64   `json:"equity_value"`
	PVOfCashFlows     float64   `json:"pv_of_cash_flows"`
	PVOfTerminalValue float64   `json:"pv_of_terminal_value"`
	TerminalValue     float64   `json:"terminal_value"`
	DiscountFactors   []float64 `json:"discount_factors"`
}

// MultipleValuationResult is one comparable-multiple valuation line.
type MultipleValuationResult struct {
	Metric   MultipleMetric `json:"metric"`
	Multiple float64        `json:"multiple"`
	Value    float64        `json:"value"`
}

// VCValuationResult is the VC-method output.
type VCValuationResult struct {
	ExitValue         float64 `json:"exit_value"`
	OwnershipRequired float64 `json:"ownership_required"`
	PostMoney         float64 `json:"post_money"`
	PreMoney          float64 `json:"pre_money"`
}

// ScorecardValuationResult is the optional scorecard output; nil when no
// weights are configured.
type ScorecardValuationResult struct {
	TotalScore float64 `json:"total_score"`
	Valuation  float64 `json:"valuation"`
}

// ValuationResult bundles every valuation approach computed for a run.
type ValuationResult struct {
	DCF       DiscountedCashFlowResult  `json:"dcf"`
	Multiples []MultipleValuationResult `json:"multiples"`
	VCMethod  VCValuationResult         `json:"vc_method"`
	Scorecard *ScorecardValuationResult `json:"scorecard,omitempty"`
}
