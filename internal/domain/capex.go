package domain

// CapexItem is a capital expenditure event with a straight-line depreciation
// profile.
type CapexItem struct {
	Name             string  `json:"name"`
	MonthIndex       int     `json:"month_index"`
	Amount           float64 `json:"amount"`
	UsefulLifeMonths int     `json:"useful_life_months"`
	SalvageValue     float64 `json:"salvage_value"`
}

// CapexModel groups all planned capex events.
type CapexModel struct {
	Items []CapexItem `json:"items,omitempty"`
}
