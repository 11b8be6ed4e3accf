package domain

// WorkingCapitalModel sets the day-based working-capital policy and the
// minimum cash balance enforced by the financing backstop.
type WorkingCapitalModel struct {
	DSO            float64 `json:"dso"`
	DPO            float64 `json:"dpo"`
	DIO            float64 `json:"dio"`
	MinCashBalance float64 `json:"min_cash_balance"`
}

// WorkingCapitalDelta is one month's movement in AR/AP/inventory relative to
// the prior balances. TotalChange = ΔAR - ΔAP + ΔInventory.
type WorkingCapitalDelta struct {
	ChangeAR        float64 `json:"change_ar"`
	ChangeAP        float64 `json:"change_ap"`
	ChangeInventory float64 `json:"change_inventory"`
	TotalChange     float64 `json:"total_change"`
}
