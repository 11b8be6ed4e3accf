package domain

// SubscriptionCost is a per-seat tool/license cost attached to a position.
type SubscriptionCost struct {
	Name            string          `json:"name"`
	MonthlyCost     float64         `json:"monthly_cost"`
	PriceAdjustment PriceAdjustment `json:"price_adjustment"`
}

// HeadcountPosition describes one role: current staffing and the unit cost
// components a single FTE carries.
type HeadcountPosition struct {
	Role          string             `json:"role"`
	Area          string             `json:"area"`
	Level         string             `json:"level"`
	CurrentFTE    float64            `json:"current_fte"`
	BaseSalary    float64            `json:"base_salary"`
	BenefitsPct   float64            `json:"benefits_pct"`
	BenefitsFixed float64            `json:"benefits_fixed"`
	BonusPct      float64            `json:"bonus_pct"`
	PayrollTaxPct float64            `json:"payroll_taxes_pct"`
	Subscriptions []SubscriptionCost `json:"subscriptions,omitempty"`
	// SalaryAdjustment is carried in the schema; salaries are not escalated
	// inside the monthly loop.
	SalaryAdjustment PriceAdjustment `json:"salary_adjustment"`
}

// HiringPlan adds FTEs to a role at a given month, optionally resetting the
// role's salary.
type HiringPlan struct {
	Role           string  `json:"role"`
	MonthIndex     int     `json:"month_index"`
	Quantity       float64 `json:"quantity"`
	SalaryOverride float64 `json:"salary_override,omitempty"`
}

// HeadcountModel groups positions, hiring plans and the attrition schedule.
type HeadcountModel struct {
	Positions    []HeadcountPosition `json:"positions"`
	Hires        []HiringPlan        `json:"hires,omitempty"`
	AttritionPct MonthlySchedule     `json:"attrition_pct"`
}

// HeadcountCostBreakdown is one month's payroll cost for a single area.
// Benefits bundles benefits, bonus and payroll taxes.
type HeadcountCostBreakdown struct {
	Area          string  `json:"area"`
	Salaries      float64 `json:"salaries"`
	Benefits      float64 `json:"benefits"`
	Subscriptions float64 `json:"subscriptions"`
	Total         float64 `json:"total"`
	FTE           float64 `json:"fte"`
}
