package domain

// CostNature distinguishes fixed amounts from revenue-driven ones.
type CostNature string

const (
	CostFixed    CostNature = "fixed"
	CostVariable CostNature = "variable"
)

// CostAllocation routes a cost into COGS or operating expenses.
type CostAllocation string

const (
	AllocationCOGS CostAllocation = "cogs"
	AllocationOpex CostAllocation = "opex"
)

// CostCenter enumerates the reporting cost centers.
type CostCenter string

const (
	CenterEngineering CostCenter = "engineering"
	CenterProduct     CostCenter = "product"
	CenterSales       CostCenter = "sales"
	CenterMarketing   CostCenter = "marketing"
	CenterCS          CostCenter = "cs"
	CenterGNA         CostCenter = "gna"
	CenterOther       CostCenter = "other"
)

// CostDriver selects which revenue line a variable cost scales with.
const (
	DriverRevenue      = "revenue"       // net revenue
	DriverGrossRevenue = "gross_revenue" // gross revenue
)

// CostItem is a single recurring cost line, fixed or variable.
type CostItem struct {
	Name            string          `json:"name"`
	Nature          CostNature      `json:"nature"`
	Allocation      CostAllocation  `json:"allocation"`
	CostCenter      CostCenter      `json:"cost_center"`
	BaseAmount      float64         `json:"base_amount"`
	VariableRate    float64         `json:"variable_rate"`
	Driver          string          `json:"driver"`
	PriceAdjustment PriceAdjustment `json:"price_adjustment"`
	Schedule        MonthlySchedule `json:"schedule"`
}

// SupplierContract is a cost that starts at a given month and escalates by a
// fixed percentage every N months.
type SupplierContract struct {
	Name                      string         `json:"name"`
	StartMonth                int            `json:"start_month"`
	BaseAmount                float64        `json:"base_amount"`
	EscalationPct             float64        `json:"escalation_pct"`
	EscalationFrequencyMonths int            `json:"escalation_frequency_months"`
	Allocation                CostAllocation `json:"allocation"`
	CostCenter                CostCenter     `json:"cost_center"`
}

// CostModel groups discrete cost items, supplier contracts and the two
// revenue-linked COGS adjustments applied by the orchestrator.
type CostModel struct {
	Items             []CostItem         `json:"items,omitempty"`
	SupplierContracts []SupplierContract `json:"supplier_contracts,omitempty"`
	COGSVariablePct   float64            `json:"cogs_variable_pct"`
	COGSPerCustomer   float64            `json:"cogs_per_customer"`
}

// CostBreakdown is one month's total for a single cost center.
type CostBreakdown struct {
	CostCenter CostCenter `json:"cost_center"`
	Amount     float64    `json:"amount"`
}
