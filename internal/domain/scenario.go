package domain

import (
	"math"

	"github.com/fschneider13/valuation/internal/pkg/dateutil"
)

// ScenarioType enumerates the supported scenario flavors.
type ScenarioType string

const (
	ScenarioBase ScenarioType = "base"
	ScenarioBull ScenarioType = "bull"
	ScenarioBear ScenarioType = "bear"
)

// ScenarioMeta identifies a scenario.
type ScenarioMeta struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ScenarioType ScenarioType `json:"scenario_type"`
	Timezone     string       `json:"timezone"`
	Description  string       `json:"description,omitempty"`
}

// CurrencySettings carries currency metadata. FX is never applied during
// calculation; it exists so a presentation layer can convert.
type CurrencySettings struct {
	BaseCurrency    string  `json:"base_currency"`
	DisplayCurrency string  `json:"display_currency"`
	FXRate          float64 `json:"fx_rate"`
}

// TimeframeSettings sets the projection horizon.
type TimeframeSettings struct {
	StartDate dateutil.Date `json:"start_date"`
	Months    int           `json:"months"`
}

// CompanyState is the opening balance sheet as of the scenario start.
type CompanyState struct {
	AsOf                    dateutil.Date `json:"as_of"`
	Cash                    float64       `json:"cash"`
	AccountsReceivable      float64       `json:"accounts_receivable"`
	AccountsPayable         float64       `json:"accounts_payable"`
	Inventory               float64       `json:"inventory"`
	FixedAssets             float64       `json:"fixed_assets"`
	AccumulatedDepreciation float64       `json:"accumulated_depreciation"`
	Debt                    float64       `json:"debt"`
	Equity                  float64       `json:"equity"`
}

// NetFixedAssets returns fixed assets net of accumulated depreciation,
// floored at zero.
func (c CompanyState) NetFixedAssets() float64 {
	return math.Max(0, c.FixedAssets-c.AccumulatedDepreciation)
}

// ScenarioInput is the complete set of assumptions for one projection run.
// The calculator treats it as read-only; all mutable state lives inside the
// run.
type ScenarioInput struct {
	Meta           ScenarioMeta        `json:"meta"`
	Currency       CurrencySettings    `json:"currency"`
	Timeframe      TimeframeSettings   `json:"timeframe"`
	CompanyState   CompanyState        `json:"company_state"`
	Revenue        RevenueModel        `json:"revenue"`
	Headcount      HeadcountModel      `json:"headcount"`
	Costs          CostModel           `json:"costs"`
	Taxes          TaxModel            `json:"taxes"`
	Capex          CapexModel          `json:"capex"`
	WorkingCapital WorkingCapitalModel `json:"working_capital"`
	Funding        FundingModel        `json:"funding"`
	Valuation      ValuationSettings   `json:"valuation"`
}
