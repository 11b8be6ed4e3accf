package domain

// TaxBase selects what a tax component is levied on.
type TaxBase string

const (
	BaseGrossRevenue TaxBase = "gross_revenue"
	BaseNetRevenue   TaxBase = "net_revenue"
	BaseEBIT         TaxBase = "ebit"
	BaseEBT          TaxBase = "ebt"
	BasePayroll      TaxBase = "payroll"
)

// TaxRegime labels the fiscal regime. Informational; the monthly loop uses
// the flat components plus the effective income-tax rate regardless.
type TaxRegime string

const (
	RegimeSimples        TaxRegime = "simples"
	RegimeLucroPresumido TaxRegime = "lucro_presumido"
	RegimeLucroReal      TaxRegime = "lucro_real"
	RegimeCustom         TaxRegime = "custom"
)

// TaxComponent is a flat-rate tax on a chosen base.
type TaxComponent struct {
	Name       string  `json:"name"`
	Base       TaxBase `json:"base"`
	Rate       float64 `json:"rate"`
	Deductible bool    `json:"deductible"`
}

// TaxBracket is one progressive-tax bracket (schema-only).
type TaxBracket struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// ProgressiveTax is a bracketed tax definition (schema-only; not computed in
// the monthly loop).
type ProgressiveTax struct {
	Name     string       `json:"name"`
	Base     TaxBase      `json:"base"`
	Brackets []TaxBracket `json:"brackets"`
}

// TaxCredit is a rate credit on a base (schema-only).
type TaxCredit struct {
	Name string  `json:"name"`
	Base TaxBase `json:"base"`
	Rate float64 `json:"rate"`
}

// TaxModel groups the revenue-tax components and the single effective
// income-tax rate applied to positive EBT.
type TaxModel struct {
	Regime                 TaxRegime        `json:"regime"`
	Taxes                  []TaxComponent   `json:"taxes,omitempty"`
	Progressive            []ProgressiveTax `json:"progressive,omitempty"`
	Credits                []TaxCredit      `json:"credits,omitempty"`
	EffectiveIncomeTaxRate float64          `json:"effective_income_tax_rate"`
}

// TaxBreakdown is one month's amount for a single tax component.
type TaxBreakdown struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}
