package domain

import (
	"time"

	"github.com/fschneider13/valuation/internal/pkg/dateutil"
)

// SampleScenario returns the built-in baseline scenario: a seed-stage SaaS
// company projected over 36 months. It is registered at startup when the
// server config enables it and doubles as the reference fixture in tests.
func SampleScenario() ScenarioInput {
	scenario := ScenarioInput{
		Meta: ScenarioMeta{
			ID:   "sample-base",
			Name: "Base",
		},
		Currency: CurrencySettings{
			BaseCurrency:    "BRL",
			DisplayCurrency: "BRL",
			FXRate:          1.0,
		},
		Timeframe: TimeframeSettings{
			StartDate: dateutil.NewDate(2024, time.January, 1),
			Months:    36,
		},
		CompanyState: CompanyState{
			AsOf:               dateutil.NewDate(2023, time.December, 31),
			Cash:               2_500_000,
			AccountsReceivable: 100_000,
			AccountsPayable:    90_000,
			FixedAssets:        450_000,
			Equity:             5_000_000,
		},
		Revenue: RevenueModel{
			Plans: []RevenuePlan{
				{
					Name:             "SaaS",
					InitialCustomers: 120,
					InitialARPA:      3200,
					NewCustomers:     Schedule(12.0),
					ChurnRate:        Schedule(0.015),
					ExpansionRate:    Schedule(0.03),
					ARPAGrowthRate:   Schedule(0.015),
				},
			},
		},
		Headcount: HeadcountModel{
			Positions: []HeadcountPosition{
				{Role: "Engineer", Area: "Engineering", Level: "Senior", CurrentFTE: 9, BaseSalary: 240_000, BenefitsPct: 0.25},
				{Role: "Product Manager", Area: "Product", Level: "Pleno", CurrentFTE: 3, BaseSalary: 210_000, BenefitsPct: 0.22},
				{Role: "Sales", Area: "Sales", Level: "Mid", CurrentFTE: 4, BaseSalary: 180_000, BenefitsPct: 0.18, BonusPct: 0.1},
				{Role: "Customer Success", Area: "CS", Level: "Mid", CurrentFTE: 3, BaseSalary: 156_000, BenefitsPct: 0.18},
				{Role: "G&A", Area: "GNA", Level: "Mid", CurrentFTE: 3, BaseSalary: 150_000, BenefitsPct: 0.16},
			},
			Hires: []HiringPlan{
				{Role: "Engineer", MonthIndex: 6, Quantity: 2},
				{Role: "Sales", MonthIndex: 3, Quantity: 1},
			},
			AttritionPct: Schedule(0.005),
		},
		Costs: CostModel{
			Items: []CostItem{
				{
					Name:       "Opex Fixo",
					Nature:     CostFixed,
					Allocation: AllocationOpex,
					CostCenter: CenterGNA,
					BaseAmount: 120_000,
				},
			},
			COGSVariablePct: 0.16,
		},
		Taxes: TaxModel{
			Regime: RegimeLucroPresumido,
			Taxes: []TaxComponent{
				{Name: "PIS/COFINS", Base: BaseGrossRevenue, Rate: 0.0365},
				{Name: "ISS", Base: BaseNetRevenue, Rate: 0.03},
			},
			EffectiveIncomeTaxRate: 0.24,
		},
		Capex: CapexModel{
			Items: []CapexItem{
				{Name: "Plataforma", MonthIndex: 0, Amount: 450_000, UsefulLifeMonths: 36},
			},
		},
		WorkingCapital: WorkingCapitalModel{
			DSO:            30,
			DPO:            35,
			DIO:            0,
			MinCashBalance: 100_000,
		},
		Funding: FundingModel{
			EquityRounds: []EquityRound{
				{Name: "Seed", MonthIndex: 0, Amount: 3_000_000, PostMoneyValuation: 12_000_000, DilutionPct: 0.2},
			},
		},
		Valuation: ValuationSettings{
			WACC:                   0.18,
			PerpetualGrowthRate:    0.03,
			TerminalMethod:         TerminalPerpetuity,
			TerminalMultiple:       8.0,
			TerminalMultipleMetric: MetricEBITDA,
			ExitYearMultiple:       6.0,
			TargetExitYear:         5,
			DiscountRateVC:         0.35,
			ProbabilityOfSuccess:   0.6,
		},
	}
	scenario.Normalize()
	return scenario
}
