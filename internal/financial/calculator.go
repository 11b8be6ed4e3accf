// Package financial implements the scenario calculator: a deterministic
// month-by-month simulation of a company's three financial statements,
// annual roll-ups and the valuation layer derived from them.
//
// Each month the sub-models are evaluated in a fixed order (revenue,
// headcount, costs, revenue taxes, depreciation, debt) and the resulting
// P&L, working-capital movement and cash flows update the carried balance
// sheet before the next month begins. All mutable state is allocated per
// Run, so independent runs may execute concurrently.
package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
	"github.com/fschneider13/valuation/internal/pkg/dateutil"
)

// Calculator runs scenario projections. It is stateless and safe for
// concurrent use.
type Calculator struct{}

// NewCalculator creates a new scenario calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// runState is the mutable accounting state carried through one projection.
type runState struct {
	plans  []*planState
	roster *headcountRoster
	tracks []depreciationTrack
	debts  []debtState

	cash               float64
	accountsReceivable float64
	accountsPayable    float64
	inventory          float64
	fixedAssets        float64
	accumulatedDep     float64
	debtBalance        float64
	equity             float64
}

// Run projects the scenario month by month and derives the valuation layer
// from the finished stream. The input is treated as read-only; the only
// error condition is a scenario that fails validation.
func (c *Calculator) Run(scenario *domain.ScenarioInput) (*domain.ScenarioResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	months := scenario.Timeframe.Months
	startDate := scenario.Timeframe.StartDate

	state := &runState{
		plans:              make([]*planState, len(scenario.Revenue.Plans)),
		roster:             newHeadcountRoster(scenario.Headcount.Positions),
		cash:               scenario.CompanyState.Cash,
		accountsReceivable: scenario.CompanyState.AccountsReceivable,
		accountsPayable:    scenario.CompanyState.AccountsPayable,
		inventory:          scenario.CompanyState.Inventory,
		fixedAssets:        scenario.CompanyState.FixedAssets,
		accumulatedDep:     scenario.CompanyState.AccumulatedDepreciation,
		debtBalance:        scenario.CompanyState.Debt,
		equity:             scenario.CompanyState.Equity,
	}
	if state.equity == 0 {
		state.equity = scenario.CompanyState.Cash + scenario.CompanyState.NetFixedAssets()
	}
	for i, plan := range scenario.Revenue.Plans {
		state.plans[i] = newPlanState(plan)
	}

	hiresByMonth := make(map[int][]domain.HiringPlan)
	for _, hire := range scenario.Headcount.Hires {
		hiresByMonth[hire.MonthIndex] = append(hiresByMonth[hire.MonthIndex], hire)
	}

	monthly := make([]domain.MonthlyProjection, 0, months)
	annual := newAnnualAccumulator()

	for monthIndex := 0; monthIndex < months; monthIndex++ {
		periodStart := dateutil.AddMonths(startDate, monthIndex)

		revenueSummary := computeRevenue(monthIndex, scenario.Revenue, state.plans)
		headcountBreakdown, payrollTotal := computeHeadcount(monthIndex, scenario.Headcount, state.roster, hiresByMonth)
		costBreakdown, totalCOGS, totalOpex := computeCosts(monthIndex, scenario.Costs, revenueSummary)

		activeCustomers := 0.0
		for _, ps := range state.plans {
			activeCustomers += ps.activeCustomers
		}
		totalCOGS += scenario.Costs.COGSPerCustomer * activeCustomers
		totalCOGS += scenario.Costs.COGSVariablePct * revenueSummary.TotalNet

		revenueTaxes, taxBreakdown := computeRevenueTaxes(revenueSummary, scenario.Taxes, payrollTotal)

		grossRevenue := revenueSummary.TotalGross
		netRevenue := revenueSummary.TotalNet - revenueTaxes

		grossMargin := netRevenue - totalCOGS
		operatingExpenses := totalOpex + payrollTotal
		ebitda := grossMargin - operatingExpenses

		depreciation := state.computeDepreciation(monthIndex, scenario.Capex.Items)
		amortization := 0.0
		ebit := ebitda - depreciation - amortization

		interestExpense, principalPaid := state.computeDebt(monthIndex, scenario.Funding.Debt)
		for _, instrument := range scenario.Funding.Debt {
			if instrument.MonthIndex == monthIndex {
				state.debtBalance += instrument.Amount
			}
		}
		state.debtBalance -= principalPaid

		ebt := ebit - interestExpense
		incomeTax := math.Max(0, ebt) * scenario.Taxes.EffectiveIncomeTaxRate
		netIncome := ebt - incomeTax

		delta := computeWorkingCapital(
			scenario.WorkingCapital,
			netRevenue,
			totalCOGS+operatingExpenses,
			revenueSummary,
			state.accountsReceivable,
			state.accountsPayable,
			state.inventory,
		)
		state.accountsReceivable += delta.ChangeAR
		state.accountsPayable += delta.ChangeAP
		state.inventory += delta.ChangeInventory

		capexAmount := 0.0
		for _, item := range scenario.Capex.Items {
			if item.MonthIndex == monthIndex {
				capexAmount += item.Amount
			}
		}

		operatingCashFlow := netIncome + depreciation + amortization - delta.TotalChange
		investingCashFlow := -capexAmount

		equityRaise, debtInflows := fundingInflows(monthIndex, scenario.Funding)
		financingCashFlow := equityRaise + debtInflows - principalPaid - interestExpense

		fcff := ebit*(1-scenario.Taxes.EffectiveIncomeTaxRate) + depreciation + amortization - delta.TotalChange - capexAmount
		fcfe := fcff - principalPaid + debtInflows

		netChangeInCash := operatingCashFlow + investingCashFlow + financingCashFlow
		state.cash += netChangeInCash

		// Min-cash backstop: an equity injection that tops cash up to the
		// floor. It lands in financing cash flow and equity but is not
		// re-attributed into the already-computed net change in cash.
		if state.cash < scenario.WorkingCapital.MinCashBalance {
			shortfall := scenario.WorkingCapital.MinCashBalance - state.cash
			state.cash += shortfall
			financingCashFlow += shortfall
			state.equity += shortfall
		}

		state.equity += netIncome + equityRaise

		incomeStatement := domain.IncomeStatement{
			GrossRevenue:      grossRevenue,
			RevenueTaxes:      revenueTaxes,
			NetRevenue:        netRevenue,
			COGS:              totalCOGS,
			GrossMargin:       grossMargin,
			OperatingExpenses: operatingExpenses,
			EBITDA:            ebitda,
			Depreciation:      depreciation,
			Amortization:      amortization,
			EBIT:              ebit,
			Interest:          interestExpense,
			EBT:               ebt,
			IncomeTax:         incomeTax,
			NetIncome:         netIncome,
		}

		balanceSheet := domain.BalanceSheet{
			Cash:                    state.cash,
			AccountsReceivable:      state.accountsReceivable,
			Inventory:               state.inventory,
			FixedAssets:             state.fixedAssets,
			AccumulatedDepreciation: state.accumulatedDep,
			AccountsPayable:         state.accountsPayable,
			Debt:                    state.debtBalance,
			Equity:                  state.equity,
		}

		cashFlow := domain.CashFlowStatement{
			OperatingCashFlow: operatingCashFlow,
			InvestingCashFlow: investingCashFlow,
			FinancingCashFlow: financingCashFlow,
			NetChangeInCash:   netChangeInCash,
			EndingCash:        state.cash,
			FCFF:              fcff,
			FCFE:              fcfe,
		}

		monthly = append(monthly, domain.MonthlyProjection{
			PeriodStart:        periodStart,
			IncomeStatement:    incomeStatement,
			BalanceSheet:       balanceSheet,
			CashFlow:           cashFlow,
			RevenueSummary:     revenueSummary,
			HeadcountBreakdown: headcountBreakdown,
			CostBreakdown:      costBreakdown,
			TaxBreakdown:       taxBreakdown,
			WorkingCapital:     delta,
		})

		annual.accumulate(periodStart.Year, incomeStatement, cashFlow)
	}

	annualSummaries := annual.summaries()
	valuation := buildValuation(monthly, annualSummaries, scenario)
	dashboards := buildDashboards(monthly, valuation)

	return &domain.ScenarioResult{
		Monthly:    monthly,
		Annual:     annualSummaries,
		Valuation:  valuation,
		Dashboards: dashboards,
	}, nil
}

// fundingInflows sums equity and debt raised in the given month.
func fundingInflows(monthIndex int, funding domain.FundingModel) (equity, debt float64) {
	for _, round := range funding.EquityRounds {
		if round.MonthIndex == monthIndex {
			equity += round.Amount
		}
	}
	for _, instrument := range funding.Debt {
		if instrument.MonthIndex == monthIndex {
			debt += instrument.Amount
		}
	}
	return equity, debt
}
