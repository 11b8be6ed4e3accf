package financial

import "github.com/fschneider13/valuation/internal/domain"

// areaAccumulator collects per-area payroll totals in first-touch order so
// the breakdown slice comes out stable across runs.
type areaAccumulator struct {
	order  []string
	byArea map[string]*domain.HeadcountCostBreakdown
}

func newAreaAccumulator() *areaAccumulator {
	return &areaAccumulator{byArea: make(map[string]*domain.HeadcountCostBreakdown)}
}

func (a *areaAccumulator) get(area string) *domain.HeadcountCostBreakdown {
	if entry, ok := a.byArea[area]; ok {
		return entry
	}
	entry := &domain.HeadcountCostBreakdown{Area: area}
	a.byArea[area] = entry
	a.order = append(a.order, area)
	return entry
}

func (a *areaAccumulator) breakdown() []domain.HeadcountCostBreakdown {
	out := make([]domain.HeadcountCostBreakdown, 0, len(a.order))
	for _, area := range a.order {
		out = append(out, *a.byArea[area])
	}
	return out
}

// computeHeadcount applies the month's hires, then attrition and per-role
// cost build. Hires for roles without a matching position are skipped. The
// roster is mutated in place; the second return is the month's total payroll
// cost including benefits, bonus, payroll taxes and tool subscriptions.
func computeHeadcount(
	monthIndex int,
	model domain.HeadcountModel,
	roster *headcountRoster,
	hiresByMonth map[int][]domain.HiringPlan,
) ([]domain.HeadcountCostBreakdown, float64) {
	for _, hire := range hiresByMonth[monthIndex] {
		state, ok := roster.get(hire.Role)
		if !ok {
			var matching *domain.HeadcountPosition
			for i := range model.Positions {
				if model.Positions[i].Role == hire.Role {
					matching = &model.Positions[i]
					break
				}
			}
			if matching == nil {
				continue
			}
			state = &headcountState{position: *matching, fte: 0, currentSalary: matching.BaseSalary}
			roster.add(hire.Role, state)
		}
		state.fte += hire.Quantity
		if hire.SalaryOverride != 0 {
			state.currentSalary = hire.SalaryOverride
		}
	}

	attritionRate := model.AttritionPct.ValueFor(monthIndex)
	payrollTotal := 0.0
	areas := newAreaAccumulator()

	roster.each(func(state *headcountState) {
		if state.fte <= 0 {
			return
		}
		state.fte *= 1 - attritionRate

		monthlySalary := state.currentSalary / 12
		salaryCost := state.fte * monthlySalary
		benefits := salaryCost*state.position.BenefitsPct + state.fte*state.position.BenefitsFixed
		bonus := salaryCost * state.position.BonusPct
		payrollTaxes := salaryCost * state.position.PayrollTaxPct

		subsCost := 0.0
		for _, sub := range state.position.Subscriptions {
			subsCost += sub.MonthlyCost * (1 + sub.PriceAdjustment.FactorForMonth(monthIndex))
		}
		subsCost *= state.fte

		total := salaryCost + benefits + bonus + payrollTaxes + subsCost
		payrollTotal += total

		entry := areas.get(state.position.Area)
		entry.Salaries += salaryCost
		entry.Benefits += benefits + bonus + payrollTaxes
		entry.Subscriptions += subsCost
		entry.Total += total
		entry.FTE += state.fte
	})

	return areas.breakdown(), payrollTotal
}
