package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
)

// computeRevenue advances every plan's customer population one month and
// aggregates the recognized revenue. plans is indexed in parallel with
// model.Plans and is mutated in place.
func computeRevenue(monthIndex int, model domain.RevenueModel, plans []*planState) domain.RevenueSummary {
	var summary domain.RevenueSummary

	for i, plan := range model.Plans {
		state := plans[i]

		newCustomers := math.Max(0, plan.NewCustomers.ValueFor(monthIndex))
		churnRate := plan.ChurnRate.ValueFor(monthIndex)
		expansionRate := plan.ExpansionRate.ValueFor(monthIndex)
		contractionRate := plan.ContractionRate.ValueFor(monthIndex)
		arpaGrowth := plan.ARPAGrowthRate.ValueFor(monthIndex)

		churned := state.activeCustomers * churnRate
		state.activeCustomers = math.Max(0, state.activeCustomers+newCustomers-churned)

		arpa := plan.InitialARPA * math.Pow(1+arpaGrowth, float64(monthIndex+1))
		arpa *= plan.SeasonalPattern.Factor(monthIndex)

		baseRevenue := state.activeCustomers * arpa
		discount := baseRevenue * plan.DiscountRate.ValueFor(monthIndex)
		expansionRevenue := baseRevenue * expansionRate
		contractionRevenue := baseRevenue * contractionRate

		grossRevenue := baseRevenue + expansionRevenue - contractionRevenue
		grossRevenue += plan.ServicesAttachRate * newCustomers * plan.ServicesASP
		grossRevenue += plan.TransactionalVolume.ValueFor(monthIndex) * plan.TransactionalFee

		recognized := grossRevenue
		if plan.RevenueDeferralMonths > 0 {
			recognized = state.push(grossRevenue) / float64(plan.RevenueDeferralMonths)
		}

		summary.TotalGross += grossRevenue
		summary.TotalNet += recognized - discount
		summary.TotalChurn += churned * arpa
		summary.TotalExpansion += expansionRevenue
		summary.ARR += recognized * 12
	}

	// Streams outside the cohort plans: services land in gross only, other
	// recurring revenue is recognized immediately.
	summary.TotalGross += model.ProfessionalServicesRevenue.ValueFor(monthIndex)
	summary.TotalNet += model.OtherRecurringRevenue.ValueFor(monthIndex)

	return summary
}
