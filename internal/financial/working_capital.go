package financial

import "github.com/fschneider13/valuation/internal/domain"

// computeWorkingCapital derives the month's AR/AP/inventory movement from the
// day-based policy. Targets use a 30-day month; costBase is COGS plus
// operating expenses.
func computeWorkingCapital(
	model domain.WorkingCapitalModel,
	netRevenue float64,
	costBase float64,
	revenue domain.RevenueSummary,
	previousAR float64,
	previousAP float64,
	previousInventory float64,
) domain.WorkingCapitalDelta {
	targetAR := netRevenue * (model.DSO / 30)
	targetAP := costBase * (model.DPO / 30)
	targetInventory := revenue.TotalGross * (model.DIO / 30)

	changeAR := targetAR - previousAR
	changeAP := targetAP - previousAP
	changeInventory := targetInventory - previousInventory

	return domain.WorkingCapitalDelta{
		ChangeAR:        changeAR,
		ChangeAP:        changeAP,
		ChangeInventory: changeInventory,
		TotalChange:     changeAR - changeAP + changeInventory,
	}
}
