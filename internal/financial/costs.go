package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
)

// centerAccumulator collects per-cost-center totals in first-touch order.
type centerAccumulator struct {
	order    []domain.CostCenter
	byCenter map[domain.CostCenter]float64
}

func newCenterAccumulator() *centerAccumulator {
	return &centerAccumulator{byCenter: make(map[domain.CostCenter]float64)}
}

func (c *centerAccumulator) add(center domain.CostCenter, amount float64) {
	if _, ok := c.byCenter[center]; !ok {
		c.order = append(c.order, center)
	}
	c.byCenter[center] += amount
}

func (c *centerAccumulator) breakdown() []domain.CostBreakdown {
	out := make([]domain.CostBreakdown, 0, len(c.order))
	for _, center := range c.order {
		out = append(out, domain.CostBreakdown{CostCenter: center, Amount: c.byCenter[center]})
	}
	return out
}

// computeCosts evaluates cost items and supplier contracts for the month and
// splits the totals between COGS and opex. The revenue-linked COGS
// adjustments (per-customer and percent-of-net) are applied by the caller.
func computeCosts(
	monthIndex int,
	model domain.CostModel,
	revenue domain.RevenueSummary,
) ([]domain.CostBreakdown, float64, float64) {
	centers := newCenterAccumulator()
	cogsTotal := 0.0
	opexTotal := 0.0

	for _, item := range model.Items {
		baseAmount := item.BaseAmount
		if item.Nature == domain.CostVariable {
			driverValue := revenue.TotalGross
			if item.Driver == domain.DriverRevenue {
				driverValue = revenue.TotalNet
			}
			baseAmount = driverValue * item.VariableRate
		}
		amount := baseAmount * item.Schedule.ValueFor(monthIndex)
		amount *= 1 + item.PriceAdjustment.FactorForMonth(monthIndex)

		centers.add(item.CostCenter, amount)
		if item.Allocation == domain.AllocationCOGS {
			cogsTotal += amount
		} else {
			opexTotal += amount
		}
	}

	for _, contract := range model.SupplierContracts {
		if monthIndex < contract.StartMonth {
			continue
		}
		escalations := (monthIndex - contract.StartMonth) / contract.EscalationFrequencyMonths
		amount := contract.BaseAmount * math.Pow(1+contract.EscalationPct, float64(escalations))

		centers.add(contract.CostCenter, amount)
		if contract.Allocation == domain.AllocationCOGS {
			cogsTotal += amount
		} else {
			opexTotal += amount
		}
	}

	return centers.breakdown(), cogsTotal, opexTotal
}

// computeRevenueTaxes evaluates flat tax components. Every component gets a
// breakdown line, but only revenue-based ones enter the deducted total;
// payroll-based components are informational.
func computeRevenueTaxes(
	revenue domain.RevenueSummary,
	model domain.TaxModel,
	payrollTotal float64,
) (float64, []domain.TaxBreakdown) {
	taxAmount := 0.0
	breakdown := make([]domain.TaxBreakdown, 0, len(model.Taxes))

	for _, tax := range model.Taxes {
		var base float64
		switch tax.Base {
		case domain.BaseGrossRevenue:
			base = revenue.TotalGross
		case domain.BaseNetRevenue:
			base = revenue.TotalNet
		case domain.BasePayroll:
			base = payrollTotal
		default:
			base = revenue.TotalNet
		}
		amount := base * tax.Rate
		breakdown = append(breakdown, domain.TaxBreakdown{Name: tax.Name, Amount: amount})
		if tax.Base == domain.BaseGrossRevenue || tax.Base == domain.BaseNetRevenue {
			taxAmount += amount
		}
	}

	return taxAmount, breakdown
}
