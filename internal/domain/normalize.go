package domain

// Defaults applied to omitted optional fields. Go decoding cannot tell an
// omitted field from an explicit zero, so zero values take the documented
// default, mirroring how the service treats unset knobs elsewhere.
const (
	defaultTimezone       = "America/Sao_Paulo"
	defaultTargetExitYear = 5
	defaultDiscountRateVC = 0.30
	defaultEscalationFreq = 12
)

// Normalize fills omitted optional fields with their documented defaults.
// Call it once after decoding and before Validate; it never overrides a
// non-zero value.
func (s *ScenarioInput) Normalize() {
	if s.Meta.ScenarioType == "" {
		s.Meta.ScenarioType = ScenarioBase
	}
	if s.Meta.Timezone == "" {
		s.Meta.Timezone = defaultTimezone
	}
	if s.Currency.FXRate == 0 {
		s.Currency.FXRate = 1.0
	}

	for i := range s.Revenue.Plans {
		plan := &s.Revenue.Plans[i]
		if plan.Recognition == "" {
			plan.Recognition = RecognitionSubscription
		}
		if len(plan.SeasonalPattern.Values) == 0 {
			plan.SeasonalPattern = FlatSeasonalPattern()
		}
		if plan.RampUp.Months == 0 && plan.RampUp.Factor == 0 {
			plan.RampUp = RampUpSettings{Months: 1, Factor: 1.0}
		}
	}

	for i := range s.Costs.Items {
		item := &s.Costs.Items[i]
		if item.Driver == "" {
			item.Driver = DriverRevenue
		}
		if item.CostCenter == "" {
			item.CostCenter = CenterOther
		}
		if item.Schedule.IsZero() {
			item.Schedule = Schedule(1.0)
		}
	}
	for i := range s.Costs.SupplierContracts {
		contract := &s.Costs.SupplierContracts[i]
		if contract.EscalationFrequencyMonths == 0 {
			contract.EscalationFrequencyMonths = defaultEscalationFreq
		}
		if contract.Allocation == "" {
			contract.Allocation = AllocationOpex
		}
		if contract.CostCenter == "" {
			contract.CostCenter = CenterOther
		}
	}

	for i := range s.Funding.Debt {
		if s.Funding.Debt[i].DebtType == "" {
			s.Funding.Debt[i].DebtType = DebtTerm
		}
	}

	if s.Valuation.TerminalMethod == "" {
		s.Valuation.TerminalMethod = TerminalPerpetuity
	}
	if s.Valuation.TerminalMultipleMetric == "" {
		s.Valuation.TerminalMultipleMetric = MetricEBITDA
	}
	if s.Valuation.TargetExitYear == 0 {
		s.Valuation.TargetExitYear = defaultTargetExitYear
	}
	if s.Valuation.DiscountRateVC == 0 {
		s.Valuation.DiscountRateVC = defaultDiscountRateVC
	}
	if s.Valuation.ProbabilityOfSuccess == 0 {
		s.Valuation.ProbabilityOfSuccess = 1.0
	}
}
