package domain

import "math"

// MonthlySchedule is a default value with sparse per-month overrides, keyed
// by 0-based month index from the scenario start.
type MonthlySchedule struct {
	Default     float64         `json:"default"`
	Adjustments map[int]float64 `json:"adjustments,omitempty"`
}

// Schedule builds a constant MonthlySchedule.
func Schedule(def float64) MonthlySchedule {
	return MonthlySchedule{Default: def}
}

// ValueFor returns the override for monthIndex if present, else the default.
func (s MonthlySchedule) ValueFor(monthIndex int) float64 {
	if v, ok := s.Adjustments[monthIndex]; ok {
		return v
	}
	return s.Default
}

// IsZero reports whether the schedule was omitted from the input entirely.
func (s MonthlySchedule) IsZero() bool {
	return s.Default == 0 && len(s.Adjustments) == 0
}

// SeasonalPattern holds length-12 monthly multipliers. An empty pattern is
// treated as flat (all 1.0).
type SeasonalPattern struct {
	Values []float64 `json:"values,omitempty"`
}

// FlatSeasonalPattern returns the all-1.0 pattern.
func FlatSeasonalPattern() SeasonalPattern {
	values := make([]float64, 12)
	for i := range values {
		values[i] = 1.0
	}
	return SeasonalPattern{Values: values}
}

// Factor returns the multiplier for the given 0-based month index.
func (p SeasonalPattern) Factor(monthIndex int) float64 {
	if len(p.Values) == 0 {
		return 1.0
	}
	return p.Values[monthIndex%12]
}

// RampUpSettings describes a linear ramp toward full productivity. Carried
// for API fidelity; the revenue engine does not currently apply it.
type RampUpSettings struct {
	Months int     `json:"months"`
	Factor float64 `json:"factor"`
}

// Completion returns the ramp completion for the given month, in [0, Factor].
func (r RampUpSettings) Completion(monthIndex int) float64 {
	return math.Min(1.0, float64(monthIndex+1)/float64(r.Months)) * r.Factor
}

// InflationIndex converts an annual inflation rate into a monthly factor by
// geometric compounding.
type InflationIndex struct {
	Name       string  `json:"name"`
	AnnualRate float64 `json:"annual_rate"`
}

// MonthlyFactor returns (1+annual)^(1/12) - 1.
func (i InflationIndex) MonthlyFactor() float64 {
	return math.Pow(1+i.AnnualRate, 1.0/12.0) - 1
}

// PriceAdjustment is a per-month price escalation factor: a custom monthly
// rate plus, when an indexer is attached, the indexer's derived monthly
// factor. The result is constant in the month index.
type PriceAdjustment struct {
	Indexer           *InflationIndex `json:"indexer,omitempty"`
	CustomMonthlyRate float64         `json:"custom_monthly_rate"`
}

// FactorForMonth returns the adjustment factor for the given month.
func (p PriceAdjustment) FactorForMonth(monthIndex int) float64 {
	base := p.CustomMonthlyRate
	if p.Indexer != nil {
		base += p.Indexer.MonthlyFactor()
	}
	return base
}
