package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
)

// computeDepreciation capitalizes the month's capex, charges one straight-line
// step on every open track and rolls fixed assets and accumulated
// depreciation forward on the run state.
func (s *runState) computeDepreciation(monthIndex int, items []domain.CapexItem) float64 {
	for _, item := range items {
		if item.MonthIndex == monthIndex {
			s.fixedAssets += item.Amount
			s.tracks = append(s.tracks, depreciationTrack{
				remaining: item.UsefulLifeMonths,
				amount:    item.Amount,
				salvage:   item.SalvageValue,
			})
		}
	}

	depreciation := 0.0
	retained := s.tracks[:0]
	for _, track := range s.tracks {
		if track.remaining <= 0 {
			continue
		}
		// amount carries the remaining book value, so the per-month charge
		// stays constant over the track's life and the book lands on salvage.
		monthlyDep := math.Max(0, (track.amount-track.salvage)/float64(track.remaining))
		depreciation += monthlyDep
		track.amount -= monthlyDep
		track.remaining--
		retained = append(retained, track)
	}
	s.tracks = retained

	s.accumulatedDep += depreciation
	return depreciation
}
