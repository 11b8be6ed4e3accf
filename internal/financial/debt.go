package financial

import (
	"math"

	"github.com/fschneider13/valuation/internal/domain"
)

// computeDebt draws the month's new instruments, accrues interest on every
// outstanding one and amortizes principal past the grace period. Interest
// accrues from the draw month. Returns interest expense and principal paid.
func (s *runState) computeDebt(monthIndex int, instruments []domain.DebtInstrument) (interestExpense, principalPaid float64) {
	for _, instrument := range instruments {
		if instrument.MonthIndex == monthIndex {
			s.debts = append(s.debts, debtState{
				name:          instrument.Name,
				outstanding:   instrument.Amount,
				interestRate:  instrument.InterestRateAnnual,
				termMonths:    instrument.TermMonths,
				remainingTerm: instrument.TermMonths,
				graceMonths:   instrument.GracePeriodMonths,
			})
		}
	}

	retained := s.debts[:0]
	for _, state := range s.debts {
		if state.outstanding <= 0 {
			continue
		}
		interestExpense += state.outstanding * (state.interestRate / 12)

		if state.graceMonths > 0 {
			state.graceMonths--
			retained = append(retained, state)
			continue
		}

		payment := state.outstanding
		if state.remainingTerm > 0 {
			payment = state.outstanding / float64(state.remainingTerm)
		}
		payment = math.Min(payment, state.outstanding)
		principalPaid += payment
		state.outstanding -= payment
		state.remainingTerm = max(0, state.remainingTerm-1)

		if state.outstanding > 1e-6 {
			retained = append(retained, state)
		}
	}
	s.debts = retained

	return interestExpense, principalPaid
}
