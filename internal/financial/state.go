package financial

import "github.com/fschneider13/valuation/internal/domain"

// planState carries a revenue plan's population and deferral queue across
// months. The queue length is fixed at plan initialisation and never grows.
type planState struct {
	activeCustomers float64
	deferred        []float64 // FIFO, len == revenue_deferral_months
}

func newPlanState(plan domain.RevenuePlan) *planState {
	return &planState{
		activeCustomers: plan.InitialCustomers,
		deferred:        make([]float64, plan.RevenueDeferralMonths),
	}
}

// push enqueues the month's gross revenue and dequeues the head. Only valid
// when the plan defers revenue (len > 0).
func (s *planState) push(gross float64) (head float64) {
	head = s.deferred[0]
	copy(s.deferred, s.deferred[1:])
	s.deferred[len(s.deferred)-1] = gross
	return head
}

// headcountState carries one role's staffing and salary across months.
type headcountState struct {
	position      domain.HeadcountPosition
	fte           float64
	currentSalary float64
}

// headcountRoster is an insertion-ordered set of headcount states keyed by
// role. Ordering matters: attrition and cost build iterate it, and the area
// totals in the output follow first-touch order.
type headcountRoster struct {
	order  []string
	byRole map[string]*headcountState
}

func newHeadcountRoster(positions []domain.HeadcountPosition) *headcountRoster {
	r := &headcountRoster{byRole: make(map[string]*headcountState, len(positions))}
	for _, pos := range positions {
		r.add(pos.Role, &headcountState{position: pos, fte: pos.CurrentFTE, currentSalary: pos.BaseSalary})
	}
	return r
}

func (r *headcountRoster) get(role string) (*headcountState, bool) {
	st, ok := r.byRole[role]
	return st, ok
}

func (r *headcountRoster) add(role string, st *headcountState) {
	if _, exists := r.byRole[role]; exists {
		return
	}
	r.byRole[role] = st
	r.order = append(r.order, role)
}

// each visits every state in insertion order.
func (r *headcountRoster) each(fn func(*headcountState)) {
	for _, role := range r.order {
		fn(r.byRole[role])
	}
}

// depreciationTrack is one capex event's remaining straight-line schedule.
// amount is the remaining book value, drawn down toward salvage.
type depreciationTrack struct {
	remaining int
	amount    float64
	salvage   float64
}

// debtState is one drawn instrument's amortization state. States are
// discarded once outstanding falls to ~zero.
type debtState struct {
	name          string
	outstanding   float64
	interestRate  float64
	termMonths    int
	remainingTerm int
	graceMonths   int
}
