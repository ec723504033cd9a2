package domain

// transitions lists the allowed target states for every non-terminal state.
// RESOLVED and DISMISSED have no outgoing edges.
var transitions = map[ReportStatus][]ReportStatus{
	ReportStatusPending:    {ReportStatusInProgress, ReportStatusDismissed},
	ReportStatusInProgress: {ReportStatusPending, ReportStatusResolved, ReportStatusDismissed},
}

// CanTransition reports whether a report may move from one status to another.
// Staying in the same status is not a transition.
func CanTransition(from, to ReportStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError when the edge is not allowed.
func CheckTransition(from, to ReportStatus) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no further status change is possible.
func (s ReportStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s.
func (s ReportStatus) NextStatuses() []ReportStatus {
	next := transitions[s]
	out := make([]ReportStatus, len(next))
	copy(out, next)
	return out
}
