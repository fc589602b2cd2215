package fsm

// Status constants used by the ride state machine.
const (
	StatusPending          = "pending"
	StatusAccepted         = "accepted"
	StatusInProgress       = "in_progress"
	StatusCompleted        = "completed"
	StatusCancelled        = "cancelled"
	StatusRejected         = "rejected"
	StatusTimeoutCancelled = "timeout_cancelled"
)

var transitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusAccepted:         {},
		StatusCancelled:        {},
		StatusTimeoutCancelled: {},
	},
	StatusAccepted: {
		StatusInProgress: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
		StatusRejected:   {},
	},
	StatusInProgress: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusCompleted:        {},
	StatusCancelled:        {},
	StatusRejected:         {},
	StatusTimeoutCancelled: {},
}

// ActiveStatuses lists the non-terminal statuses. A passenger may hold at
// most one ride in any of these at a time.
var ActiveStatuses = []string{StatusPending, StatusAccepted, StatusInProgress}

// CanTransition returns whether a ride can move from the current status to
// the target status.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsTerminal reports whether no further transition may leave the status.
func IsTerminal(status string) bool {
	allowed, ok := transitions[status]
	return ok && len(allowed) == 0
}

// Known reports whether the status belongs to the ride status enumeration.
func Known(status string) bool {
	_, ok := transitions[status]
	return ok
}
