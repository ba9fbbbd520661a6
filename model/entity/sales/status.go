package sales

// LineStatus is the lifecycle state of an order line (and, aggregated, of
// an order). Stored as its string value in trang_thai columns.
type LineStatus string

const (
	StatusPending    LineStatus = "pending"
	StatusInProgress LineStatus = "in_progress"
	StatusCompleted  LineStatus = "completed"
	StatusCancelled  LineStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s LineStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Valid reports whether s is a known status value.
func (s LineStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// legalTransitions is the single source of truth for line/order status
// moves: pending -> in_progress -> completed, cancelled reachable from
// either non-terminal state.
var legalTransitions = map[LineStatus][]LineStatus{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether from -> to is a legal move. A same-state
// save is not a transition and is reported as false.
func CanTransition(from, to LineStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SessionStatus is the table-occupancy state: active -> closed, one way.
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionClosed SessionStatus = "closed"
)
