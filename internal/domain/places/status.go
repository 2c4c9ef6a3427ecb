package places

// Status is the moderation state of a place.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// A decision can be applied again to a place that already carries it, so a
// repeated approve or reject simply overwrites the moderator.
var transitions = map[Status]map[Status]struct{}{
	StatusPending:  {StatusApproved: {}, StatusRejected: {}},
	StatusApproved: {StatusApproved: {}},
	StatusRejected: {StatusRejected: {}},
}

// CanTransition reports whether a place in state from may move to state to.
func CanTransition(from, to Status) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}
