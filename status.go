package lazy

import "github.com/asmsh/lazy/internal/status"

// Status holds the outcome and the flags info of the corresponding Cell,
// at the time it is created.
type Status status.CellStatus

// Outcome returns the outcome of the cell.
func (s Status) Outcome() string {
	switch {
	case status.IsOutcomeFulfilled(uint32(s)):
		return "resolved"
	case status.IsOutcomeFailed(uint32(s)):
		return "failed"
	default:
		// running is observable only from the cell itself, mid-evaluation
		return "unresolved"
	}
}

// IsResolved returns true, only if the outcome of the cell is permanent,
// whether it's Fulfilled or Failed.
func (s Status) IsResolved() bool {
	return status.IsOutcomeResolved(uint32(s))
}

// IsFulfilled returns true, only if the outcome of the cell is Fulfilled.
func (s Status) IsFulfilled() bool {
	return status.IsOutcomeFulfilled(uint32(s))
}

// IsFailed returns true, only if the outcome of the cell is Failed.
func (s Status) IsFailed() bool {
	return status.IsOutcomeFailed(uint32(s))
}

// IsDiverged returns true, only if the outcome of the cell is Failed, and
// the cached cause is a divergence that escaped the computation.
func (s Status) IsDiverged() bool {
	return status.IsOutcomeFailed(uint32(s)) && status.IsFlagsDiverged(uint32(s))
}

// IsPanicked returns true, only if the outcome of the cell is Failed, and
// the cached cause is a captured panic.
func (s Status) IsPanicked() bool {
	return status.IsOutcomeFailed(uint32(s)) && status.IsFlagsPanicked(uint32(s))
}

// IsFuture returns true, only if the cell's computation was dispatched to
// a background worker at construction time.
func (s Status) IsFuture() bool {
	return status.IsFlagsFuture(uint32(s))
}
