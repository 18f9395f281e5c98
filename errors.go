package lazy

import (
	"fmt"
)

// panic messages
const (
	nilComputationPanicMsg = "lazy: the provided computation is nil"
	badSchedulerPanicMsg   = "lazy: the provided scheduler returned a nil handle"
)

// DivergenceError is reported when resolving a cell requires the cell's own
// not-yet-computed result, either directly, by the computation forcing its
// own cell through the self handle, or indirectly, through a cycle of cells
// that loops back to a cell whose computation is still in flight.
//
// It's its own failure category: it's never wrapped inside an EvalError,
// and detecting it doesn't resolve the cell by itself. The cell fails with
// a divergence only if its computation lets the divergence escape.
type DivergenceError struct {
	cellID uint64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("lazy: cell #%d diverges: its computation depends on its own result", e.cellID)
}

func newDivergenceError(cellID uint64) *DivergenceError {
	return &DivergenceError{cellID: cellID}
}

// EvalError wraps a failure raised inside a cell's computation, or by a
// future's worker infrastructure.
// Every Force call on a failed cell returns a new EvalError instance
// carrying the same cause, so each call site gets its own error value,
// while the original cause stays shared and reachable through Unwrap.
type EvalError struct {
	cause error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("lazy: the computation failed: %s", e.cause.Error())
}

func (e *EvalError) Unwrap() error {
	return e.cause
}

func newEvalError(cause error) *EvalError {
	return &EvalError{cause: cause}
}

// PanicError wraps a panic that happened inside a cell's computation, or
// inside a future's worker.
// It's always found as the cause of an EvalError.
type PanicError struct {
	V any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panicked: %v", e.V)
}
