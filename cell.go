// Copyright 2025 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lazy

import (
	"context"
	"sync"

	"github.com/asmsh/lazy/internal/status"
)

// Computation produces the value of a Cell.
//
// The ctx is the evaluation context: it carries the evaluation tokens of
// this cell and of any outer cells currently being resolved, and it must
// be the ctx used for any forcing the computation does itself.
//
// The self parameter is the cell being resolved. It's the self-reference
// hook for circular or self-describing definitions: the computation may
// store it for later use, but forcing it before returning is a divergence.
//
// A nil returned Result is treated as Empty.
type Computation[T any] func(ctx context.Context, self *Cell[T]) Result[T]

// Cell is a deferred-evaluation cell: a single-slot container for a
// not-yet-computed value, resolved at most once and cached forever.
//
// The zero value is not usable; use the constructors of this package.
type Cell[T any] struct {
	// id is the identity carried by evaluation tokens and divergence
	// reports.
	id uint64

	// guards the computation slot, the winner election, and the outcome
	// transition.
	// it's never held while the computation runs, so a diverging
	// computation can never deadlock on it.
	mu sync.Mutex

	// holds the pending computation until evaluation starts, at which
	// point it's swapped out, making it unreachable (and collectible),
	// so it can't possibly run a second time.
	comp Computation[T]

	// non-nil only for future cells.
	// written once, at construction, and never updated.
	task TaskHandle

	// closed when this cell is resolved.
	// this channel has one writer (one goroutine), which is the winner,
	// which will close it, but can have multiple readers (waiting Force
	// calls).
	syncChan chan struct{}

	// hold the cached value or failure cause of the cell.
	// written once, before the syncChan channel is closed.
	// don't read them unless the status outcome is known to be resolved.
	val   T
	cause error

	// holds the outcome and the flags of the cell.
	// refer to the docs of the CellStatus type for more info.
	status status.CellStatus
}

// Force resolves the cell and returns its value.
//
// The first Force call (across all goroutines) runs the computation; every
// other call either returns the cached outcome, or blocks until the
// in-flight evaluation finishes and then adopts its outcome. The
// computation runs at most once over the cell's lifetime.
//
// On a failed cell, Force returns a new *EvalError instance on every call,
// carrying the original cause; the computation is never retried.
//
// Forcing a cell from inside its own computation returns a
// *DivergenceError immediately, without running the computation a second
// time, and without blocking.
//
// Cancelling ctx unblocks a waiting Force call with the ctx error. It
// doesn't cancel the in-flight computation, nor does it touch the cell's
// outcome: the cell can still resolve normally for other callers.
func (c *Cell[T]) Force(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.force(ctx)
}

// Res resolves the cell like Force, and returns its outcome as a Result.
func (c *Cell[T]) Res(ctx context.Context) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	val, err := c.force(ctx)
	return result[T]{val: val, err: err, state: c.resState(err)}
}

// Resolved returns true once the cell's outcome is permanent, whether it's
// a cached value or a cached failure.
// It never blocks and never triggers evaluation.
func (c *Cell[T]) Resolved() bool {
	return status.IsOutcomeResolved(c.status.Load())
}

// Status returns a snapshot of the cell's status at the time of the call.
// It never blocks and never triggers evaluation.
func (c *Cell[T]) Status() Status {
	return Status(c.status.Load())
}

// Val returns the cell's value, resolving it first if needed.
//
// It's part of the Result implementation of the cell, which is what allows
// a computation to return another cell as its result. It blocks until the
// cell is resolved, and it can't be unblocked by any ctx; use Force when
// cancellation matters.
func (c *Cell[T]) Val() T {
	val, _ := c.force(context.Background())
	return val
}

// Err returns the cell's failure, resolving it first if needed.
// See Val for the blocking behavior.
func (c *Cell[T]) Err() error {
	_, err := c.force(context.Background())
	return err
}

// State returns the cell's final state, resolving it first if needed.
// See Val for the blocking behavior.
func (c *Cell[T]) State() State {
	_, err := c.force(context.Background())
	return c.resState(err)
}

func (c *Cell[T]) resState(err error) State {
	if err == nil {
		return Fulfilled
	}
	if s := c.status.Load(); status.IsOutcomeFailed(s) && status.IsFlagsPanicked(s) {
		return Panicked
	}
	return Rejected
}
