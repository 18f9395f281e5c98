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
	"errors"
	"sync/atomic"

	"github.com/asmsh/lazy/internal/status"
)

// cellIDs generates the per-cell identity used by evaluation tokens.
var cellIDs atomic.Uint64

// newCellInter creates a new Cell which is resolved on first force, using
// an internal allocated channel.
func newCellInter[T any](comp Computation[T], flags uint32) *Cell[T] {
	return &Cell[T]{
		id:       cellIDs.Add(1),
		comp:     comp,
		syncChan: make(chan struct{}),
		status:   status.New(flags),
	}
}

// newCellSync creates a new Cell which is resolved synchronously, just
// after it's created.
func newCellSync[T any]() *Cell[T] {
	return &Cell[T]{
		id:       cellIDs.Add(1),
		syncChan: closedChan,
	}
}

func (c *Cell[T]) force(ctx context.Context) (T, error) {
	// the fast path: a resolved outcome is immutable, so it can be read
	// off the status word without the guard.
	s := c.status.Load()
	if status.IsOutcomeResolved(s) {
		return c.outcome(s)
	}

	// fail fast on re-entrant forcing, before any lock or wait.
	// this covers both an unresolved cell and one that's mid-evaluation.
	if underEvaluation(ctx, c.id) {
		debug(c, divergenceDetected)
		var zero T
		return zero, newDivergenceError(c.id)
	}

	// future cells are evaluated by their worker; adopt its outcome.
	// the task field is written before the constructor returns, so this
	// read needs no synchronization.
	if c.task != nil {
		return c.awaitTask(ctx)
	}

	c.mu.Lock()
	set, s := c.status.SetRunning()
	if !set {
		c.mu.Unlock()
		if status.IsOutcomeResolved(s) {
			return c.outcome(s)
		}
		// another caller won the election; wait for its outcome.
		return c.await(ctx)
	}

	// this call is the winner. swap the computation out of its slot, so
	// no path can ever reach it again.
	comp := c.comp
	c.comp = nil
	c.mu.Unlock()

	return c.eval(ctx, comp)
}

// eval runs the computation, exactly once per cell, on behalf of the
// winning Force call (or the future's worker), then resolves the cell to
// the computation's outcome.
func (c *Cell[T]) eval(ctx context.Context, comp Computation[T]) (T, error) {
	debug(c, startEval)

	evalCtx := withEvaluation(ctx, c.id)
	res := runComputation(evalCtx, c, comp)
	if res == nil {
		res = emptyResult[T]{}
	}

	// the computation may resolve to another cell. resolve it under the
	// same evaluation ctx, so it inherits the exactly-once, divergence,
	// and failure guarantees of this cell, transitively.
	if inner, ok := res.(*Cell[T]); ok {
		val, err := inner.force(evalCtx)
		if err != nil {
			res = errResult[T]{err: err}
		} else {
			res = valResult[T]{val: val}
		}
	}

	debug(c, endEval)
	if err := res.Err(); err != nil {
		return c.resolveToFailed(err)
	}
	return c.resolveToFulfilled(res.Val())
}

// runComputation invokes comp, converting a panic into a failure result.
func runComputation[T any](ctx context.Context, self *Cell[T], comp Computation[T]) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = errResult[T]{err: &PanicError{V: v}}
		}
	}()
	return comp(ctx, self)
}

// resolveToFulfilled stores the value and makes the Fulfilled outcome
// permanent, unblocking all waiting Force calls.
func (c *Cell[T]) resolveToFulfilled(val T) (T, error) {
	c.mu.Lock()
	if s := c.status.Load(); status.IsOutcomeResolved(s) {
		c.mu.Unlock()
		return c.outcome(s)
	}
	c.val = val
	c.status.SetFulfilledResolved()
	close(c.syncChan)
	c.mu.Unlock()

	debug(c, resolveFulfilled)
	return val, nil
}

// resolveToFailed stores the failure cause and makes the Failed outcome
// permanent, unblocking all waiting Force calls.
func (c *Cell[T]) resolveToFailed(err error) (T, error) {
	cause, flags := failureCause(err)

	c.mu.Lock()
	if s := c.status.Load(); status.IsOutcomeResolved(s) {
		c.mu.Unlock()
		return c.outcome(s)
	}
	c.cause = cause
	c.status.SetFailedResolved(flags)
	close(c.syncChan)
	c.mu.Unlock()

	debug(c, resolveFailed)
	return c.outcome(c.status.Load())
}

// failureCause normalizes the error raised during evaluation into the
// cause cached on the cell, plus the failure flags describing it.
func failureCause(err error) (cause error, flags uint32) {
	// a divergence is its own category; it passes through un-wrapped.
	var divErr *DivergenceError
	if errors.As(err, &divErr) {
		return divErr, status.FlagsIsDiverged
	}

	// never cache an EvalError wrapper, only its cause, so each replay
	// wraps the original exactly once.
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		err = evalErr.Unwrap()
	}

	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return err, status.FlagsIsPanicked
	}
	return err, 0
}

// outcome returns the cached outcome advertised by the passed status
// value, which must be a resolved one.
func (c *Cell[T]) outcome(s uint32) (T, error) {
	if status.IsOutcomeFulfilled(s) {
		return c.val, nil
	}

	var zero T
	if status.IsFlagsDiverged(s) {
		return zero, c.cause
	}

	// replay with a fresh instance, so each call site gets its own error
	// value, while the cause stays shared.
	return zero, newEvalError(c.cause)
}

// await blocks until the in-flight evaluation resolves the cell, or until
// ctx is done, whichever happens first.
func (c *Cell[T]) await(ctx context.Context) (T, error) {
	debug(c, startAwait)
	select {
	case <-c.syncChan:
	default:
		select {
		case <-c.syncChan:
		case <-ctx.Done():
			debug(c, endAwait)
			var zero T
			return zero, ctx.Err()
		}
	}
	debug(c, endAwait)
	return c.outcome(c.status.Load())
}
