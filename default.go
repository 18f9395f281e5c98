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

import "context"

// New returns a deferred cell that will produce its value by calling fn.
//
// The fn is not called here; it's called by the first Force call on the
// returned cell, at most once, and its outcome is cached forever.
//
// It will panic if a nil function is passed.
func New[T any](fn func() (T, error)) *Cell[T] {
	return newCall(funcComputation(fn))
}

// NewRes returns a deferred cell that will produce its value by calling
// comp, the full Computation form, which receives the evaluation ctx and
// the cell itself as the self-reference hook.
//
// The comp is not called here; it's called by the first Force call on the
// returned cell, at most once, and its outcome is cached forever.
//
// The comp may return another cell as its Result; forcing the returned
// cell will then resolve that cell too, transitively, until a plain value
// or a failure is reached.
//
// It will panic if a nil computation is passed.
func NewRes[T any](comp Computation[T]) *Cell[T] {
	return newCall(comp)
}

// Wrap returns a cell that's resolved, synchronously, to the provided
// Result value, res.
//
// The returned cell is resolved to Failed, or Fulfilled, depending on
// whether res holds a non-nil error, or not, respectively.
// A nil res resolves the cell to the zero value of T.
// If res is itself a cell, it's forced here, synchronously, and its
// outcome is adopted.
//
// The provided res value shouldn't be modified after this call.
func Wrap[T any](res Result[T]) *Cell[T] {
	return wrapCall(res)
}

// Resolve returns the value of res, resolving it first if it's a cell.
//
// A nil res passes through unchanged, as the zero value of T with a nil
// error; it's never treated as a cell.
// A plain (non-cell) res passes through unchanged, as its value and error.
// A cell is forced with the passed ctx, per the Force semantics.
func Resolve[T any](ctx context.Context, res Result[T]) (T, error) {
	if res == nil {
		var zero T
		return zero, nil
	}
	if c, ok := res.(*Cell[T]); ok {
		return c.Force(ctx)
	}
	return res.Val(), res.Err()
}

// Go returns a future cell: its fn starts running immediately on the
// default scheduler, one goroutine per future, instead of waiting for the
// first Force call.
//
// Forcing the returned cell blocks until the worker finishes, then adopts
// its outcome, following the same exactly-once and failure-replay
// semantics as an ordinary cell.
//
// It will panic if a nil function is passed.
func Go[T any](fn func() (T, error)) *Cell[T] {
	return goCall(defaultScheduler, funcComputation(fn))
}

// GoRes is the full Computation form of Go.
//
// Forcing the returned cell from inside comp (through the evaluation ctx
// it receives) is a divergence, and is reported before blocking, as
// blocking would deadlock the worker against itself.
//
// It will panic if a nil computation is passed.
func GoRes[T any](comp Computation[T]) *Cell[T] {
	return goCall(defaultScheduler, comp)
}

// GoWith is like Go, with the future's computation dispatched on the
// provided scheduler instead of the default one.
// A nil scheduler falls back to the default one.
func GoWith[T any](sched Scheduler, fn func() (T, error)) *Cell[T] {
	return goCall(sched, funcComputation(fn))
}

// GoResWith is like GoRes, with the future's computation dispatched on the
// provided scheduler instead of the default one.
// A nil scheduler falls back to the default one.
func GoResWith[T any](sched Scheduler, comp Computation[T]) *Cell[T] {
	return goCall(sched, comp)
}
