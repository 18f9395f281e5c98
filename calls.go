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

// calls.go: contains the functions that implement the exported constructors.
// they are extracted here since they are being reused.

package lazy

import (
	"context"

	"github.com/asmsh/lazy/internal/status"
)

func newCall[T any](comp Computation[T]) *Cell[T] {
	if comp == nil {
		panic(nilComputationPanicMsg)
	}
	return newCellInter(comp, 0)
}

func wrapCall[T any](res Result[T]) *Cell[T] {
	c := newCellSync[T]()
	c.resolveToResSync(res)
	return c
}

// resolveToResSync resolves the cell to res, synchronously, at
// construction time, before the cell is shared.
func (c *Cell[T]) resolveToResSync(res Result[T]) {
	if res == nil {
		res = emptyResult[T]{}
	}
	if inner, ok := res.(*Cell[T]); ok {
		val, err := inner.force(context.Background())
		if err != nil {
			res = errResult[T]{err: err}
		} else {
			res = valResult[T]{val: val}
		}
	}

	if err := res.Err(); err != nil {
		cause, flags := failureCause(err)
		c.cause = cause
		c.status.SetFailedResolvedSync(flags)
	} else {
		c.val = res.Val()
		c.status.SetFulfilledResolvedSync()
	}
}

func goCall[T any](sched Scheduler, comp Computation[T]) *Cell[T] {
	if comp == nil {
		panic(nilComputationPanicMsg)
	}
	if sched == nil {
		sched = defaultScheduler
	}

	c := newCellInter[T](nil, status.FlagsIsFuture)
	// the worker owns the evaluation from here on; no Force call can win
	// the election anymore.
	c.status.SetRunningSync()

	debug(c, spawnWorker)
	task := sched.Spawn(func() {
		c.eval(context.Background(), comp)
	})
	if task == nil {
		panic(badSchedulerPanicMsg)
	}
	c.task = task
	return c
}

// funcComputation adapts the plain function form of a computation to the
// full Computation form.
func funcComputation[T any](fn func() (T, error)) Computation[T] {
	if fn == nil {
		panic(nilComputationPanicMsg)
	}
	return func(_ context.Context, _ *Cell[T]) Result[T] {
		val, err := fn()
		if err != nil {
			return ValErr(val, err)
		}
		return Val(val)
	}
}
