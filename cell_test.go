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
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLaziness(t *testing.T) {
	ctx := context.Background()

	evals := 0
	cell := New(func() (int, error) {
		evals++
		return 3, nil
	})

	require.False(t, cell.Resolved())
	require.Equal(t, 0, evals)

	val, err := cell.Force(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, val)
	require.Equal(t, 1, evals)
	require.True(t, cell.Resolved())
	require.True(t, cell.Status().IsFulfilled())

	// repeated forcing returns the cached value, without re-evaluating
	val, err = cell.Force(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, val)
	require.Equal(t, 1, evals)
}

func TestForceOnce(t *testing.T) {
	const callsNum = 50

	var evals atomic.Int64
	cell := New(func() (int64, error) {
		time.Sleep(10 * time.Millisecond)
		evals.Add(1)
		return time.Now().UnixNano(), nil
	})

	vals := make([]int64, callsNum)
	wg := sync.WaitGroup{}
	wg.Add(callsNum)
	for i := 0; i < callsNum; i++ {
		go func(i int) {
			defer wg.Done()
			val, err := cell.Force(context.Background())
			require.NoError(t, err)
			vals[i] = val
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, 1, evals.Load())
	for i := 1; i < callsNum; i++ {
		// all callers must observe the winner's timestamp
		require.Equal(t, vals[0], vals[i])
	}
}

func TestDivergence(t *testing.T) {
	ctx := context.Background()

	t.Run("direct self-forcing", func(t *testing.T) {
		evals := 0
		cell := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			evals++
			_, err := self.Force(ctx)
			return Err[int](err)
		})

		_, err := cell.Force(ctx)
		var divErr *DivergenceError
		require.ErrorAs(t, err, &divErr)
		require.Equal(t, 1, evals)
		require.True(t, cell.Status().IsDiverged())

		// replaying a diverged cell doesn't re-run the computation
		_, err = cell.Force(ctx)
		require.ErrorAs(t, err, &divErr)
		require.Equal(t, 1, evals)
	})

	t.Run("indirect cycle", func(t *testing.T) {
		var a, b *Cell[int]
		a = NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			return b
		})
		b = NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			return a
		})

		_, err := a.Force(ctx)
		var divErr *DivergenceError
		require.ErrorAs(t, err, &divErr)
	})

	t.Run("detection doesn't resolve the cell by itself", func(t *testing.T) {
		cell := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			// a computation may probe its own result and fall back
			if _, err := self.Force(ctx); err != nil {
				return Val(42)
			}
			return Err[int](errors.New("unreachable"))
		})

		val, err := cell.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, 42, val)
		require.True(t, cell.Status().IsFulfilled())
	})

	t.Run("divergence is never re-wrapped", func(t *testing.T) {
		cell := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			_, err := self.Force(ctx)
			return Err[int](err)
		})

		_, err := cell.Force(ctx)
		require.Error(t, err)
		var evalErr *EvalError
		require.False(t, errors.As(err, &evalErr))
	})

	t.Run("storing self for later use is fine", func(t *testing.T) {
		var handle *Cell[int]
		cell := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			handle = self
			return Val(1)
		})

		val, err := cell.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, val)
		require.Same(t, cell, handle)

		// the stored handle is usable after the cell resolved
		val, err = handle.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, val)
	})
}

func TestFailureReplay(t *testing.T) {
	ctx := context.Background()
	base := errors.New("boom")

	evals := 0
	cell := New(func() (string, error) {
		evals++
		return "", base
	})

	_, err1 := cell.Force(ctx)
	require.ErrorContains(t, err1, "boom")
	require.ErrorIs(t, err1, base)
	require.True(t, cell.Status().IsFailed())

	_, err2 := cell.Force(ctx)
	require.ErrorIs(t, err2, base)

	// each call gets its own error instance, sharing the original cause
	var evalErr1, evalErr2 *EvalError
	require.ErrorAs(t, err1, &evalErr1)
	require.ErrorAs(t, err2, &evalErr2)
	require.NotSame(t, evalErr1, evalErr2)
	require.Same(t, base, evalErr1.Unwrap())
	require.Same(t, base, evalErr2.Unwrap())

	// a failed cell is never retried
	require.Equal(t, 1, evals)
}

func TestPanicCapture(t *testing.T) {
	ctx := context.Background()
	panicValue := "test_panic"

	evals := 0
	cell := New(func() (int, error) {
		evals++
		panic(panicValue)
	})

	_, err := cell.Force(ctx)
	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	require.Equal(t, panicValue, panicErr.V)
	require.True(t, cell.Status().IsPanicked())
	require.Equal(t, Panicked, cell.State())

	// a panicked cell replays like any failed cell
	_, err = cell.Force(ctx)
	require.ErrorAs(t, err, &panicErr)
	require.Equal(t, 1, evals)
}

func TestNestedResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("one level", func(t *testing.T) {
		inner := New(func() (int, error) { return 42, nil })
		outer := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			return inner
		})

		val, err := outer.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, 42, val)
		require.True(t, inner.Resolved())
	})

	t.Run("transitive", func(t *testing.T) {
		innermost := New(func() (string, error) { return "deep", nil })
		middle := NewRes(func(ctx context.Context, self *Cell[string]) Result[string] {
			return innermost
		})
		outer := NewRes(func(ctx context.Context, self *Cell[string]) Result[string] {
			return middle
		})

		val, err := outer.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, "deep", val)
	})

	t.Run("nested failure propagates once-wrapped", func(t *testing.T) {
		base := errors.New("inner_failure")
		inner := New(func() (int, error) { return 0, base })
		outer := NewRes(func(ctx context.Context, self *Cell[int]) Result[int] {
			return inner
		})

		_, err := outer.Force(ctx)
		require.ErrorIs(t, err, base)

		// the outer cell caches the original cause, not the inner
		// cell's wrapper, so the replay wraps exactly once
		var evalErr *EvalError
		require.ErrorAs(t, err, &evalErr)
		require.Same(t, base, evalErr.Unwrap())
	})
}

func TestAwaitCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	cell := New(func() (int, error) {
		close(started)
		<-release
		return 7, nil
	})

	winnerDone := make(chan struct{})
	go func() {
		defer close(winnerDone)
		val, err := cell.Force(context.Background())
		require.NoError(t, err)
		require.Equal(t, 7, val)
	}()

	// wait for the winner to own the evaluation, then give up waiting
	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cell.Force(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// the cancelled wait didn't disturb the cell
	require.False(t, cell.Resolved())
	close(release)
	<-winnerDone

	val, err := cell.Force(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, val)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("nil passes through", func(t *testing.T) {
		val, err := Resolve[int](ctx, nil)
		require.NoError(t, err)
		require.Zero(t, val)
	})

	t.Run("plain result passes through", func(t *testing.T) {
		val, err := Resolve(ctx, Val("v"))
		require.NoError(t, err)
		require.Equal(t, "v", val)

		base := errors.New("plain_error")
		_, err = Resolve(ctx, Err[string](base))
		// a plain result's error isn't wrapped; only cells replay
		require.Same(t, base, err)
	})

	t.Run("cell is forced", func(t *testing.T) {
		cell := New(func() (int, error) { return 9, nil })
		val, err := Resolve[int](ctx, cell)
		require.NoError(t, err)
		require.Equal(t, 9, val)
		require.True(t, cell.Resolved())
	})
}

func TestWrap(t *testing.T) {
	ctx := context.Background()

	t.Run("fulfilled", func(t *testing.T) {
		cell := Wrap(Val(5))
		require.True(t, cell.Resolved())
		val, err := cell.Force(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, val)
	})

	t.Run("failed", func(t *testing.T) {
		base := errors.New("wrapped_error")
		cell := Wrap(Err[int](base))
		require.True(t, cell.Status().IsFailed())
		_, err := cell.Force(ctx)
		require.ErrorIs(t, err, base)
		var evalErr *EvalError
		require.ErrorAs(t, err, &evalErr)
	})

	t.Run("nil result", func(t *testing.T) {
		cell := Wrap[int](nil)
		val, err := cell.Force(ctx)
		require.NoError(t, err)
		require.Zero(t, val)
	})

	t.Run("cell result is adopted synchronously", func(t *testing.T) {
		inner := New(func() (int, error) { return 11, nil })
		cell := Wrap[int](inner)
		require.True(t, inner.Resolved())
		require.True(t, cell.Resolved())
		require.Equal(t, 11, MustForce(ctx, cell))
	})
}

func TestResultView(t *testing.T) {
	ctx := context.Background()

	t.Run("blocking accessors", func(t *testing.T) {
		cell := New(func() (int, error) { return 3, nil })
		require.Equal(t, 3, cell.Val())
		require.NoError(t, cell.Err())
		require.Equal(t, Fulfilled, cell.State())
	})

	t.Run("rejected state", func(t *testing.T) {
		cell := New(func() (int, error) { return 0, errors.New("rejected_res") })
		require.Error(t, cell.Err())
		require.Equal(t, Rejected, cell.State())
	})

	t.Run("res snapshot", func(t *testing.T) {
		cell := New(func() (string, error) { return "snap", nil })
		res := cell.Res(ctx)
		require.Equal(t, "snap", res.Val())
		require.NoError(t, res.Err())
		require.Equal(t, Fulfilled, res.State())
	})
}

func TestNilComputation(t *testing.T) {
	require.PanicsWithValue(t, nilComputationPanicMsg, func() {
		New[int](nil)
	})
	require.PanicsWithValue(t, nilComputationPanicMsg, func() {
		NewRes[int](nil)
	})
}
