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

	"golang.org/x/sync/semaphore"
)

// Scheduler starts background work for future cells.
//
// Spawn must start run as soon as the scheduler's capacity allows, without
// waiting for anyone to await the returned handle, and must run it exactly
// once.
// The run func never panics; a conforming scheduler should still report a
// panic escaping its own infrastructure through the handle.
type Scheduler interface {
	Spawn(run func()) TaskHandle
}

// TaskHandle is the handle of one dispatched worker task.
type TaskHandle interface {
	// Done returns a channel that is closed when the task has finished,
	// successfully or not.
	Done() <-chan struct{}

	// Await blocks until the task finishes, then reports the task's
	// infrastructure failure, if any.
	// It's idempotent: repeated calls, from any number of goroutines,
	// return the same error.
	Await() error
}

// defaultScheduler runs each task on its own goroutine.
var defaultScheduler Scheduler = goScheduler{}

type goScheduler struct{}

func (goScheduler) Spawn(run func()) TaskHandle {
	h := &goTaskHandle{done: make(chan struct{})}
	go h.run(func() error {
		run()
		return nil
	})
	return h
}

// goTaskHandle is the TaskHandle of both the default scheduler and the
// bounded one, backed by a goroutine and a done channel.
type goTaskHandle struct {
	done chan struct{}

	// holds the task's infrastructure failure.
	// written by at most one goroutine, before the done channel is closed.
	err error
}

func (h *goTaskHandle) run(run func() error) {
	defer func() {
		if v := recover(); v != nil {
			h.err = &PanicError{V: v}
		}
		close(h.done)
	}()
	h.err = run()
}

func (h *goTaskHandle) Done() <-chan struct{} {
	return h.done
}

func (h *goTaskHandle) Await() error {
	<-h.done
	return h.err
}

// BoundedScheduler is a Scheduler that runs at most a fixed number of
// tasks concurrently.
// Tasks spawned beyond the capacity are held until a running task
// finishes; they still run exactly once, in no particular order.
type BoundedScheduler struct {
	sem *semaphore.Weighted
}

// NewBoundedScheduler creates a BoundedScheduler with the provided
// capacity, which must be positive.
func NewBoundedScheduler(capacity int64) *BoundedScheduler {
	if capacity < 1 {
		panic("lazy: the scheduler capacity must be positive")
	}
	return &BoundedScheduler{sem: semaphore.NewWeighted(capacity)}
}

func (s *BoundedScheduler) Spawn(run func()) TaskHandle {
	h := &goTaskHandle{done: make(chan struct{})}
	go h.run(func() error {
		if err := s.sem.Acquire(context.Background(), 1); err != nil {
			return err
		}
		defer s.sem.Release(1)
		run()
		return nil
	})
	return h
}
