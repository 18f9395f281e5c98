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

	"github.com/asmsh/lazy/internal/status"
)

// awaitTask blocks until the future's worker finishes, or until ctx is
// done, then adopts the worker's outcome.
//
// The worker resolves the cell itself through the usual evaluation path;
// this only has to handle the case of the task infrastructure failing
// before the evaluation could resolve the cell, which is adopted as an
// ordinary computation failure.
func (c *Cell[T]) awaitTask(ctx context.Context) (T, error) {
	debug(c, startAwaitTask)
	select {
	case <-c.task.Done():
	default:
		select {
		case <-c.task.Done():
		case <-ctx.Done():
			debug(c, endAwaitTask)
			var zero T
			return zero, ctx.Err()
		}
	}
	debug(c, endAwaitTask)

	if err := c.task.Await(); err != nil {
		// the resolve below is a no-op if the worker got to resolve the
		// cell before its infrastructure failed.
		debug(c, adoptTaskFailure)
		return c.resolveToFailed(err)
	}

	if s := c.status.Load(); status.IsOutcomeResolved(s) {
		return c.outcome(s)
	}

	// the task handle signaled completion before the evaluation finished
	// resolving the cell; wait for the resolution itself.
	return c.await(ctx)
}
