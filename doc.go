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

// Package lazy provides a deferred-evaluation cell, a single-slot container
// for a not-yet-computed value, resolved at most once and cached forever.
//
// A Cell wraps a computation and defers running it until the first Force
// call. The computation runs exactly once, no matter how many goroutines
// force the cell concurrently; every caller observes the same single
// outcome, value or error.
//
// A Cell has three outcomes, and it can be in only one of them, at any time:
// Unresolved: the computation has not finished (or not started) yet.
// Resolved: the computation finished and its value is cached.
// Failed: the computation returned an error, let a divergence escape, or
// panicked; the failure cause is cached.
// Once a Cell is Resolved or Failed, its outcome never changes, and the
// computation is never re-run.
//
// A computation may return another Cell as its result. Forcing the outer
// cell resolves the inner one too, transitively, until a plain value (or a
// failure) is reached. This works because *Cell implements Result, so a
// cell can be returned wherever a Result is expected.
//
// A computation that forces its own cell, directly through the self handle
// it receives, or indirectly through a cycle of cells, diverges. Divergence
// is detected through evaluation tokens carried on the context passed to
// the computation, and reported as a *DivergenceError, immediately, without
// recursing, blocking, or deadlocking the cell's guard.
//
// Any other error or panic raised by a computation is captured and cached,
// and every later Force call on that cell returns a new *EvalError instance
// carrying the original cause.
//
//
// Futures:-
//
// * The Go, GoRes, GoWith, and GoResWith constructors create future cells,
// whose computation starts immediately on a background worker instead of
// waiting for the first Force call.
//
// * Forcing a future blocks the caller until the worker finishes, then
// adopts the worker's outcome through the same resolution machinery as an
// ordinary cell.
//
// * The worker abstraction is the Scheduler interface. The default
// scheduler runs each future on its own goroutine. Alternatives can be
// injected through GoWith and GoResWith; a capacity-bounded scheduler is
// provided by NewBoundedScheduler.
//
// * Forcing a future from inside its own computation is a divergence, and
// is detected before blocking, as blocking would deadlock the worker
// against itself.
//
//
// General Notes:-
//
// * The zero value of Cell is not usable; cells must be created through the
// constructors in this package.
//
// * Cells never contend with each other. Each cell carries its own guard,
// and resolution never touches another cell's state directly.
//
// * Forcing is ctx-aware only for waiting: cancelling the ctx unblocks the
// waiting caller with the ctx error, but never cancels, retries, or
// otherwise disturbs the in-flight computation.
package lazy
