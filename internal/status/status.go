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

package status

import (
	"sync/atomic"
)

var (
	cas   = atomic.CompareAndSwapUint32
	load  = atomic.LoadUint32
	store = atomic.StoreUint32
)

// CellStatus holds the value that defines and represents the outcome of the
// cell, and the flags describing its behavior.
// It's read and written/updated atomically.
type CellStatus uint32

// the outcome's related values and constants, using 2 bits(the [1st : 2nd] bits)
const (
	// outcome modes, using 2 bits
	outcomeUnresolved uint32 = iota
	outcomeRunning
	outcomeFulfilled
	outcomeFailed

	// outcomeBitsSetMask is &-ed with the status to get the outcome value.
	outcomeBitsSetMask = outcomeFailed
)

// the flags' related values and constants, using 6 bits(the [3rd : 8th] bits)
const (
	// starting with a shift amount of 2, which is the number of bits used by
	// the outcome section.

	// cell types...
	FlagsIsFuture uint32 = 1 << (iota + 2)
	_                    = 1 << (iota + 2) // reserved

	// failure categories...
	FlagsIsDiverged uint32 = 1 << (iota + 2)
	FlagsIsPanicked uint32 = 1 << (iota + 2)
	_                      = 1 << (iota + 2) // reserved
	_                      = 1 << (iota + 2) // reserved

	// 63 = 11_1111 (the 6 flags above)
	flagsBitsSetMask uint32 = 63 << 2
)

// New creates a new CellStatus carrying the passed flags, with the
// Unresolved outcome.
func New(flags uint32) CellStatus {
	return CellStatus(flags & flagsBitsSetMask)
}

// Load returns the current status value.
func (s *CellStatus) Load() uint32 {
	return load((*uint32)(s))
}

// SetRunning transitions the outcome from Unresolved to Running.
// It returns true only if this call did the transition, so at most one
// call per cell ever wins it.
func (s *CellStatus) SetRunning() (set bool, status uint32) {
	for {
		status = s.Load()
		if status&outcomeBitsSetMask != outcomeUnresolved {
			return false, status
		}
		newStatus := status&flagsBitsSetMask | outcomeRunning
		if cas((*uint32)(s), status, newStatus) {
			return true, newStatus
		}
	}
}

// SetFulfilledResolved transitions the outcome from Running to Fulfilled.
// It returns true only if this call did the transition.
// The cell's result value must be stored before this call, as a Fulfilled
// outcome advertises it to lock-free readers.
func (s *CellStatus) SetFulfilledResolved() (set bool, status uint32) {
	return s.resolveTo(outcomeFulfilled, 0)
}

// SetFailedResolved transitions the outcome from Running to Failed, adding
// the passed failure flags (FlagsIsDiverged and/or FlagsIsPanicked).
// It returns true only if this call did the transition.
// The cell's failure cause must be stored before this call.
func (s *CellStatus) SetFailedResolved(flags uint32) (set bool, status uint32) {
	return s.resolveTo(outcomeFailed, flags&flagsBitsSetMask)
}

func (s *CellStatus) resolveTo(outcome uint32, flags uint32) (set bool, status uint32) {
	for {
		status = s.Load()
		if status&outcomeBitsSetMask != outcomeRunning {
			return false, status
		}
		newStatus := status&flagsBitsSetMask | flags | outcome
		if cas((*uint32)(s), status, newStatus) {
			return true, newStatus
		}
	}
}

// SetFulfilledResolvedSync sets the outcome to Fulfilled without any
// synchronization.
// It must be used only at construction time, before the cell is shared.
func (s *CellStatus) SetFulfilledResolvedSync() (status uint32) {
	status = s.Load()&flagsBitsSetMask | outcomeFulfilled
	store((*uint32)(s), status)
	return status
}

// SetFailedResolvedSync sets the outcome to Failed without any
// synchronization, adding the passed failure flags.
// It must be used only at construction time, before the cell is shared.
func (s *CellStatus) SetFailedResolvedSync(flags uint32) (status uint32) {
	status = s.Load()&flagsBitsSetMask | flags&flagsBitsSetMask | outcomeFailed
	store((*uint32)(s), status)
	return status
}

// SetRunningSync sets the outcome to Running without any synchronization.
// It must be used only at construction time, before the cell is shared.
// It's used for future cells, whose computation is dispatched to a worker
// before the constructor returns.
func (s *CellStatus) SetRunningSync() (status uint32) {
	status = s.Load()&flagsBitsSetMask | outcomeRunning
	store((*uint32)(s), status)
	return status
}
