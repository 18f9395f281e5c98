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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitions(t *testing.T) {
	t.Run("new is unresolved", func(t *testing.T) {
		s := New(0)
		require.True(t, IsOutcomeUnresolved(s.Load()))
		require.False(t, IsOutcomeResolved(s.Load()))
	})

	t.Run("new carries flags", func(t *testing.T) {
		s := New(FlagsIsFuture)
		require.True(t, IsFlagsFuture(s.Load()))
		require.True(t, IsOutcomeUnresolved(s.Load()))
	})

	t.Run("unresolved to running to fulfilled", func(t *testing.T) {
		s := New(0)

		set, st := s.SetRunning()
		require.True(t, set)
		require.True(t, IsOutcomeRunning(st))

		set, st = s.SetFulfilledResolved()
		require.True(t, set)
		require.True(t, IsOutcomeFulfilled(st))
		require.True(t, IsOutcomeResolved(st))
	})

	t.Run("failed keeps flags and categories", func(t *testing.T) {
		s := New(FlagsIsFuture)
		set, _ := s.SetRunning()
		require.True(t, set)

		set, st := s.SetFailedResolved(FlagsIsPanicked)
		require.True(t, set)
		require.True(t, IsOutcomeFailed(st))
		require.True(t, IsFlagsFuture(st))
		require.True(t, IsFlagsPanicked(st))
		require.False(t, IsFlagsDiverged(st))
	})

	t.Run("resolve requires running", func(t *testing.T) {
		s := New(0)
		set, st := s.SetFulfilledResolved()
		require.False(t, set)
		require.True(t, IsOutcomeUnresolved(st))
	})

	t.Run("resolved is permanent", func(t *testing.T) {
		s := New(0)
		s.SetRunning()
		s.SetFulfilledResolved()

		set, st := s.SetFailedResolved(FlagsIsDiverged)
		require.False(t, set)
		require.True(t, IsOutcomeFulfilled(st))

		set, _ = s.SetRunning()
		require.False(t, set)
	})

	t.Run("sync setters", func(t *testing.T) {
		s := New(FlagsIsFuture)
		st := s.SetRunningSync()
		require.True(t, IsOutcomeRunning(st))
		require.True(t, IsFlagsFuture(st))

		st = s.SetFailedResolvedSync(FlagsIsDiverged)
		require.True(t, IsOutcomeFailed(st))
		require.True(t, IsFlagsDiverged(st))
		require.True(t, IsFlagsFuture(st))
	})
}

func TestSetRunningOnce(t *testing.T) {
	const callsNum = 100

	s := New(0)
	wg := sync.WaitGroup{}
	wonChan := make(chan uint32, callsNum)

	wg.Add(callsNum)
	for i := 0; i < callsNum; i++ {
		go func() {
			defer wg.Done()
			if set, st := s.SetRunning(); set {
				wonChan <- st
			}
		}()
	}
	wg.Wait()
	close(wonChan)

	won := 0
	for st := range wonChan {
		won++
		require.True(t, IsOutcomeRunning(st))
	}
	require.Equal(t, 1, won)
}
