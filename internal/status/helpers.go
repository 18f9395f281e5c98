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

func IsOutcomeUnresolved(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeUnresolved
}

func IsOutcomeRunning(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeRunning
}

func IsOutcomeFulfilled(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeFulfilled
}

func IsOutcomeFailed(status uint32) bool {
	return status&outcomeBitsSetMask == outcomeFailed
}

// IsOutcomeResolved returns true if the outcome is either Fulfilled or
// Failed, which are the two permanent outcomes.
func IsOutcomeResolved(status uint32) bool {
	return status&outcomeBitsSetMask >= outcomeFulfilled
}

func IsFlagsFuture(status uint32) bool {
	return status&FlagsIsFuture == FlagsIsFuture
}

func IsFlagsDiverged(status uint32) bool {
	return status&FlagsIsDiverged == FlagsIsDiverged
}

func IsFlagsPanicked(status uint32) bool {
	return status&FlagsIsPanicked == FlagsIsPanicked
}
