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

type debugEvent int

const (
	_ debugEvent = iota

	startEval
	endEval
	resolveFulfilled
	resolveFailed
	divergenceDetected

	startAwait
	endAwait

	spawnWorker
	startAwaitTask
	endAwaitTask
	adoptTaskFailure
)

func (de debugEvent) String() string {
	switch de {
	case startEval:
		return "startEval"
	case endEval:
		return "endEval"
	case resolveFulfilled:
		return "resolveFulfilled"
	case resolveFailed:
		return "resolveFailed"
	case divergenceDetected:
		return "divergenceDetected"
	case startAwait:
		return "startAwait"
	case endAwait:
		return "endAwait"
	case spawnWorker:
		return "spawnWorker"
	case startAwaitTask:
		return "startAwaitTask"
	case endAwaitTask:
		return "endAwaitTask"
	case adoptTaskFailure:
		return "adoptTaskFailure"
	default:
		return "<unknown>"
	}
}
