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

//go:build enable_lazy_debug

package lazy

import "go.uber.org/zap"

// debugLogger emits the cell events when the enable_lazy_debug build tag
// is set.
var debugLogger = zap.Must(zap.NewDevelopment()).Named("lazy")

func debug[T any](c *Cell[T], de ...debugEvent) {
	for _, e := range de {
		debugLogger.Debug("cell event",
			zap.Uint64("cell", c.id),
			zap.Stringer("event", e),
		)
	}
}
