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

import "context"

// MustForce calls Force on the provided cell, and returns its value, only
// if it resolved successfully, otherwise, it panics with the Force error.
//
// By name convention, the function will return the value successfully, or
// a panic will happen.
// It should be used on cells which are known to never fail.
func MustForce[T any](ctx context.Context, c *Cell[T]) T {
	val, err := c.Force(ctx)
	if err != nil {
		panic(err)
	}
	return val
}

// ForceAll forces all the provided cells, in order, and returns their
// values, or the first error encountered.
//
// On error, the remaining cells are left untouched: deferred ones stay
// unevaluated, future ones keep running on their workers.
func ForceAll[T any](ctx context.Context, cells ...*Cell[T]) ([]T, error) {
	n := len(cells)
	if n == 0 {
		return nil, nil
	}

	vals := make([]T, n)
	for i, c := range cells {
		val, err := c.Force(ctx)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}
