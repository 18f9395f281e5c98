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

var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}

// evalCtxKey is the ctx key carrying one cell's evaluation token.
// A distinct key value exists per cell, so the tokens of nested
// evaluations chain through the ctx without touching each other.
type evalCtxKey struct{ cellID uint64 }

// withEvaluation marks ctx as running the computation of the cell with the
// passed id.
// The returned ctx is the one handed to that computation, so any forcing
// the computation does, directly or through nested cells, carries the token.
func withEvaluation(ctx context.Context, cellID uint64) context.Context {
	return context.WithValue(ctx, evalCtxKey{cellID: cellID}, cellID)
}

// underEvaluation reports whether ctx belongs to the dynamic extent of the
// computation of the cell with the passed id.
// A Force call on such a cell is re-entrant: the cell's result is needed
// to produce itself, which is a divergence.
func underEvaluation(ctx context.Context, cellID uint64) bool {
	return ctx.Value(evalCtxKey{cellID: cellID}) != nil
}
