// Copyright 2026 The yavom Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package split implements the recursive subdivision of an Area into a move
// list: find the middle snake, recurse into the prefix and suffix, and emit
// terminal Insert/Delete moves for degenerate (one-dimensional) areas.
package split

import (
	"github.com/movesq/yavom/internal/area"
	"github.com/movesq/yavom/internal/move"
	"github.com/movesq/yavom/internal/snake"
)

// Split appends the moves needed to transform ar's A-window into its
// B-window onto out, recursing through the middle snake as necessary.
//
// The order of the prefix/middle/suffix recursion determines move ordering,
// which in turn is what makes the tail-only merge rule in
// MoveList.AppendInsert/AppendDelete valid: an Insert or Delete terminal can
// only ever need to merge with the immediately preceding move.
func Split[T any](ar *area.Area[T], out *move.MoveList[T]) {
	n, m := ar.N(), ar.M()
	switch {
	case n == 0 && m == 0:
		// Trimmed to identity: nothing to emit.
	case n == 0:
		out.AppendInsert(ar.TL(), ar.BR())
	case m == 0:
		out.AppendDelete(ar.TL(), ar.BR())
	default:
		top, bottom := snake.Middle(ar)
		Split(area.NewSub(ar, ar.TL(), top), out)
		// The middle snake itself is a run of matches: it trims to an empty
		// area and contributes no moves, but recursing through it keeps the
		// three-way split uniform.
		Split(area.NewSub(ar, top, bottom), out)
		Split(area.NewSub(ar, bottom, ar.BR()), out)
	}
}
