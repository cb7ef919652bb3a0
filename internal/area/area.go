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

// Package area provides a zero-copy, trimmed window over two sequences A
// and B, addressed in absolute coordinates of the A×B edit graph. It is the
// foundation the middle-snake search and the recursive splitter are built
// on: both operate exclusively through an *Area, never touching A or B
// directly.
package area

import (
	"fmt"

	"github.com/movesq/yavom/internal/move"
)

// Area is a rectangular sub-region of the edit graph, delimited by a
// top-left point TL and a bottom-right point BR, together with shared
// read-only handles to A and B. An Area never owns the elements of A or B;
// it only borrows them.
//
// After trimming, neither the leading pair (A[TL.X], B[TL.Y]) nor the
// trailing pair (A[BR.X-1], B[BR.Y-1]) match under eq; TL and BR are
// advanced inward until that is false or the region collapses along one
// dimension. This invariant is what makes the diagonal indexing in the
// middle-snake search correct.
type Area[T any] struct {
	a, b []T
	eq   func(T, T) bool

	tl, br move.Point
	n, m   int64 // cached dimensions, valid after trim
}

// New returns an Area covering the whole of a and b, trimmed.
func New[T any](a, b []T, eq func(x, y T) bool) *Area[T] {
	ar := &Area[T]{
		a:  a,
		b:  b,
		eq: eq,
		tl: move.Point{X: 0, Y: 0},
		br: move.Point{X: int64(len(a)), Y: int64(len(b))},
	}
	ar.trim()
	return ar
}

// NewSub returns an Area sharing base's A and B handles, restricted to [tl,
// br), trimmed. tl and br must lie within base and tl must precede or equal
// br component-wise.
func NewSub[T any](base *Area[T], tl, br move.Point) *Area[T] {
	if tl.X < 0 || tl.Y < 0 || tl.X > br.X || tl.Y > br.Y {
		panic(fmt.Sprintf("yavom: area: invalid sub-area bounds tl=%v br=%v", tl, br))
	}
	if !base.ContainsAbs(tl) || !base.ContainsAbs(br) {
		panic(fmt.Sprintf("yavom: area: sub-area bounds tl=%v br=%v outside base [%v, %v]", tl, br, base.tl, base.br))
	}
	ar := &Area[T]{
		a:  base.a,
		b:  base.b,
		eq: base.eq,
		tl: tl,
		br: br,
	}
	ar.trim()
	return ar
}

func (ar *Area[T]) trim() {
	for ar.tl.X < ar.br.X && ar.tl.Y < ar.br.Y && ar.eq(ar.a[ar.tl.X], ar.b[ar.tl.Y]) {
		ar.tl.X++
		ar.tl.Y++
	}
	for ar.br.X > ar.tl.X && ar.br.Y > ar.tl.Y && ar.eq(ar.a[ar.br.X-1], ar.b[ar.br.Y-1]) {
		ar.br.X--
		ar.br.Y--
	}
	ar.n = ar.br.X - ar.tl.X
	ar.m = ar.br.Y - ar.tl.Y
}

// N is the trimmed width of the area: the number of elements of A in it.
func (ar *Area[T]) N() int64 { return ar.n }

// M is the trimmed height of the area: the number of elements of B in it.
func (ar *Area[T]) M() int64 { return ar.m }

// TL is the top-left corner, in absolute coordinates.
func (ar *Area[T]) TL() move.Point { return ar.tl }

// BR is the bottom-right corner, in absolute coordinates.
func (ar *Area[T]) BR() move.Point { return ar.br }

// AAt returns A[TL.X+i], forward access relative to the top-left corner.
func (ar *Area[T]) AAt(i int64) T { return ar.a[ar.tl.X+i] }

// BAt returns B[TL.Y+i], forward access relative to the top-left corner.
func (ar *Area[T]) BAt(i int64) T { return ar.b[ar.tl.Y+i] }

// RAAt returns A[BR.X-1-i], reverse access relative to the bottom-right
// corner, used by the backward frontier.
func (ar *Area[T]) RAAt(i int64) T { return ar.a[ar.br.X-1-i] }

// RBAt returns B[BR.Y-1-i], reverse access relative to the bottom-right
// corner, used by the backward frontier.
func (ar *Area[T]) RBAt(i int64) T { return ar.b[ar.br.Y-1-i] }

// Eq reports whether x and y are equal under the area's equality function.
func (ar *Area[T]) Eq(x, y T) bool { return ar.eq(x, y) }

// AbsPoint translates a point (rx, ry) relative to the top-left corner into
// absolute coordinates.
func (ar *Area[T]) AbsPoint(rx, ry int64) move.Point {
	return move.Point{X: ar.tl.X + rx, Y: ar.tl.Y + ry}
}

// AbsPointR translates a point (rx, ry) discovered on the reversed
// (backward) frontier into absolute coordinates.
func (ar *Area[T]) AbsPointR(rx, ry int64) move.Point {
	return move.Point{X: ar.tl.X + ar.n - rx, Y: ar.tl.Y + ar.m - ry}
}

// RDiagonal maps a forward diagonal index k to the backward diagonal index
// that shares the same endpoint straight-line.
func (ar *Area[T]) RDiagonal(k int64) int64 {
	return -k + ar.n - ar.m
}

// ContainsAbs reports whether p lies in the closed rectangle [TL, BR].
func (ar *Area[T]) ContainsAbs(p move.Point) bool {
	return p.X >= ar.tl.X && p.X <= ar.br.X && p.Y >= ar.tl.Y && p.Y <= ar.br.Y
}
