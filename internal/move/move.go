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

// Package move contains the move-list representation produced by the
// splitter and the post-processing and application passes that operate on
// it. It is the internal representation that's used by the area/snake/split
// packages and is then re-exported (via type aliases) by the top-level
// package to present a clean public API.
package move

import "fmt"

// Point is a pair of absolute coordinates into the A×B edit graph. X indexes
// A, Y indexes B.
type Point struct {
	X, Y int64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// OpKind tags the three shapes a Move can take.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=OpKind
type OpKind int

const (
	// Insert inserts the payload from B[S.Y..T.Y) at position S.Y in the
	// evolving A.
	Insert OpKind = iota
	// Delete removes A[S.Y..S.Y+(T.X-S.X)) from the evolving A. The live
	// index is S.Y, not S.X: by the time a Delete is applied, the moves
	// before it have already brought the working copy into B's coordinates
	// up to this point.
	Delete
	// DeleteStripped is the compacted form of Delete: S.X holds the count,
	// S.Y holds the start, T is unused.
	DeleteStripped
)

// Move is one step of a move list: either a positional insert or a
// positional delete against the evolving A.
//
//   - Insert, before Fill: Payload is nil; T.Y-S.Y is the number of elements
//     to materialize from B[S.Y:T.Y).
//   - Insert, after Fill: len(Payload) == T.Y-S.Y.
//   - Delete: T.X-S.X > 0, T.Y-S.Y == 0.
//   - DeleteStripped: S.X holds the count, S.Y holds the start; T is unread.
type Move[T any] struct {
	Op      OpKind
	S, T    Point
	Payload []T
}

// MoveList is an ordered sequence of moves whose in-order application to a
// working copy of A produces B.
type MoveList[T any] []Move[T]

// AppendInsert appends an Insert move spanning [tl, br), merging with the
// previous move if it is an Insert whose T equals tl.
func (l *MoveList[T]) AppendInsert(tl, br Point) {
	if n := len(*l); n > 0 {
		last := &(*l)[n-1]
		if last.Op == Insert && last.T == tl {
			last.T = br
			return
		}
	}
	*l = append(*l, Move[T]{Op: Insert, S: tl, T: br})
}

// AppendDelete appends a Delete move spanning [tl, br), merging with the
// previous move if it is a Delete whose T equals tl.
func (l *MoveList[T]) AppendDelete(tl, br Point) {
	if n := len(*l); n > 0 {
		last := &(*l)[n-1]
		if last.Op == Delete && last.T == tl {
			last.T = br
			return
		}
	}
	*l = append(*l, Move[T]{Op: Delete, S: tl, T: br})
}
