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

package yavom

import (
	"github.com/movesq/yavom/internal/area"
	"github.com/movesq/yavom/internal/move"
	"github.com/movesq/yavom/internal/split"
)

// Point is a pair of absolute coordinates into the A×B edit graph: X indexes
// A, Y indexes B.
type Point = move.Point

// OpKind tags the shape of a Move.
type OpKind = move.OpKind

const (
	// Insert inserts Move.Payload at position Move.S.Y in the evolving A.
	Insert = move.Insert
	// Delete removes Move.T.X-Move.S.X elements starting at position
	// Move.S.Y in the evolving A.
	Delete = move.Delete
	// DeleteStripped is the compacted form of Delete produced by Strip:
	// Move.S.X holds the count, Move.S.Y holds the start.
	DeleteStripped = move.DeleteStripped
)

// Move is a single step of a move list.
type Move[T any] = move.Move[T]

// MoveList is an ordered sequence of moves whose in-order application to a
// working copy of A produces B.
type MoveList[T any] = move.MoveList[T]

// Diff compares a and b and returns the moves needed to convert a into b,
// with Insert payloads already attached. Equivalent to DiffUnfilled
// followed by Fill.
func Diff[T comparable](a, b []T) MoveList[T] {
	return DiffFunc(a, b, func(x, y T) bool { return x == y })
}

// DiffFunc is Diff for types without a natural comparable constraint, using
// eq to test elements for equality.
func DiffFunc[T any](a, b []T, eq func(x, y T) bool) MoveList[T] {
	moves := DiffUnfilledFunc(a, b, eq)
	move.Fill(b, moves)
	return moves
}

// DiffUnfilled compares a and b and returns the moves needed to convert a
// into b, without Insert payloads attached. Use Fill to attach them.
func DiffUnfilled[T comparable](a, b []T) MoveList[T] {
	return DiffUnfilledFunc(a, b, func(x, y T) bool { return x == y })
}

// DiffUnfilledFunc is DiffUnfilled for types without a natural comparable
// constraint, using eq to test elements for equality.
func DiffUnfilledFunc[T any](a, b []T, eq func(x, y T) bool) MoveList[T] {
	ar := area.New(a, b, eq)
	var moves MoveList[T]
	split.Split(ar, &moves)
	return moves
}

// Fill attaches payloads to every Insert move in moves by copying the
// corresponding range out of b.
func Fill[T any](b []T, moves MoveList[T]) {
	move.Fill(b, moves)
}

// Strip rewrites every Delete move in moves into a DeleteStripped move.
func Strip[T any](moves MoveList[T]) {
	move.Strip(moves)
}

// Apply mutates w, a working copy of a, according to every move in moves in
// order, and returns the result. w may be reallocated, so callers must use
// the returned slice.
func Apply[T any](moves MoveList[T], w []T) []T {
	return move.Apply(moves, w)
}
