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

package move

import (
	"fmt"
	"slices"
)

// Fill attaches payloads to every Insert move in moves by copying the
// corresponding range out of b. Delete and DeleteStripped moves are
// untouched.
//
// Splitting is O(N+M+D*min(N,M)) and only touches equality and indices;
// payload copying is O(total inserted length) and only needed if the move
// list is to be applied or serialized. Callers that only want a distance or
// an edit-script summary can skip Fill.
func Fill[T any](b []T, moves MoveList[T]) {
	for i := range moves {
		m := &moves[i]
		if m.Op != Insert {
			continue
		}
		count := m.T.Y - m.S.Y
		payload := make([]T, count)
		copy(payload, b[m.S.Y:m.S.Y+count])
		m.Payload = payload
	}
}

// Strip rewrites every Delete move into a DeleteStripped move, compacting
// the representation and making the applier independent of the A-coordinate
// entirely. Insert and already-stripped moves are untouched.
func Strip[T any](moves MoveList[T]) {
	for i := range moves {
		m := &moves[i]
		if m.Op != Delete {
			continue
		}
		count := m.T.X - m.S.X
		m.S = Point{X: count, Y: m.S.Y}
		m.T = Point{}
		m.Op = DeleteStripped
	}
}

// Apply mutates a working vector — a copy of A — according to each move in
// order and returns the result, which equals B once every move has been
// applied. w may be reallocated (insertion/deletion can grow or shrink the
// backing array), so callers must use the returned slice.
//
// Applying an Insert move with a non-empty range (T.Y > S.Y) whose Payload
// is absent, or a Delete/
// DeleteStripped move whose range exceeds len(w), is a precondition
// violation and panics.
func Apply[T any](moves MoveList[T], w []T) []T {
	for _, m := range moves {
		switch m.Op {
		case Insert:
			if m.Payload == nil && m.T.Y != m.S.Y {
				panic("yavom: apply: insert move has no payload; call Fill before Apply")
			}
			pos := m.S.Y
			if pos < 0 || pos > int64(len(w)) {
				panic(fmt.Sprintf("yavom: apply: insert position %d out of range [0, %d]", pos, len(w)))
			}
			w = slices.Insert(w, int(pos), m.Payload...)
		case Delete:
			count := m.T.X - m.S.X
			pos := m.S.Y
			if count < 0 || pos < 0 || pos+count > int64(len(w)) {
				panic(fmt.Sprintf("yavom: apply: delete range [%d, %d) out of range [0, %d]", pos, pos+count, len(w)))
			}
			w = slices.Delete(w, int(pos), int(pos+count))
		case DeleteStripped:
			count, pos := m.S.X, m.S.Y
			if count < 0 || pos < 0 || pos+count > int64(len(w)) {
				panic(fmt.Sprintf("yavom: apply: delete range [%d, %d) out of range [0, %d]", pos, pos+count, len(w)))
			}
			w = slices.Delete(w, int(pos), int(pos+count))
		default:
			panic(fmt.Sprintf("yavom: apply: unknown op kind %v", m.Op))
		}
	}
	return w
}
