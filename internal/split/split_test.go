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

package split

import (
	"strings"
	"testing"

	"github.com/movesq/yavom/internal/area"
	"github.com/movesq/yavom/internal/move"
)

func eqString(a, b string) bool { return a == b }

func apply(moves move.MoveList[string], b []string, a []string) []string {
	move.Fill(b, moves)
	w := append([]string(nil), a...)
	return move.Apply(moves, w)
}

func TestSplitRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
	}{
		{"identical", []string{"foo", "bar", "baz"}, []string{"foo", "bar", "baz"}},
		{"empty-both", nil, nil},
		{"x-empty", nil, []string{"foo", "bar", "baz"}},
		{"y-empty", []string{"foo", "bar", "baz"}, nil},
		{"ABCABBA_to_CBABAC", strings.Split("ABCABBA", ""), strings.Split("CBABAC", "")},
		{"same-prefix", []string{"foo", "bar"}, []string{"foo", "baz"}},
		{"same-suffix", []string{"foo", "bar"}, []string{"loo", "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := area.New(tt.x, tt.y, eqString)
			var moves move.MoveList[string]
			Split(ar, &moves)

			got := apply(moves, tt.y, tt.x)
			if got == nil {
				got = []string{}
			}
			want := tt.y
			if want == nil {
				want = []string{}
			}
			if len(got) != len(want) {
				t.Fatalf("round-trip mismatch: got %v, want %v", got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("round-trip mismatch at %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestSplitIdenticalEmitsNothing(t *testing.T) {
	x := []string{"a", "b", "c"}
	ar := area.New(x, x, eqString)
	var moves move.MoveList[string]
	Split(ar, &moves)
	if len(moves) != 0 {
		t.Errorf("Split(identical) produced %d moves, want 0", len(moves))
	}
}

func TestSplitEmptySourceEmitsOneInsert(t *testing.T) {
	y := []string{"x", "y", "z"}
	ar := area.New(nil, y, eqString)
	var moves move.MoveList[string]
	Split(ar, &moves)
	if len(moves) != 1 || moves[0].Op != move.Insert {
		t.Fatalf("Split([], y) = %+v, want a single Insert", moves)
	}
	if moves[0].S != (move.Point{X: 0, Y: 0}) || moves[0].T != (move.Point{X: 0, Y: 3}) {
		t.Errorf("Split([], y) endpoints = %v..%v, want (0,0)..(0,3)", moves[0].S, moves[0].T)
	}
}

func TestSplitEmptyTargetEmitsOneDelete(t *testing.T) {
	x := []string{"x", "y", "z"}
	ar := area.New(x, nil, eqString)
	var moves move.MoveList[string]
	Split(ar, &moves)
	if len(moves) != 1 || moves[0].Op != move.Delete {
		t.Fatalf("Split(x, []) = %+v, want a single Delete", moves)
	}
	if moves[0].S != (move.Point{X: 0, Y: 0}) || moves[0].T != (move.Point{X: 3, Y: 0}) {
		t.Errorf("Split(x, []) endpoints = %v..%v, want (0,0)..(3,0)", moves[0].S, moves[0].T)
	}
}

func TestSplitNoConsecutiveUnmergedRuns(t *testing.T) {
	x := strings.Split("AWESOMO", "")
	y := strings.Split("STRANGESOMO", "")
	ar := area.New(x, y, eqString)
	var moves move.MoveList[string]
	Split(ar, &moves)

	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		if prev.Op == move.Insert && cur.Op == move.Insert && prev.T == cur.S {
			t.Fatalf("consecutive Insert moves %+v and %+v should have been merged", prev, cur)
		}
		if prev.Op == move.Delete && cur.Op == move.Delete && prev.T == cur.S {
			t.Fatalf("consecutive Delete moves %+v and %+v should have been merged", prev, cur)
		}
	}
}
