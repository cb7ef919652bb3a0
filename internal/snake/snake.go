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

// Package snake implements the linear-space "middle snake" search at the
// heart of Myers' O(ND) diff algorithm.
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica
// 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Esko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and
// Control, Volume 64, Issues 1-3, 100-118 (1985).
// https://doi.org/10.1016/S0019-9958(85)80046-2
//
// Middle extends two frontiers — one walking forward from the area's
// top-left corner, one walking backward from its bottom-right corner — one
// edit distance d at a time, until they cross. The point where they cross
// identifies the middle snake: a maximal run of diagonal (matching) steps
// that some optimal edit script is guaranteed to pass through. Splitting the
// area at the middle snake and recursing on the prefix and suffix halves
// yields an optimal script using only O(N+M) working memory, instead of the
// O(ND) a tabulated dynamic-program would need.
package snake

import (
	"fmt"

	"github.com/movesq/yavom/internal/area"
	"github.com/movesq/yavom/internal/move"
)

// Middle finds the middle snake of ar and returns its endpoints (top,
// bottom) in absolute coordinates. bottom-top is a, possibly empty, run
// along a diagonal where A and B agree.
//
// ar must have N() >= 1 and M() >= 1; the splitter never calls Middle
// otherwise.
func Middle[T any](ar *area.Area[T]) (top, bottom move.Point) {
	n, m := ar.N(), ar.M()
	if n < 1 || m < 1 {
		panic(fmt.Sprintf("yavom: snake: Middle called on a degenerate area n=%d m=%d; this is a programmer error in the splitter", n, m))
	}
	maxD := n + m

	// v-arrays: vf[tk(k)] and vb[tk(k)] hold the furthest-reaching
	// x-coordinate of a d-path on diagonal k for the forward and backward
	// frontier respectively. tk translates a (possibly negative) diagonal
	// index into a non-negative buffer index.
	vf := make([]int64, 2*maxD+1)
	vb := make([]int64, 2*maxD+1)
	tk := func(k int64) int64 { return k + maxD }
	// reached reports whether diagonal k is in the valid range at distance
	// d; slots of diagonals outside it may not have been written yet.
	reached := func(k, d int64) bool {
		lo, hi := -d+max(0, d-m)*2, d-max(0, d-n)*2
		return k >= lo && k <= hi && (k-lo)%2 == 0
	}

	for d := int64(0); d <= maxD; d++ {
		kmin := -d + max(0, d-m)*2
		kmax := d - max(0, d-n)*2

		atDest := false

		// Forward step.
		for k := kmin; k <= kmax; k += 2 {
			var x int64
			if k == -d || (k != d && vf[tk(k-1)] < vf[tk(k+1)]) {
				x = vf[tk(k+1)]
			} else {
				x = vf[tk(k-1)] + 1
			}
			y := x - k
			x0 := x // start of the snake on diagonal k

			for x < n && y < m && ar.Eq(ar.AAt(x), ar.BAt(y)) {
				x++
				y++
			}
			vf[tk(k)] = x

			if d > 0 {
				rk := ar.RDiagonal(k)
				if reached(rk, d-1) && x >= n-vb[tk(rk)] {
					top := ar.AbsPoint(x0, x0-k)
					if ar.ContainsAbs(top) {
						bottom := ar.AbsPoint(x, y)
						if ar.ContainsAbs(bottom) {
							return top, bottom
						}
					}
				}
			}

			if x >= n && y >= m {
				atDest = true
				break
			}
		}

		// Backward step, symmetric to the forward step but walking the
		// reversed sequences via RAAt/RBAt.
		for k := kmin; k <= kmax; k += 2 {
			var x int64
			if k == -d || (k != d && vb[tk(k-1)] < vb[tk(k+1)]) {
				x = vb[tk(k+1)]
			} else {
				x = vb[tk(k-1)] + 1
			}
			y := x - k
			x0 := x // start of the snake on reversed diagonal k

			for x < n && y < m && ar.Eq(ar.RAAt(x), ar.RBAt(y)) {
				x++
				y++
			}
			vb[tk(k)] = x

			if d > 0 {
				rk := ar.RDiagonal(k)
				if reached(rk, d) && x >= n-vf[tk(rk)] {
					top := ar.AbsPointR(x, y)
					if ar.ContainsAbs(top) {
						bottom := ar.AbsPointR(x0, x0-k)
						if ar.ContainsAbs(bottom) {
							return top, bottom
						}
					}
				}
			}

			if x >= n && y >= m {
				atDest = true
				break
			}
		}

		if atDest {
			break
		}
	}

	// Reached only if both frontiers arrive at the destination without a
	// crossing inside the area; degenerate areas (N == 0 or M == 0) are
	// rejected at the top of Middle.
	panic(fmt.Sprintf("yavom: snake: destination reached without a crossing for n=%d m=%d; this is a programmer error in the splitter", n, m))
}
