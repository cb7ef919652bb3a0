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

// Package yavom computes a minimal edit script — a move list — that
// transforms one ordered sequence into another.
//
// It implements a divide-and-conquer variant of Myers' O(ND) difference
// algorithm with a linear-space "middle snake" search: the bidirectional
// frontier search recurses on progressively smaller rectangles of the A×B
// edit graph until every remaining rectangle is one-dimensional, at which
// point it degenerates into a single Insert or Delete move. This
// construction is sometimes called the "YAVOM" formulation (Yet Another
// Variant Of Myers).
//
// # Shape of a diff
//
// A move list never describes a match: it only contains the Insert and
// Delete moves needed to turn A into B. Insert moves carry a position in
// the *evolving* A (i.e. as if all earlier moves in the list had already
// been applied) and, once Fill has run, the slice of B being inserted.
// Delete moves carry a count and the same evolving-A position.
//
// Diff and DiffFunc return a filled move list directly. DiffUnfilled and
// DiffUnfilledFunc skip payload materialization, which is useful when only
// the shape of the diff (or its length) matters: splitting is
// O(N+M+D*min(N,M)) and only touches equality and indices, while payload
// copying in Fill is a separate O(total inserted length) pass.
//
// Apply replays a move list against a copy of A to reconstruct B. Strip
// rewrites Delete moves into a more compact positional form
// (DeleteStripped) that Apply also understands.
//
// The element type is treated as opaque and need only support equality:
// Diff/DiffUnfilled take any comparable type and compare with ==; DiffFunc/
// DiffUnfilledFunc take any type together with an explicit equality
// function.
package yavom
