/*
 * ironpawn - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package attacks builds and queries the precomputed leaper tables and the
// magic-indexed sliding attack tables. Table construction and the magic
// file loader live here; the randomized search that produces the magic
// numbers in the first place lives in internal/magicsearch.
package attacks

import "github.com/dgrco/ironpawn/internal/types"

// SlidingAttack walks each of dirs from sq, adding every traversed square,
// stopping a ray upon leaving the board or upon hitting a square set in
// occ (the blocker square itself is included — the result models
// capturing the blocker).
func SlidingAttack(dirs [4]types.Direction, sq types.Square, occ types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			nxt := cur.To(d)
			if !nxt.IsValid() {
				break
			}
			bb = bb.SetBit(nxt)
			if occ.Has(nxt) {
				break
			}
			cur = nxt
		}
	}
	return bb
}

// BlockerMask returns the squares on dirs' rays from sq that can block,
// excluding sq itself and, for each ray, the final square before the ray
// leaves the board — a square that is never going to be a relevant
// occupant since the ray ends at the edge regardless of what's on it.
func BlockerMask(dirs [4]types.Direction, sq types.Square) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			nxt := cur.To(d)
			if !nxt.IsValid() {
				break
			}
			after := nxt.To(d)
			if !after.IsValid() {
				break
			}
			bb = bb.SetBit(nxt)
			cur = nxt
		}
	}
	return bb
}
