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

// Package eval scores a Board from White's perspective: material plus a
// static piece-square bonus, called only at search leaves.
package eval

import (
	"github.com/dgrco/ironpawn/internal/board"
	"github.com/dgrco/ironpawn/internal/types"
)

// Evaluate returns the white-positive score of b: the sum over both
// colors of (material weight + positional bonus) per piece, added for
// White and subtracted for Black.
func Evaluate(b *board.Board) types.Value {
	var score types.Value
	score += sideScore(b, types.White)
	score -= sideScore(b, types.Black)
	return score
}

func sideScore(b *board.Board, c types.Color) types.Value {
	var score types.Value
	for pt := types.Pawn; pt < types.PtLength; pt++ {
		bb := b.PieceBb(c, pt)
		score += types.PieceValue(pt) * types.Value(bb.PopCount())
		for bb != 0 {
			sq := bb.PopLsb()
			score += pstValue(pt, sq)
		}
	}
	return score
}
