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

package eval

import "github.com/dgrco/ironpawn/internal/types"

// pst is an 8x8 table of positional bonuses, row 0 = rank 8, column 0 =
// the a-file. It is indexed as pst[7-rank][7-file] so the literal layout
// below reads naturally top-to-bottom, left-to-right the way a board
// diagram does, while matching the square numbering where file 0 is h.
type pst = [8][8]types.Value

var pawnPst = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 5, 5, 5, 5, 5, 5, 0},
	{5, 5, 10, 30, 30, 10, 5, 5},
	{0, 0, 0, 30, 30, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -30, -30, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightPst = pst{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -25, -20, -30, -30, -20, -25, -50},
}

var bishopPst = pst{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -40, -10, -10, -40, -10, -20},
}

var rookPst = pst{
	{5, 5, 5, 5, 5, 5, 5, 5},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{-15, -10, 15, 15, 15, 15, -10, -15},
}

var queenPst = pst{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-5, 0, 2, 2, 2, 2, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

// pstFor returns the table for pt, or nil for piece types with no
// positional bonus (Empty, King — king placement is out of scope here).
func pstFor(pt types.PieceType) *pst {
	switch pt {
	case types.Pawn:
		return &pawnPst
	case types.Knight:
		return &knightPst
	case types.Bishop:
		return &bishopPst
	case types.Rook:
		return &rookPst
	case types.Queen:
		return &queenPst
	default:
		return nil
	}
}

// pstValue returns the positional bonus for pt standing on sq, seen from
// White's perspective (callers negate for Black).
func pstValue(pt types.PieceType, sq types.Square) types.Value {
	table := pstFor(pt)
	if table == nil {
		return 0
	}
	row := 7 - int(sq.RankOf())
	col := 7 - int(sq.FileOf())
	return table[row][col]
}
