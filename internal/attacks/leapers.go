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

package attacks

import "github.com/dgrco/ironpawn/internal/types"

var (
	knightMoves        [types.SqLength]types.Bitboard
	kingMoves          [types.SqLength]types.Bitboard
	whitePawnCaptures  [types.SqLength]types.Bitboard
	blackPawnCaptures  [types.SqLength]types.Bitboard
)

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// leap builds the bitboard reached from sq by applying every (dRank,
// dFile) offset, in conventional a..h/1..8 coordinates, dropping any
// target that falls outside the board.
func leap(sq types.Square, offsets [][2]int) types.Bitboard {
	var bb types.Bitboard
	fl := 7 - int(sq.FileOf())
	r := int(sq.RankOf())
	for _, o := range offsets {
		nf := fl + o[1]
		nr := r + o[0]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb = bb.SetBit(types.SquareOf(nf, types.Rank(nr)))
	}
	return bb
}

func init() {
	knightOff := make([][2]int, len(knightOffsets))
	for i, o := range knightOffsets {
		knightOff[i] = o
	}
	kingOff := make([][2]int, len(kingOffsets))
	for i, o := range kingOffsets {
		kingOff[i] = o
	}
	whitePawnOff := [][2]int{{1, 1}, {1, -1}}
	blackPawnOff := [][2]int{{-1, 1}, {-1, -1}}

	for sq := types.Square(0); sq < types.SqLength; sq++ {
		knightMoves[sq] = leap(sq, knightOff)
		kingMoves[sq] = leap(sq, kingOff)
		whitePawnCaptures[sq] = leap(sq, whitePawnOff)
		blackPawnCaptures[sq] = leap(sq, blackPawnOff)
	}
}

// KnightAttacks returns the knight's destination squares from sq, ignoring
// occupancy.
func KnightAttacks(sq types.Square) types.Bitboard {
	return knightMoves[sq]
}

// KingAttacks returns the king's destination squares from sq, ignoring
// occupancy.
func KingAttacks(sq types.Square) types.Bitboard {
	return kingMoves[sq]
}

// PawnCaptures returns the capture destination squares for a pawn of color
// c standing on sq, ignoring whether an enemy piece actually occupies them.
func PawnCaptures(c types.Color, sq types.Square) types.Bitboard {
	if c == types.White {
		return whitePawnCaptures[sq]
	}
	return blackPawnCaptures[sq]
}
