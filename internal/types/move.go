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

package types

// Move is a 16 bit encoding of a single chess move:
//  BITMAP 16-bit
//  |-flags--|---to-----|--from----|
//  1 1 1 1 | 1 1 1 1 1 1 1 1 1 1 1 1
//  5 4 3 2 | 1 0 9 8 7 6 5 4 3 2 1 0
//
// Bits 0-5 hold the from-square, bits 6-11 the to-square, bits 12-15 are
// reserved for future flags (promotion, en passant, castling, capture
// kind) and are always zero in the current core.
type Move uint16

// MoveNone is the zero move, returned by Search when no legal move exists.
const MoveNone Move = 0

const (
	fromMask   Move = 0x3F
	toShift         = 6
	toMask     Move = 0x3F << toShift
)

// CreateMove packs a from/to square pair into a Move. Flags are left zero.
func CreateMove(from, to Square) Move {
	return Move(from) | Move(to)<<toShift
}

// From returns the move's from-square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the move's to-square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// String renders m in algebraic from/to notation (e.g. "e2e4"), or "0000"
// for MoveNone.
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	return m.From().String() + m.To().String()
}
