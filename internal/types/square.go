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

// Package types holds the primitive value types shared by every other
// package of the engine: squares, files, ranks, colors, pieces, bitboards
// and moves. None of it depends on board state or search.
package types

import "fmt"

// Square is one square on the board, 0..63. The numbering is fixed by the
// magic multipliers and must never change: index 0 is h1, index 7 is a1,
// index 56 is h8 and index 63 is a8. Rank is sq/8 (0-based from rank 1);
// file, read h-to-a, is sq%8.
type Square uint8

const (
	SqH1 Square = iota
	SqG1
	SqF1
	SqE1
	SqD1
	SqC1
	SqB1
	SqA1
	SqH2
	SqG2
	SqF2
	SqE2
	SqD2
	SqC2
	SqB2
	SqA2
	SqH3
	SqG3
	SqF3
	SqE3
	SqD3
	SqC3
	SqB3
	SqA3
	SqH4
	SqG4
	SqF4
	SqE4
	SqD4
	SqC4
	SqB4
	SqA4
	SqH5
	SqG5
	SqF5
	SqE5
	SqD5
	SqC5
	SqB5
	SqA5
	SqH6
	SqG6
	SqF6
	SqE6
	SqD6
	SqC6
	SqB6
	SqA6
	SqH7
	SqG7
	SqF7
	SqE7
	SqD7
	SqC7
	SqB7
	SqA7
	SqH8
	SqG8
	SqF8
	SqE8
	SqD8
	SqC8
	SqB8
	SqA8
	SqNone
)

// SqLength is the number of valid squares.
const SqLength = 64

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq (0=h .. 7=a).
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq (0=rank1 .. 7=rank8).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// fileLetterIdx returns the file in conventional a(0)..h(7) order, the
// natural coordinate system for applying compass directions.
func (sq Square) fileLetterIdx() int {
	return 7 - int(sq.FileOf())
}

// SquareOf builds a square from a conventional a..h file letter index
// (0=a..7=h) and a rank (0=rank1..7=rank8). Returns SqNone if out of range.
func SquareOf(fileLetterIdx int, r Rank) Square {
	if fileLetterIdx < 0 || fileLetterIdx > 7 || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + (7 - fileLetterIdx))
}

// MakeSquare parses a two character algebraic square name (e.g. "e4") and
// returns SqNone if s is not a valid square string.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromLetter(s[0])
	r := RankFromDigit(s[1])
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// To returns the square reached by moving one step in direction d from sq,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	f := sq.fileLetterIdx()
	r := int(sq.RankOf())
	switch d {
	case North:
		r++
	case South:
		r--
	case East:
		f++
	case West:
		f--
	case Northeast:
		r++
		f++
	case Southeast:
		r--
		f++
	case Southwest:
		r--
		f--
	case Northwest:
		r++
		f--
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(f, Rank(r))
}

// String returns the algebraic name of sq (e.g. "e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{sq.FileOf().Letter(), sq.RankOf().Digit()})
}
