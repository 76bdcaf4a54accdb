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

// Color is the side owning a piece. NoColor is a sentinel used only as the
// color half of an empty-square result.
type Color int8

const (
	White Color = iota
	Black
	NoColor
)

// Flip returns the opposing color. Flipping NoColor is not meaningful and
// returns NoColor unchanged.
func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "-"
	}
}

// PieceType identifies a kind of chess piece independent of color.
type PieceType uint8

const (
	Empty PieceType = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
	PtLength
)

func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

var pieceTypeToChar = [PtLength]byte{'-', 'p', 'b', 'n', 'r', 'q', 'k'}

// Char returns the lower case FEN letter for pt, or '-' for Empty.
func (pt PieceType) Char() byte {
	return pieceTypeToChar[pt]
}

func (pt PieceType) String() string {
	switch pt {
	case Empty:
		return "none"
	case Pawn:
		return "pawn"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Piece is a (color, type) pair. The zero value, NoPiece, represents an
// empty square and carries color NoColor.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the sentinel returned for an empty square.
var NoPiece = Piece{Type: Empty, Color: NoColor}

// MakePiece builds a Piece from a color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece{Type: pt, Color: c}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty || p.Color == NoColor
}

// Char returns the FEN letter for p: uppercase for white, lowercase for
// black, '-' for an empty square.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Color == White && c != '-' {
		c -= 'a' - 'A'
	}
	return c
}

// PieceFromChar returns the Piece for a single FEN letter, or NoPiece if c
// is not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	lower := c
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
	} else if c >= 'A' && c <= 'Z' {
		lower = c + ('a' - 'A')
	} else {
		return NoPiece
	}
	for pt := Pawn; pt < PtLength; pt++ {
		if pieceTypeToChar[pt] == lower {
			return MakePiece(color, pt)
		}
	}
	return NoPiece
}
