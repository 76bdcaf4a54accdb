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

// Package board holds the bitboard chess position: the twelve piece
// bitboards, their four derived aggregates, and move application/reversal.
// It has no dependency on the attack tables or move generator — callers
// pass those in explicitly wherever they are needed, so Board stays pure
// data (see DESIGN.md's note on breaking the board/attack-table cycle).
package board

import (
	"github.com/dgrco/ironpawn/internal/assert"
	"github.com/dgrco/ironpawn/internal/types"
)

// StartFen is the piece placement of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Board is the full bitboard representation of a chess position.
type Board struct {
	pieces [2][7]types.Bitboard // [Color][PieceType]; PieceType 0 (Empty) unused

	WhitePieces   types.Bitboard
	BlackPieces   types.Bitboard
	AllPieces     types.Bitboard
	EmptySquares  types.Bitboard
}

// New returns a Board set up in the standard starting position.
func New() *Board {
	b, err := NewFromFen(StartFen)
	assert.Assert(err == nil, "embedded start FEN must parse: %v", err)
	return b
}

// pieceBb returns the bitboard for (c, pt).
func (b *Board) pieceBb(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieces[c][pt]
}

// PieceBb returns the bitboard of c's pieces of type pt, for callers
// outside this package (move generation, evaluation) that need to walk a
// single piece family rather than probe square by square.
func (b *Board) PieceBb(c types.Color, pt types.PieceType) types.Bitboard {
	return b.pieceBb(c, pt)
}

// Pieces returns c's aggregate bitboard (WhitePieces or BlackPieces).
func (b *Board) Pieces(c types.Color) types.Bitboard {
	return *b.aggregateFor(c)
}

func (b *Board) aggregateFor(c types.Color) *types.Bitboard {
	if c == types.White {
		return &b.WhitePieces
	}
	return &b.BlackPieces
}

// PieceAt returns the piece standing on sq, or NoPiece if sq is empty.
// It probes the twelve piece bitboards in a fixed order and returns the
// first match.
func (b *Board) PieceAt(sq types.Square) types.Piece {
	for c := types.White; c <= types.Black; c++ {
		for pt := types.Pawn; pt < types.PtLength; pt++ {
			if b.pieces[c][pt].Has(sq) {
				return types.MakePiece(c, pt)
			}
		}
	}
	return types.NoPiece
}

func (b *Board) recomputeAggregates() {
	b.AllPieces = b.WhitePieces | b.BlackPieces
	b.EmptySquares = ^b.AllPieces
}

// placePiece sets p's bit at sq in its piece bitboard and color aggregate.
func (b *Board) placePiece(p types.Piece, sq types.Square) {
	b.pieces[p.Color][p.Type] = b.pieces[p.Color][p.Type].SetBit(sq)
	agg := b.aggregateFor(p.Color)
	*agg = agg.SetBit(sq)
}

// removePiece clears p's bit at sq in its piece bitboard and color aggregate.
func (b *Board) removePiece(p types.Piece, sq types.Square) {
	b.pieces[p.Color][p.Type] = b.pieces[p.Color][p.Type].ClearBit(sq)
	agg := b.aggregateFor(p.Color)
	*agg = agg.ClearBit(sq)
}

// Make moves the piece on from to to, returning whatever piece previously
// stood on to (NoPiece if it was empty) so the caller can later Undo.
// Make does not check legality: it assumes the caller produced (from, to)
// via move generation. It implements no promotion, castling, or en passant.
func (b *Board) Make(from, to types.Square) types.Piece {
	p := b.PieceAt(from)
	assert.Assert(!p.IsEmpty(), "make: no piece on from-square %s", from)
	captured := b.PieceAt(to)

	b.removePiece(p, from)
	b.placePiece(p, to)
	if !captured.IsEmpty() {
		b.removePiece(captured, to)
	}
	b.recomputeAggregates()

	return captured
}

// Undo reverses a prior Make(from, to) that returned captured. After
// Undo, every bitboard is bit-identical to its state before the Make.
func (b *Board) Undo(from, to types.Square, captured types.Piece) {
	b.Make(to, from)
	if !captured.IsEmpty() {
		b.placePiece(captured, to)
		b.recomputeAggregates()
	}
}
