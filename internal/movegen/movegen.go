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

// Package movegen produces pseudo-legal moves for the side to move: it
// respects piece movement rules and own-piece blocking but does not check
// whether the mover's own king ends up in check. It generates no en
// passant, castling, or promotion moves.
package movegen

import (
	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/board"
	"github.com/dgrco/ironpawn/internal/types"
)

// rank2Mask and rank7Mask identify the pawns eligible for a double push;
// they are built once from the eight squares of each rank rather than
// hand-written as literals, since the literal bit pattern depends on the
// engine's h1=0 square numbering.
var rank2Mask, rank7Mask types.Bitboard

func init() {
	rank2Mask = rankMask(types.Rank2)
	rank7Mask = rankMask(types.Rank7)
}

func rankMask(r types.Rank) types.Bitboard {
	var bb types.Bitboard
	for fl := 0; fl < 8; fl++ {
		bb = bb.SetBit(types.SquareOf(fl, r))
	}
	return bb
}

// Generate returns every pseudo-legal move for side on b, using idx to
// query sliding attacks. Emission order is unspecified.
func Generate(b *board.Board, idx *attacks.Index, side types.Color) []types.Move {
	var moves []types.Move

	own := b.Pieces(side)
	enemy := b.Pieces(side.Flip())
	notOwn := ^own

	for from := b.PieceBb(side, types.Knight); from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, attacks.KnightAttacks(sq)&notOwn)
	}
	for from := b.PieceBb(side, types.King); from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, attacks.KingAttacks(sq)&notOwn)
	}
	for from := b.PieceBb(side, types.Rook); from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, idx.RookAttacks(sq, b.AllPieces)&notOwn)
	}
	for from := b.PieceBb(side, types.Bishop); from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, idx.BishopAttacks(sq, b.AllPieces)&notOwn)
	}
	for from := b.PieceBb(side, types.Queen); from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, idx.QueenAttacks(sq, b.AllPieces)&notOwn)
	}

	moves = appendPawnMoves(moves, b, side, enemy)

	return moves
}

func appendTargets(moves []types.Move, from types.Square, targets types.Bitboard) []types.Move {
	for targets != 0 {
		to := targets.PopLsb()
		moves = append(moves, types.CreateMove(from, to))
	}
	return moves
}

// appendPawnMoves generates single/double pushes into empty squares and
// diagonal captures onto enemy-occupied squares, for side's pawns.
func appendPawnMoves(moves []types.Move, b *board.Board, side types.Color, enemy types.Bitboard) []types.Move {
	pawns := b.PieceBb(side, types.Pawn)
	empty := b.EmptySquares

	if side == types.White {
		single := (pawns << 8) & empty
		double := ((pawns & rank2Mask) << 16) & empty & (empty << 8)
		moves = appendPushes(moves, single, 8)
		moves = appendPushes(moves, double, 16)
	} else {
		single := (pawns >> 8) & empty
		double := ((pawns & rank7Mask) >> 16) & empty & (empty >> 8)
		moves = appendPulls(moves, single, 8)
		moves = appendPulls(moves, double, 16)
	}

	for from := pawns; from != 0; {
		sq := from.PopLsb()
		moves = appendTargets(moves, sq, attacks.PawnCaptures(side, sq)&enemy)
	}

	return moves
}

// appendPushes emits a move (to-delta, to) for every set bit of targets,
// used for white pawn pushes where the from-square has the lower index.
func appendPushes(moves []types.Move, targets types.Bitboard, delta types.Square) []types.Move {
	for targets != 0 {
		to := targets.PopLsb()
		moves = append(moves, types.CreateMove(to-delta, to))
	}
	return moves
}

// appendPulls is appendPushes' mirror for black pawns, whose from-square
// has the higher index.
func appendPulls(moves []types.Move, targets types.Bitboard, delta types.Square) []types.Move {
	for targets != 0 {
		to := targets.PopLsb()
		moves = append(moves, types.CreateMove(to+delta, to))
	}
	return moves
}
