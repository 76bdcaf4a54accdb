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

// Package search implements minimax with alpha-beta pruning over the
// pseudo-legal move generator, filtering out moves that leave the mover
// in check. White maximizes, Black minimizes; the evaluator is called
// only at the leaves.
package search

import (
	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/board"
	"github.com/dgrco/ironpawn/internal/eval"
	"github.com/dgrco/ironpawn/internal/movegen"
	"github.com/dgrco/ironpawn/internal/types"
)

// InCheck reports whether c's king is attacked in the current position: it
// generates the opponent's pseudo-legal moves and checks whether any of
// them lands on c's king square.
func InCheck(b *board.Board, idx *attacks.Index, c types.Color) bool {
	king := b.PieceBb(c, types.King).Lsb()
	if !king.IsValid() {
		return false
	}
	for _, m := range movegen.Generate(b, idx, c.Flip()) {
		if m.To() == king {
			return true
		}
	}
	return false
}

func sentinel(side types.Color) types.Value {
	if side == types.White {
		return -types.ValueInf
	}
	return types.ValueInf
}

func improves(side types.Color, candidate, best types.Value) bool {
	if side == types.White {
		return candidate > best
	}
	return candidate < best
}

// Search returns the best move for side at the given depth (≥1) and its
// white-positive evaluation. If no pseudo-legal move leaves side out of
// check, it returns (MoveNone, sentinel(side)) — the caller treats that as
// checkmate or stalemate, undistinguished, per the core's scope.
func Search(b *board.Board, idx *attacks.Index, depth int, side types.Color) (types.Move, types.Value) {
	bestMove := types.MoveNone
	bestEval := sentinel(side)

	for _, m := range movegen.Generate(b, idx, side) {
		from, to := m.From(), m.To()
		captured := b.Make(from, to)

		score := minimax(b, idx, depth-1, side.Flip(), -types.ValueInf, types.ValueInf)

		if improves(side, score, bestEval) && !InCheck(b, idx, side) {
			bestEval = score
			bestMove = m
		}

		b.Undo(from, to, captured)
	}

	return bestMove, bestEval
}

// minimax scores the position depth half-moves deep for turn to move,
// pruning with alpha-beta. The undo for the move that triggers a cutoff
// always runs before the break, so the board is restored on every return
// path.
func minimax(b *board.Board, idx *attacks.Index, depth int, turn types.Color, alpha, beta types.Value) types.Value {
	if depth == 0 {
		return eval.Evaluate(b)
	}

	best := sentinel(turn)

	for _, m := range movegen.Generate(b, idx, turn) {
		from, to := m.From(), m.To()
		captured := b.Make(from, to)

		score := minimax(b, idx, depth-1, turn.Flip(), alpha, beta)

		if improves(turn, score, best) && !InCheck(b, idx, turn) {
			best = score
		}

		cutoff := false
		if turn == types.White {
			if best > alpha {
				alpha = best
			}
			cutoff = alpha >= beta
		} else {
			if best < beta {
				beta = best
			}
			cutoff = beta <= alpha
		}

		b.Undo(from, to, captured)

		if cutoff {
			break
		}
	}

	return best
}
