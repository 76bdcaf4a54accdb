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

package search_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/board"
	"github.com/dgrco/ironpawn/internal/eval"
	"github.com/dgrco/ironpawn/internal/magicsearch"
	"github.com/dgrco/ironpawn/internal/movegen"
	"github.com/dgrco/ironpawn/internal/search"
	"github.com/dgrco/ironpawn/internal/types"
)

func newTestIndex(t *testing.T) *attacks.Index {
	t.Helper()
	dir := t.TempDir()
	rookPath := filepath.Join(dir, "rook-magics.out")
	bishopPath := filepath.Join(dir, "bishop-magics.out")

	require.NoError(t, magicsearch.NewRunner(types.RookDirections, 1070372, 2000, 1, 4).Run(rookPath))
	require.NoError(t, magicsearch.NewRunner(types.BishopDirections, 1070373, 2000, 1, 4).Run(bishopPath))

	return attacks.LoadIndex(rookPath, bishopPath)
}

// minimaxPlain is the unpruned reference implementation used only by tests:
// it visits every node search.Search's alpha-beta would prune away, so the
// two must agree on the final value exactly.
func minimaxPlain(b *board.Board, idx *attacks.Index, depth int, turn types.Color) types.Value {
	if depth == 0 {
		return eval.Evaluate(b)
	}

	sentinel := types.ValueInf
	if turn == types.White {
		sentinel = -types.ValueInf
	}
	best := sentinel
	betterThanBest := func(v types.Value) bool {
		if turn == types.White {
			return v > best
		}
		return v < best
	}

	for _, m := range movegen.Generate(b, idx, turn) {
		from, to := m.From(), m.To()
		captured := b.Make(from, to)
		score := minimaxPlain(b, idx, depth-1, turn.Flip())
		if betterThanBest(score) && !search.InCheck(b, idx, turn) {
			best = score
		}
		b.Undo(from, to, captured)
	}
	return best
}

func TestInCheckDetectsAttackedKing(t *testing.T) {
	idx := newTestIndex(t)
	b, err := board.NewFromFen("8/8/8/8/4k3/8/4R3/4K3")
	require.NoError(t, err)
	assert.True(t, search.InCheck(b, idx, types.Black), "rook on e2 attacks the king on e4 along the e-file")
	assert.False(t, search.InCheck(b, idx, types.White))
}

func TestInCheckFalseWhenNoKing(t *testing.T) {
	idx := newTestIndex(t)
	b, err := board.NewFromFen("8/8/8/8/8/8/8/8")
	require.NoError(t, err)
	assert.False(t, search.InCheck(b, idx, types.White))
}

func TestSearchPrefersImmediateMaterialGain(t *testing.T) {
	idx := newTestIndex(t)
	b, err := board.NewFromFen("8/8/8/3p4/4P3/8/4K3/7k")
	require.NoError(t, err)

	best, _ := search.Search(b, idx, 1, types.White)
	assert.Equal(t, types.SqE4, best.From())
	assert.Equal(t, types.SqD5, best.To(), "capturing the undefended pawn is the only depth-1-optimal move")
}

func TestSearchAlphaBetaMatchesPlainMinimax(t *testing.T) {
	idx := newTestIndex(t)
	b, err := board.NewFromFen("8/5p2/8/3p4/4P3/3N4/4K3/6k1")
	require.NoError(t, err)

	const depth = 3
	_, pruned := search.Search(b, idx, depth, types.White)
	plain := minimaxPlain(b, idx, depth, types.White)
	assert.Equal(t, plain, pruned, "alpha-beta must find the same value as an unpruned search")
}
