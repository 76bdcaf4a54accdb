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

// External test package so it can depend on magicsearch (which itself
// depends on attacks) without an import cycle.
package attacks_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/magicsearch"
	"github.com/dgrco/ironpawn/internal/types"
)

// TestLoadIndexRoundTripsSearchedMagics runs a real (small-budget) magic
// search for both families, writes the result in the on-disk format, loads
// it back through attacks.LoadIndex, and checks that every query matches
// SlidingAttack exactly over a handful of occupancies per square.
func TestLoadIndexRoundTripsSearchedMagics(t *testing.T) {
	dir := t.TempDir()
	rookPath := filepath.Join(dir, "rook-magics.out")
	bishopPath := filepath.Join(dir, "bishop-magics.out")

	rookRunner := magicsearch.NewRunner(types.RookDirections, 1070372, 2000, 1, 4)
	require.NoError(t, rookRunner.Run(rookPath))
	bishopRunner := magicsearch.NewRunner(types.BishopDirections, 1070373, 2000, 1, 4)
	require.NoError(t, bishopRunner.Run(bishopPath))

	idx := attacks.LoadIndex(rookPath, bishopPath)

	occupancies := []types.Bitboard{
		types.BbZero,
		types.BbAll,
		types.SqD5.Bb() | types.SqD3.Bb() | types.SqF4.Bb(),
		types.SqA1.Bb() | types.SqH8.Bb() | types.SqE4.Bb() | types.SqE5.Bb(),
	}

	for sq := types.Square(0); sq < types.SqLength; sq++ {
		for _, occ := range occupancies {
			wantRook := attacks.SlidingAttack(types.RookDirections, sq, occ)
			assert.Equal(t, wantRook, idx.RookAttacks(sq, occ), "rook at %s, occ %s", sq, occ)

			wantBishop := attacks.SlidingAttack(types.BishopDirections, sq, occ)
			assert.Equal(t, wantBishop, idx.BishopAttacks(sq, occ), "bishop at %s, occ %s", sq, occ)

			assert.Equal(t, wantRook|wantBishop, idx.QueenAttacks(sq, occ), "queen at %s, occ %s", sq, occ)
		}
	}
}
