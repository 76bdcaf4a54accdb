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

package uci

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/magicsearch"
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

func TestUciCommandIdentifiesEngine(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	out := h.Command("uci")
	assert.Contains(t, out, "id name "+EngineName)
	assert.Contains(t, out, "id author "+EngineAuthor)
	assert.Contains(t, out, "uciok")
}

func TestUnknownCommandIsReported(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	out := h.Command("bogus")
	assert.Contains(t, out, "Unknown command: bogus")
}

func TestPositionStartposThenMovesAppliesEachMove(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	h.Command("position startpos moves e2e4 e7e5")

	assert.Equal(t, types.NoPiece, h.board.PieceAt(types.SqE2))
	assert.Equal(t, types.MakePiece(types.White, types.Pawn), h.board.PieceAt(types.SqE4))
	assert.Equal(t, types.NoPiece, h.board.PieceAt(types.SqE7))
	assert.Equal(t, types.MakePiece(types.Black, types.Pawn), h.board.PieceAt(types.SqE5))
}

func TestPositionFenWithoutMoves(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	h.Command("position fen 8/8/8/8/8/8/8/4K3")
	assert.Equal(t, types.MakePiece(types.White, types.King), h.board.PieceAt(types.SqE1))
}

func TestPositionFenRejectsMalformedFen(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	out := h.Command("position fen not-a-fen")
	assert.Contains(t, out, "Unknown command")
}

func TestGoCommandReportsBestMoveAndScore(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	h.Command("position fen 8/8/8/3p4/4P3/8/4K3/7k")

	out := h.Command("go depth 1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "info score "))
	assert.Equal(t, "bestmove e4d5", lines[1])
}

func TestQuitEndsTheLoop(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("uci"))
}

func TestEmptyLineIsIgnored(t *testing.T) {
	h := NewHandler(newTestIndex(t))
	out := h.Command("")
	assert.Empty(t, out)
}
