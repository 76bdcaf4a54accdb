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

package board

import (
	"fmt"
	"strings"

	"github.com/dgrco/ironpawn/internal/types"
)

// NewFromFen builds a Board from a FEN string. Only the piece-placement
// field (the substring up to the first space, if any) is consumed; any
// remaining fields (side to move, castling rights, etc.) are accepted but
// ignored, since this core does not model them.
func NewFromFen(fen string) (*Board, error) {
	placement := fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		placement = fen[:i]
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d in %q", len(ranks), fen)
	}

	b := &Board{}
	// Ranks are listed rank-8 first; within a rank, left to right is the
	// a-file to the h-file. square index k counts up from 0 as each
	// character is placed, and the k-th placed square occupies bit
	// (63 - k) of the board, per the FEN ingestion rule in the external
	// interface contract.
	k := 0
	for _, rank := range ranks {
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				k += int(c - '0')
				continue
			}
			p := types.PieceFromChar(c)
			if p.IsEmpty() {
				return nil, fmt.Errorf("fen: invalid piece letter %q in %q", c, fen)
			}
			sq := types.Square(63 - k)
			b.placePiece(p, sq)
			k++
		}
	}
	if k != 64 {
		return nil, fmt.Errorf("fen: expected 64 squares, got %d in %q", k, fen)
	}
	b.recomputeAggregates()
	return b, nil
}
