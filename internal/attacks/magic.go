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

package attacks

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dgrco/ironpawn/internal/assert"
	"github.com/dgrco/ironpawn/internal/types"
)

// Magic holds one square's multiplier, shift and dense attack table.
type Magic struct {
	Mask    types.Bitboard
	Magic   uint64
	Shift   uint
	Attacks []types.Bitboard
}

func (m *Magic) index(occ types.Bitboard) uint64 {
	relevant := uint64(occ & m.Mask)
	return (relevant * m.Magic) >> m.Shift
}

// Query returns the attack bitboard for occ (normally all_pieces) given
// the precomputed table.
func (m *Magic) Query(occ types.Bitboard) types.Bitboard {
	return m.Attacks[m.index(occ)]
}

// Index is the magic family's two arrays of 64 Magic entries, indexed by
// square, one family per sliding piece type.
type Index struct {
	Rook   [types.SqLength]Magic
	Bishop [types.SqLength]Magic
}

// readMagicFile reads a magic file in the two-line whitespace format:
// line 1 is 64 space-separated decimal multipliers, line 2 is 64
// space-separated decimal shifts. Returns an error — never panics — so the
// caller can compose its own fatal message.
func readMagicFile(path string) (multipliers [64]uint64, shifts [64]uint, err error) {
	f, err := os.Open(path)
	if err != nil {
		return multipliers, shifts, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line1, ok := nextNonEmptyLine(scanner)
	if !ok {
		return multipliers, shifts, fmt.Errorf("%s: missing multiplier line", path)
	}
	tokens := strings.Fields(line1)
	if len(tokens) != 64 {
		return multipliers, shifts, fmt.Errorf("%s: expected 64 multipliers, got %d", path, len(tokens))
	}
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return multipliers, shifts, fmt.Errorf("%s: malformed multiplier %q: %w", path, tok, err)
		}
		multipliers[i] = v
	}

	line2, ok := nextNonEmptyLine(scanner)
	if !ok {
		return multipliers, shifts, fmt.Errorf("%s: missing shift line", path)
	}
	tokens = strings.Fields(line2)
	if len(tokens) != 64 {
		return multipliers, shifts, fmt.Errorf("%s: expected 64 shifts, got %d", path, len(tokens))
	}
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return multipliers, shifts, fmt.Errorf("%s: malformed shift %q: %w", path, tok, err)
		}
		shifts[i] = uint(v)
	}

	return multipliers, shifts, nil
}

func nextNonEmptyLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// buildFamily constructs the 64 per-square Magic entries for one sliding
// family (rook or bishop) from its loaded multipliers/shifts, walking
// every subset of each square's blocker mask via the Carry-Rippler trick
// and writing its attack bitboard into the dense table. It asserts that no
// slot receives two different attack sets; two subsets with the same attack
// set may share a slot, so the subset-to-index map need not be injective.
func buildFamily(dirs [4]types.Direction, multipliers [64]uint64, shifts [64]uint) [types.SqLength]Magic {
	var family [types.SqLength]Magic
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		mask := BlockerMask(dirs, sq)
		m := Magic{
			Mask:  mask,
			Magic: multipliers[sq],
			Shift: shifts[sq],
		}
		size := uint64(1) << (64 - m.Shift)
		m.Attacks = make([]types.Bitboard, size)

		written := make([]bool, size)
		// Carry-Rippler: enumerate every subset of mask in increasing order.
		for occ := types.Bitboard(0); ; {
			idx := m.index(occ)
			attack := SlidingAttack(dirs, sq, occ)
			if written[idx] {
				assert.Assert(m.Attacks[idx] == attack,
					"magic table: square %s got two different attack sets for index %d "+
						"(magic file does not match the blocker-mask algorithm)", sq, idx)
			}
			m.Attacks[idx] = attack
			written[idx] = true

			occ = (occ - mask) & mask // next subset, wraps to 0 after the full mask
			if occ == 0 {
				break
			}
		}
		family[sq] = m
	}
	return family
}

// LoadIndex builds the full rook+bishop Index from the two magic files.
// A missing or malformed file is fatal: the loader logs a message naming
// the file and how to regenerate it, then exits the process, matching the
// spec's "Startup I/O failure" error kind.
func LoadIndex(rookPath, bishopPath string) *Index {
	rookMult, rookShift, err := readMagicFile(rookPath)
	if err != nil {
		fatalMagicFile(rookPath, err)
	}
	bishopMult, bishopShift, err := readMagicFile(bishopPath)
	if err != nil {
		fatalMagicFile(bishopPath, err)
	}

	return &Index{
		Rook:   buildFamily(types.RookDirections, rookMult, rookShift),
		Bishop: buildFamily(types.BishopDirections, bishopMult, bishopShift),
	}
}

func fatalMagicFile(path string, cause error) {
	fmt.Fprintf(os.Stderr,
		"%s not found or malformed (%v). Regenerate it with the magicgen tool "+
			"(cmd/magicgen), e.g.: magicgen -family rook -rookout rook-magics.out\n",
		path, cause)
	os.Exit(1)
}

// RookAttacks returns the rook's attack bitboard from sq given occ.
func (idx *Index) RookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return idx.Rook[sq].Query(occ)
}

// BishopAttacks returns the bishop's attack bitboard from sq given occ.
func (idx *Index) BishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return idx.Bishop[sq].Query(occ)
}

// QueenAttacks is the union of the rook and bishop query at sq.
func (idx *Index) QueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return idx.RookAttacks(sq, occ) | idx.BishopAttacks(sq, occ)
}
