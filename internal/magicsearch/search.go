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

package magicsearch

import (
	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/types"
)

// Result is the accepted magic for one square: the smallest table (largest
// shift) found before the search was told to stop.
type Result struct {
	Magic uint64
	Shift uint
}

// squareSamples holds every subset of a square's blocker mask, paired with
// its true sliding-attack bitboard, computed once and reused across every
// magic candidate tried for that square.
type squareSamples struct {
	mask         types.Bitboard
	occupancies  []types.Bitboard
	attacks      []types.Bitboard
}

func sampleSquare(dirs [4]types.Direction, sq types.Square) squareSamples {
	mask := attacks.BlockerMask(dirs, sq)
	s := squareSamples{mask: mask}
	for occ := types.Bitboard(0); ; {
		s.occupancies = append(s.occupancies, occ)
		s.attacks = append(s.attacks, attacks.SlidingAttack(dirs, sq, occ))
		occ = (occ - mask) & mask
		if occ == 0 {
			break
		}
	}
	return s
}

// tryMagic tests whether magic is injective over every sampled subset at
// the given shift: two different occupancies must never produce the same
// index unless they also share the same attack bitboard. epoch avoids
// clearing the scratch table between failed attempts.
func (s *squareSamples) tryMagic(magic uint64, shift uint, scratch []types.Bitboard, epoch []int, stamp int) bool {
	for i, occ := range s.occupancies {
		idx := (uint64(occ&s.mask) * magic) >> shift
		if epoch[idx] != stamp {
			epoch[idx] = stamp
			scratch[idx] = s.attacks[i]
		} else if scratch[idx] != s.attacks[i] {
			return false
		}
	}
	return true
}

// findAtShift tries up to attempts random sparse candidates at the given
// shift and returns the first one that passes tryMagic.
func (s *squareSamples) findAtShift(rng *prnG, shift uint, attempts int) (uint64, bool) {
	tableSize := uint64(1) << (64 - shift)
	scratch := make([]types.Bitboard, tableSize)
	epoch := make([]int, tableSize)

	for attempt := 1; attempt <= attempts; attempt++ {
		var magic uint64
		for {
			magic = rng.sparseRand()
			// A useful magic spreads bits across the top byte of mask*magic;
			// reject candidates that clearly won't (fewer wasted full trials).
			if types.Bitboard((magic*uint64(s.mask))>>56).PopCount() >= 6 {
				continue
			}
			break
		}
		if s.tryMagic(magic, shift, scratch, epoch, attempt) {
			return magic, true
		}
	}
	return 0, false
}

// Search runs the anytime magic search for one square: it first finds a
// magic at the mask's natural shift (always succeeds given enough
// attempts), then keeps trying to shrink the table by searching at larger
// shifts, keeping the best (smallest-table) result found so far. stop is
// polled between shift levels so a caller can end the search early and
// still keep whatever has already been found — that is the "anytime"
// contract: the longer it runs, the smaller the table, but it is always
// safe to interrupt.
func Search(dirs [4]types.Direction, sq types.Square, seed uint64, attemptsPerShift int, maxExtraShift uint, stop <-chan struct{}) Result {
	samples := sampleSquare(dirs, sq)
	baseShift := uint(64 - samples.mask.PopCount())
	rng := newPrnG(seed)

	magic, ok := samples.findAtShift(rng, baseShift, attemptsPerShift*8)
	if !ok {
		// The natural shift must eventually succeed; widen the budget once
		// rather than ever returning an unusable result.
		magic, ok = samples.findAtShift(rng, baseShift, attemptsPerShift*64)
	}
	best := Result{Magic: magic, Shift: baseShift}
	if !ok {
		return best
	}

	for extra := uint(1); extra <= maxExtraShift; extra++ {
		select {
		case <-stop:
			return best
		default:
		}
		shift := baseShift + extra
		if m, ok := samples.findAtShift(rng, shift, attemptsPerShift); ok {
			best = Result{Magic: m, Shift: shift}
			continue
		}
		// A failure to shrink further at this level almost always means
		// further levels will fail too; stop trying to save time.
		break
	}
	return best
}
