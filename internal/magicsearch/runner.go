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
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/dgrco/ironpawn/internal/logging"
	"github.com/dgrco/ironpawn/internal/types"
)

var log = logging.GetLog("magicsearch", golog.INFO)

// Runner drives the per-square search across all 64 squares of one sliding
// family, bounding how many squares are searched concurrently and reacting
// to SIGINT/SIGTERM by stopping the shrink phase early and flushing
// whatever has been found so far.
type Runner struct {
	Dirs             [4]types.Direction
	Seed             uint64
	AttemptsPerShift int
	MaxExtraShift    uint
	Concurrency      int64
}

// NewRunner builds a Runner with the given per-square search budget.
func NewRunner(dirs [4]types.Direction, seed uint64, attemptsPerShift int, maxExtraShift uint, concurrency int64) *Runner {
	return &Runner{
		Dirs:             dirs,
		Seed:             seed,
		AttemptsPerShift: attemptsPerShift,
		MaxExtraShift:    maxExtraShift,
		Concurrency:      concurrency,
	}
}

// Run searches all 64 squares, writes the result to outPath in the
// two-line magic file format, and returns. A SIGINT or SIGTERM received
// while squares are still searching stops the shrink phase of every
// in-flight square (each keeps whatever magic it already found) and skips
// squares that had not yet started; Run still writes the file in that case,
// with zero multiplier and shift for the skipped squares, and logs which
// squares are incomplete. A later run searches all 64 squares again.
func (r *Runner) Run(outPath string) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	stop := make(chan struct{})
	go func() {
		if _, ok := <-sigCh; ok {
			log.Warningf("interrupt received, flushing best magics found so far to %s", outPath)
			close(stop)
		}
	}()

	sem := semaphore.NewWeighted(r.Concurrency)

	var mu sync.Mutex
	var wg sync.WaitGroup
	var results [types.SqLength]Result
	done := make([]bool, types.SqLength)

	for sq := types.Square(0); sq < types.SqLength; sq++ {
		select {
		case <-stop:
			wg.Wait()
			return r.flush(outPath, results[:], done)
		default:
		}

		if err := sem.Acquire(context.Background(), 1); err != nil {
			continue
		}
		wg.Add(1)
		go func(sq types.Square) {
			defer wg.Done()
			defer sem.Release(1)
			res := Search(r.Dirs, sq, r.Seed+uint64(sq), r.AttemptsPerShift, r.MaxExtraShift, stop)
			mu.Lock()
			results[sq] = res
			done[sq] = true
			mu.Unlock()
			log.Debugf("square %s: magic=%d shift=%d (table size %d)", sq, res.Magic, res.Shift, uint64(1)<<(64-res.Shift))
		}(sq)
	}

	wg.Wait()
	return r.flush(outPath, results[:], done)
}

func (r *Runner) flush(outPath string, results []Result, done []bool) error {
	for sq, ok := range done {
		if !ok {
			log.Warningf("square %s has no magic yet; rerun to complete %s", types.Square(sq), outPath)
		}
	}
	return WriteMagicFile(outPath, results)
}

// WriteMagicFile writes results (indexed by square) to path as two lines:
// 64 space-separated decimal multipliers, then 64 space-separated decimal
// shifts, matching what internal/attacks.LoadIndex reads back.
func WriteMagicFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("magicsearch: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	multipliers := make([]string, len(results))
	shifts := make([]string, len(results))
	for i, res := range results {
		multipliers[i] = strconv.FormatUint(res.Magic, 10)
		shifts[i] = strconv.FormatUint(uint64(res.Shift), 10)
	}
	if _, err := fmt.Fprintln(w, strings.Join(multipliers, " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(shifts, " ")); err != nil {
		return err
	}
	return w.Flush()
}
