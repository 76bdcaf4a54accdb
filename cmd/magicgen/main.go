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

// magicgen is the offline tool that discovers the magic multipliers
// internal/attacks loads at runtime. It is never run by the engine itself;
// its output (rook-magics.out, bishop-magics.out) is what the engine reads
// at startup, by default from the working directory. Interrupting with SIGINT/SIGTERM stops the
// search early and still writes out the best magic found per square so far.
package main

import (
	"flag"
	"log"

	golog "github.com/op/go-logging"

	ilog "github.com/dgrco/ironpawn/internal/logging"
	"github.com/dgrco/ironpawn/internal/magicsearch"
	"github.com/dgrco/ironpawn/internal/types"
)

func main() {
	family := flag.String("family", "both", "which family to search: rook|bishop|both")
	rookOut := flag.String("rookout", "rook-magics.out", "output path for rook magics")
	bishopOut := flag.String("bishopout", "bishop-magics.out", "output path for bishop magics")
	seed := flag.Uint64("seed", 1070372, "base PRNG seed (offset per square)")
	attempts := flag.Int("attempts", 100000, "candidate attempts per shift before giving up")
	maxExtraShift := flag.Uint("maxextrashift", 4, "how many shifts beyond the minimum to try shrinking the table by")
	concurrency := flag.Int64("concurrency", 4, "squares searched concurrently")
	logLvl := flag.String("loglvl", "info", "log level (critical|error|warning|notice|info|debug)")
	flag.Parse()

	level := golog.INFO
	if lvl, ok := map[string]golog.Level{
		"critical": golog.CRITICAL,
		"error":    golog.ERROR,
		"warning":  golog.WARNING,
		"notice":   golog.NOTICE,
		"info":     golog.INFO,
		"debug":    golog.DEBUG,
	}[*logLvl]; ok {
		level = lvl
	}
	ilog.GetLog("magicsearch", level)
	// magicsearch's package-level logger already installed the shared
	// backend at INFO during package initialization; apply the flag's level.
	golog.SetLevel(level, "")

	switch *family {
	case "rook":
		runFamily(types.RookDirections, *rookOut, *seed, *attempts, *maxExtraShift, *concurrency)
	case "bishop":
		runFamily(types.BishopDirections, *bishopOut, *seed, *attempts, *maxExtraShift, *concurrency)
	case "both":
		runFamily(types.RookDirections, *rookOut, *seed, *attempts, *maxExtraShift, *concurrency)
		runFamily(types.BishopDirections, *bishopOut, *seed+1, *attempts, *maxExtraShift, *concurrency)
	default:
		log.Fatalf("magicgen: unknown -family %q, want rook|bishop|both", *family)
	}
}

func runFamily(dirs [4]types.Direction, outPath string, seed uint64, attempts int, maxExtraShift uint, concurrency int64) {
	r := magicsearch.NewRunner(dirs, seed, attempts, maxExtraShift, concurrency)
	if err := r.Run(outPath); err != nil {
		log.Fatalf("magicgen: %v", err)
	}
}
