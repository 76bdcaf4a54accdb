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

package main

import (
	"flag"

	golog "github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/config"
	"github.com/dgrco/ironpawn/internal/logging"
	"github.com/dgrco/ironpawn/internal/uci"
)

func main() {
	configFile := flag.String("config", "./ironpawn.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	rookMagics := flag.String("rookmagics", "", "path to rook-magics.out (overrides config file)")
	bishopMagics := flag.String("bishopmagics", "", "path to bishop-magics.out (overrides config file)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) for the duration of the run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *rookMagics != "" {
		config.Settings.Magic.RookMagicFile = *rookMagics
	}
	if *bishopMagics != "" {
		config.Settings.Magic.BishopMagicFile = *bishopMagics
	}

	level := golog.INFO
	if lvl, ok := config.LogLevels[*logLvl]; ok {
		level = golog.Level(lvl)
	}
	logging.GetLog(uci.EngineName, level)
	// uci's package-level logger already installed the shared backend at
	// INFO during package initialization; apply the flag's level.
	golog.SetLevel(level, "")

	idx := attacks.LoadIndex(config.Settings.Magic.RookMagicFile, config.Settings.Magic.BishopMagicFile)

	h := uci.NewHandler(idx)
	h.Loop()
}
