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

// Package config holds globally available configuration values, either
// left at their defaults or read from a TOML config file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/dgrco/ironpawn/internal/util"
)

// LogLevels maps config-file log level names to op/go-logging levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// globally available config values, overridable by the config file.
var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute.
	ConfFile = "./ironpawn.toml"

	// LogLevel is the general log level name (see LogLevels).
	LogLevel = "info"

	// SearchLogLevel is a separate log level name for search internals. No
	// package reads it; the search package has no logger of its own.
	SearchLogLevel = "info"

	// Settings is the structured configuration decoded from the file.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Magic  magicConfiguration
}

type searchConfiguration struct {
	// DefaultDepth is the search depth used by `go` when no `depth` token
	// is given, matching the UCI surface's documented default.
	DefaultDepth int
}

type magicConfiguration struct {
	RookMagicFile   string
	BishopMagicFile string
}

func init() {
	Settings.Search.DefaultDepth = 6
	Settings.Magic.RookMagicFile = "rook-magics.out"
	Settings.Magic.BishopMagicFile = "bishop-magics.out"
}

// Setup reads the config file (if present) and applies overrides on top of
// the compiled-in defaults. A missing config file is not an error: it is
// reported through the standard library logger and defaults are kept.
func Setup() {
	if initialized {
		return
	}
	initialized = true

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Printf("config file %q not found, using defaults: %v", ConfFile, err)
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Printf("config file %q could not be parsed, using defaults: %v", path, err)
	}
}
