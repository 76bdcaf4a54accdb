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

// Package uci handles the UCI protocol communication between a chess GUI
// and the engine core: reading commands from an input stream, applying
// them to a Board, and writing responses to an output stream.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	golog "github.com/op/go-logging"

	"github.com/dgrco/ironpawn/internal/attacks"
	"github.com/dgrco/ironpawn/internal/board"
	"github.com/dgrco/ironpawn/internal/config"
	"github.com/dgrco/ironpawn/internal/logging"
	"github.com/dgrco/ironpawn/internal/search"
	"github.com/dgrco/ironpawn/internal/types"
)

var log = logging.GetLog("uci", golog.INFO)

// EngineName and EngineAuthor identify the engine to the UCI ui, confirmed
// against original_source/src/uci.c's handle_uci_init response.
const (
	EngineName   = "ironpawn"
	EngineAuthor = "Dante Grieco"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler owns the Board and AttackIndex a UCI session operates on, and
// the input/output streams it talks over.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	idx   *attacks.Index
	board *board.Board
}

// NewHandler creates a Handler reading from stdin and writing to stdout,
// with the board in the standard starting position.
func NewHandler(idx *attacks.Index) *Handler {
	return &Handler{
		InIo:  bufio.NewScanner(os.Stdin),
		OutIo: bufio.NewWriter(os.Stdout),
		idx:   idx,
		board: board.New(),
	}
}

// Loop reads and handles commands until "quit" is received or the input
// stream ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line, for tests and debugging; it returns
// whatever the handler would have written in response.
func (h *Handler) Command(cmd string) string {
	var buf strings.Builder
	h.OutIo = bufio.NewWriter(&buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	return buf.String()
}

// handle processes one line and reports whether the session should end.
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	log.Debugf("<< %s", cmd)

	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	default:
		h.send(fmt.Sprintf("Unknown command: %s", cmd))
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", EngineName))
	h.send(fmt.Sprintf("id author %s", EngineAuthor))
	h.send("uciok")
}

// positionCommand implements `position [startpos|fen <FEN>] [moves ...]`.
// The moves tail is accepted and replayed verbatim with Board.Make: only
// the restricted move set this core generates is ever expected there.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) <= 1 {
		return
	}

	var newBoard *board.Board
	var movesIdx int

	switch tokens[1] {
	case "startpos":
		newBoard = board.New()
		movesIdx = indexOf(tokens, "moves")
	case "fen":
		fenIdx := 2
		movesIdx = indexOf(tokens, "moves")
		end := len(tokens)
		if movesIdx != -1 {
			end = movesIdx
		}
		fen := strings.Join(tokens[fenIdx:end], " ")
		b, err := board.NewFromFen(fen)
		if err != nil {
			h.send(fmt.Sprintf("Unknown command: %s", strings.Join(tokens, " ")))
			return
		}
		newBoard = b
	default:
		h.send(fmt.Sprintf("Unknown command: %s", strings.Join(tokens, " ")))
		return
	}

	h.board = newBoard
	if movesIdx != -1 && movesIdx+1 < len(tokens) {
		for _, mv := range tokens[movesIdx+1:] {
			h.applyMove(mv)
		}
	}
}

func (h *Handler) applyMove(mv string) {
	if len(mv) < 4 {
		return
	}
	from := types.MakeSquare(mv[0:2])
	to := types.MakeSquare(mv[2:4])
	if !from.IsValid() || !to.IsValid() {
		return
	}
	h.board.Make(from, to)
}

// goCommand implements `go [depth N] [movetime N] [wtime N] [btime N]
// [turn C]`. movetime/wtime/btime tokens are accepted and ignored: this
// core searches to a fixed depth only.
func (h *Handler) goCommand(tokens []string) {
	depth := config.Settings.Search.DefaultDepth
	if i := indexOf(tokens, "depth"); i != -1 && i+1 < len(tokens) {
		if d, err := strconv.Atoi(tokens[i+1]); err == nil {
			depth = d
		}
	}

	side := sideToMoveFromTokens(tokens)

	best, score := search.Search(h.board, h.idx, depth, side)
	h.send(fmt.Sprintf("info score %d", score))
	h.send(fmt.Sprintf("bestmove %s", best.String()))
}

// sideToMoveFromTokens reads the optional `turn` token. original_source
// passes the color as its raw enum value (WHITE=8, BLACK=16); any other
// value, or a missing token, defaults to White exactly as the C UCI layer
// does.
func sideToMoveFromTokens(tokens []string) types.Color {
	i := indexOf(tokens, "turn")
	if i == -1 || i+1 >= len(tokens) {
		return types.White
	}
	v, err := strconv.Atoi(tokens[i+1])
	if err != nil {
		return types.White
	}
	switch v {
	case 16:
		return types.Black
	default:
		return types.White
	}
}

func indexOf(tokens []string, s string) int {
	for i, t := range tokens {
		if t == s {
			return i
		}
	}
	return -1
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
