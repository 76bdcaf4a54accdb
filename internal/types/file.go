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

package types

// File represents the file of a square as it appears in the packed square
// index: 0 is the h-file, 7 is the a-file (index mod 8). This is the
// opposite of the usual a-to-h reading order and exists only because the
// engine's square numbering runs h1..a1..h8..a8; human facing code should
// use Letter() to get the conventional a..h character.
type File uint8

const (
	FileH File = iota
	FileG
	FileF
	FileE
	FileD
	FileC
	FileB
	FileA
	FileLength
)

// IsValid reports whether f is one of the eight files.
func (f File) IsValid() bool {
	return f < FileLength
}

// Letter returns the conventional file letter ('a'..'h').
func (f File) Letter() byte {
	return 'a' + byte(FileLength-1-f)
}

// FileFromLetter returns the File for a conventional file letter ('a'..'h')
// or FileLength if c is not a valid file letter.
func FileFromLetter(c byte) File {
	if c < 'a' || c > 'h' {
		return FileLength
	}
	return File('h' - c)
}

// Rank represents the rank of a square: 0 is rank 1, 7 is rank 8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
)

// IsValid reports whether r is one of the eight ranks.
func (r Rank) IsValid() bool {
	return r < RankLength
}

// Digit returns the conventional rank digit ('1'..'8').
func (r Rank) Digit() byte {
	return '1' + byte(r)
}

// RankFromDigit returns the Rank for a conventional rank digit ('1'..'8')
// or RankLength if c is not a valid rank digit.
func RankFromDigit(c byte) Rank {
	if c < '1' || c > '8' {
		return RankLength
	}
	return Rank(c - '1')
}
