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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearToggleHas(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(SqE4))

	b = b.SetBit(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())

	b = b.Toggle(SqE4)
	assert.False(t, b.Has(SqE4))

	b = b.SetBit(SqE4).SetBit(SqA1)
	assert.Equal(t, 2, b.PopCount())

	b = b.ClearBit(SqE4)
	assert.False(t, b.Has(SqE4))
	assert.True(t, b.Has(SqA1))
}

func TestBitboardLsbMsb(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
	assert.Equal(t, SqNone, BbZero.Msb())

	b := SqH1.Bb() | SqA8.Bb()
	assert.Equal(t, SqH1, b.Lsb())
	assert.Equal(t, SqA8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqD4.Bb() | SqE4.Bb()
	first := b.PopLsb()
	second := b.PopLsb()
	assert.ElementsMatch(t, []Square{SqD4, SqE4}, []Square{first, second})
	assert.Equal(t, BbZero, b)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestBitboardPopCountAll(t *testing.T) {
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 0, BbZero.PopCount())
}
