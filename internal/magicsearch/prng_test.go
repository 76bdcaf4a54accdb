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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrnGDeterministic(t *testing.T) {
	a := newPrnG(42)
	b := newPrnG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.rand64(), b.rand64())
	}
}

func TestPrnGVariesWithSeed(t *testing.T) {
	a := newPrnG(1)
	b := newPrnG(2)
	assert.NotEqual(t, a.rand64(), b.rand64())
}

func TestSparseRandIsSparse(t *testing.T) {
	r := newPrnG(1070372)
	var total int
	const draws = 200
	for i := 0; i < draws; i++ {
		total += bits.OnesCount64(r.sparseRand())
	}
	avg := float64(total) / draws
	assert.Less(t, avg, 16.0, "AND of three draws should be much sparser than a uniform 64-bit value")
}
