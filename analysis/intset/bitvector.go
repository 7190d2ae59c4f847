// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intset

import "math/bits"

const wordBits = 64

// A BitVector is a growable vector of bits indexed by nonnegative integers.
// The zero value is an empty vector ready for use.
type BitVector struct {
	words []uint64
}

// Set sets bit i, growing the vector if necessary.
func (b *BitVector) Set(i int) {
	checkNonNegative(i)
	w := i / wordBits
	for w >= len(b.words) {
		b.words = append(b.words, 0)
	}
	b.words[w] |= 1 << uint(i%wordBits)
}

// Clear clears bit i. Clearing a bit beyond the end of the vector is a no-op.
func (b *BitVector) Clear(i int) {
	checkNonNegative(i)
	w := i / wordBits
	if w < len(b.words) {
		b.words[w] &^= 1 << uint(i%wordBits)
	}
}

// Get returns the value of bit i. Bits beyond the end of the vector are 0.
func (b *BitVector) Get(i int) bool {
	checkNonNegative(i)
	w := i / wordBits
	return w < len(b.words) && b.words[w]&(1<<uint(i%wordBits)) != 0
}

// Count returns the number of set bits.
func (b *BitVector) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEachSetBit calls f on the index of every set bit, in increasing order.
func (b *BitVector) ForEachSetBit(f func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			f(wi*wordBits + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}
