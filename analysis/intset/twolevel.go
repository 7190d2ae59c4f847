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

import (
	"math/bits"
	"sort"
)

const (
	blockShift = 8
	blockBits  = 1 << blockShift // elements per block
	blockWords = blockBits / wordBits
	blockMask  = blockBits - 1
)

// block holds the membership bits for the blockBits integers starting at
// base. base is always a multiple of blockBits.
type block struct {
	base  int
	words [blockWords]uint64
}

// A TwoLevelIntSet is a MutableIntSet encoded as a sorted slice of sparse
// bit-vector blocks. It suits large sets whose elements cluster: membership
// is a binary search over blocks plus a bit test, and empty regions cost
// nothing. Blocks that become empty after removal are discarded.
type TwoLevelIntSet struct {
	blocks []block
	size   int
}

// NewTwoLevelIntSet returns an empty two-level set.
func NewTwoLevelIntSet() *TwoLevelIntSet {
	return &TwoLevelIntSet{}
}

// findBlock returns the position of the block with the given base, or the
// insertion position and false when no such block exists.
func (s *TwoLevelIntSet) findBlock(base int) (int, bool) {
	k := sort.Search(len(s.blocks), func(i int) bool { return s.blocks[i].base >= base })
	return k, k < len(s.blocks) && s.blocks[k].base == base
}

// Contains returns true when x is an element of the set
func (s *TwoLevelIntSet) Contains(x int) bool {
	if x < 0 {
		return false
	}
	k, ok := s.findBlock(x &^ blockMask)
	if !ok {
		return false
	}
	o := x & blockMask
	return s.blocks[k].words[o/wordBits]&(1<<uint(o%wordBits)) != 0
}

// Size returns the number of elements in the set
func (s *TwoLevelIntSet) Size() int {
	return s.size
}

// IsEmpty returns true when the set has no elements
func (s *TwoLevelIntSet) IsEmpty() bool {
	return s.size == 0
}

// ForEach calls f on every element of the set, in increasing order
func (s *TwoLevelIntSet) ForEach(f func(x int)) {
	for bi := range s.blocks {
		b := &s.blocks[bi]
		for wi, w := range b.words {
			for w != 0 {
				f(b.base + wi*wordBits + bits.TrailingZeros64(w))
				w &= w - 1
			}
		}
	}
}

// Add inserts x and returns true when the set changed
func (s *TwoLevelIntSet) Add(x int) bool {
	checkNonNegative(x)
	base := x &^ blockMask
	k, ok := s.findBlock(base)
	if !ok {
		s.blocks = append(s.blocks, block{})
		copy(s.blocks[k+1:], s.blocks[k:])
		s.blocks[k] = block{base: base}
	}
	o := x & blockMask
	m := uint64(1) << uint(o%wordBits)
	if s.blocks[k].words[o/wordBits]&m != 0 {
		return false
	}
	s.blocks[k].words[o/wordBits] |= m
	s.size++
	return true
}

// Remove deletes x and returns true when the set changed
func (s *TwoLevelIntSet) Remove(x int) bool {
	if x < 0 {
		return false
	}
	k, ok := s.findBlock(x &^ blockMask)
	if !ok {
		return false
	}
	o := x & blockMask
	m := uint64(1) << uint(o%wordBits)
	if s.blocks[k].words[o/wordBits]&m == 0 {
		return false
	}
	s.blocks[k].words[o/wordBits] &^= m
	s.size--
	empty := true
	for _, w := range s.blocks[k].words {
		if w != 0 {
			empty = false
			break
		}
	}
	if empty {
		s.blocks = append(s.blocks[:k], s.blocks[k+1:]...)
	}
	return true
}
