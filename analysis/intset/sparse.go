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
	"fmt"
	"sort"
	"strings"
)

// A SparseIntSet is a set of nonnegative integers backed by a sorted slice.
// It is the encoding of choice for small sets; membership is a binary search
// and iteration is a linear scan in increasing order.
type SparseIntSet struct {
	elems []int
}

// Singleton returns the set {x}.
func Singleton(x int) *SparseIntSet {
	checkNonNegative(x)
	return &SparseIntSet{elems: []int{x}}
}

// Pair returns the set {x, y}. When x == y the result is a singleton.
func Pair(x int, y int) *SparseIntSet {
	checkNonNegative(x)
	checkNonNegative(y)
	if x == y {
		return Singleton(x)
	}
	if x > y {
		x, y = y, x
	}
	return &SparseIntSet{elems: []int{x, y}}
}

// Contains returns true when x is an element of the set
func (s *SparseIntSet) Contains(x int) bool {
	k := sort.SearchInts(s.elems, x)
	return k < len(s.elems) && s.elems[k] == x
}

// Size returns the number of elements in the set
func (s *SparseIntSet) Size() int {
	return len(s.elems)
}

// IsEmpty returns true when the set has no elements
func (s *SparseIntSet) IsEmpty() bool {
	return len(s.elems) == 0
}

// ForEach calls f on every element of the set, in increasing order
func (s *SparseIntSet) ForEach(f func(x int)) {
	for _, x := range s.elems {
		f(x)
	}
}

func (s *SparseIntSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for k, x := range s.elems {
		if k > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d", x)
	}
	b.WriteString("}")
	return b.String()
}

// A MutableSparseIntSet is a SparseIntSet that supports insertion and
// removal. Insertion keeps the backing slice sorted.
type MutableSparseIntSet struct {
	SparseIntSet
}

// NewMutableSparseIntSet returns an empty mutable sparse set with no spare
// capacity.
func NewMutableSparseIntSet() *MutableSparseIntSet {
	return &MutableSparseIntSet{}
}

// NewMutableSparseIntSetWithCapacity returns an empty mutable sparse set
// that has room for n elements before the backing slice grows.
func NewMutableSparseIntSetWithCapacity(n int) *MutableSparseIntSet {
	return &MutableSparseIntSet{SparseIntSet{elems: make([]int, 0, n)}}
}

// MakeMutableCopy returns a mutable sparse set holding the elements of s.
// A nil s yields an empty set.
func MakeMutableCopy(s IntSet) *MutableSparseIntSet {
	r := NewMutableSparseIntSet()
	if s != nil {
		r.elems = make([]int, 0, s.Size())
		s.ForEach(func(x int) { r.elems = append(r.elems, x) })
		sort.Ints(r.elems)
	}
	return r
}

// Add inserts x and returns true when the set changed
func (s *MutableSparseIntSet) Add(x int) bool {
	checkNonNegative(x)
	k := sort.SearchInts(s.elems, x)
	if k < len(s.elems) && s.elems[k] == x {
		return false
	}
	s.elems = append(s.elems, 0)
	copy(s.elems[k+1:], s.elems[k:])
	s.elems[k] = x
	return true
}

// Remove deletes x and returns true when the set changed
func (s *MutableSparseIntSet) Remove(x int) bool {
	k := sort.SearchInts(s.elems, x)
	if k >= len(s.elems) || s.elems[k] != x {
		return false
	}
	s.elems = append(s.elems[:k], s.elems[k+1:]...)
	return true
}
