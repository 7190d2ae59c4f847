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

// A BitVectorIntSet is a MutableIntSet backed by a bit vector, with a cached
// element count. It is a good fit for dense sets of small integers, such as
// the basic-block numbers of a single procedure.
type BitVectorIntSet struct {
	bits BitVector
	size int
}

// NewBitVectorIntSet returns an empty bit-vector set.
func NewBitVectorIntSet() *BitVectorIntSet {
	return &BitVectorIntSet{}
}

// Contains returns true when x is an element of the set
func (s *BitVectorIntSet) Contains(x int) bool {
	if x < 0 {
		return false
	}
	return s.bits.Get(x)
}

// Size returns the number of elements in the set
func (s *BitVectorIntSet) Size() int {
	return s.size
}

// IsEmpty returns true when the set has no elements
func (s *BitVectorIntSet) IsEmpty() bool {
	return s.size == 0
}

// ForEach calls f on every element of the set, in increasing order
func (s *BitVectorIntSet) ForEach(f func(x int)) {
	s.bits.ForEachSetBit(f)
}

// Add inserts x and returns true when the set changed
func (s *BitVectorIntSet) Add(x int) bool {
	checkNonNegative(x)
	if s.bits.Get(x) {
		return false
	}
	s.bits.Set(x)
	s.size++
	return true
}

// Remove deletes x and returns true when the set changed
func (s *BitVectorIntSet) Remove(x int) bool {
	if x < 0 || !s.bits.Get(x) {
		return false
	}
	s.bits.Clear(x)
	s.size--
	return true
}
