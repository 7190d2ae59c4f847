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

import "sort"

// A SparseVector is a vector indexable by nonnegative integers that only
// materializes the indices that have been set. Indices and values are kept
// in two parallel slices sorted by index, so iteration with ForEachPair
// walks both in lockstep without random access.
//
// The zero value is an empty vector ready for use.
type SparseVector[T any] struct {
	indices []int
	values  []T
}

// find returns the position of index i, or the insertion position and false
// when i has not been set.
func (v *SparseVector[T]) find(i int) (int, bool) {
	k := sort.SearchInts(v.indices, i)
	return k, k < len(v.indices) && v.indices[k] == i
}

// Get returns the value at index i, or the zero value of T when index i has
// not been set.
func (v *SparseVector[T]) Get(i int) T {
	if k, ok := v.find(i); ok {
		return v.values[k]
	}
	var zero T
	return zero
}

// Set stores x at index i.
func (v *SparseVector[T]) Set(i int, x T) {
	checkNonNegative(i)
	k, ok := v.find(i)
	if ok {
		v.values[k] = x
		return
	}
	v.indices = append(v.indices, 0)
	copy(v.indices[k+1:], v.indices[k:])
	v.indices[k] = i
	var zero T
	v.values = append(v.values, zero)
	copy(v.values[k+1:], v.values[k:])
	v.values[k] = x
}

// Size returns the number of indices that have been set.
func (v *SparseVector[T]) Size() int {
	return len(v.indices)
}

// ForEachPair calls f on every (index, value) pair in increasing index
// order, iterating the dense internal storage directly.
func (v *SparseVector[T]) ForEachPair(f func(i int, x T)) {
	for k, i := range v.indices {
		f(i, v.values[k])
	}
}
