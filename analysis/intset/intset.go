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

import "fmt"

// An IntSet is a read-only set of nonnegative integers. The sets returned by
// query operations in this module alias live interior storage: they are
// invalidated by the next mutation of the owning structure and must not be
// retained across mutations.
type IntSet interface {
	// Contains returns true when x is an element of the set
	Contains(x int) bool

	// Size returns the number of elements in the set
	Size() int

	// IsEmpty returns true when the set has no elements
	IsEmpty() bool

	// ForEach calls f on every element of the set, in unspecified order
	ForEach(f func(x int))
}

// A MutableIntSet is an IntSet that supports insertion and removal.
type MutableIntSet interface {
	IntSet

	// Add inserts x and returns true when the set changed
	Add(x int) bool

	// Remove deletes x and returns true when the set changed
	Remove(x int) bool
}

// SameValue returns true when a and b contain exactly the same elements.
// A nil set is treated as empty.
func SameValue(a IntSet, b IntSet) bool {
	if sizeOf(a) != sizeOf(b) {
		return false
	}
	same := true
	if a != nil {
		a.ForEach(func(x int) {
			if !b.Contains(x) {
				same = false
			}
		})
	}
	return same
}

func sizeOf(s IntSet) int {
	if s == nil {
		return 0
	}
	return s.Size()
}

func checkNonNegative(x int) {
	if x < 0 {
		panic(fmt.Sprintf("intset: negative element %d", x))
	}
}
