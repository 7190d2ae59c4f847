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
	"strings"
)

// A RowKind selects the encoding of one row of a NaturalRelation.
type RowKind byte

const (
	// Simple encodes a row as a sorted slice with a few words of spare
	// capacity, optimizing for rows that see a handful of insertions.
	Simple RowKind = iota

	// SimpleSpaceStingy encodes a row as a sorted slice with no spare
	// capacity, optimizing for space over insertion cost.
	SimpleSpaceStingy

	// TwoLevel encodes a row as a two-level sparse bit vector, optimizing
	// for rows that grow large.
	TwoLevel
)

// simpleRowMaxSize is the row size past which a simple row is promoted to
// the two-level encoding.
const simpleRowMaxSize = 8

var (
	_ MutableIntSet = (*MutableSparseIntSet)(nil)
	_ MutableIntSet = (*BitVectorIntSet)(nil)
	_ MutableIntSet = (*TwoLevelIntSet)(nil)
)

// A NaturalRelation is a set of pairs (x, y) of nonnegative integers,
// expected to be dense in x and sparse in y. Rows are materialized lazily:
// an absent row is the empty set.
//
// The constructor's implementation vector assigns a preferred encoding to
// rows 0 .. len(impl)-1; rows beyond it use the delegate encoding. Simple
// rows that outgrow simpleRowMaxSize are promoted to the two-level encoding.
type NaturalRelation struct {
	// rows[x] is the set of y related to x; nil when empty
	rows []MutableIntSet

	impl     []RowKind
	delegate RowKind
}

// NewNaturalRelation returns an empty relation with the given per-row
// implementation vector and delegate encoding.
func NewNaturalRelation(impl []RowKind, delegate RowKind) *NaturalRelation {
	return &NaturalRelation{impl: impl, delegate: delegate}
}

// NewTwoLevelRelation returns an empty relation where every row uses the
// two-level encoding. This is the conservative default when nothing is known
// about row sizes.
func NewTwoLevelRelation() *NaturalRelation {
	return NewNaturalRelation(nil, TwoLevel)
}

// NewStingyRelation returns an empty relation where the first row is
// space-stingy and the remaining rows use the two-level encoding, the
// configuration of choice for the path-edge stores.
func NewStingyRelation() *NaturalRelation {
	return NewNaturalRelation([]RowKind{SimpleSpaceStingy}, TwoLevel)
}

func (r *NaturalRelation) kindFor(x int) RowKind {
	if x < len(r.impl) {
		return r.impl[x]
	}
	return r.delegate
}

func makeRow(kind RowKind) MutableIntSet {
	switch kind {
	case TwoLevel:
		return NewTwoLevelIntSet()
	case SimpleSpaceStingy:
		return NewMutableSparseIntSet()
	default:
		return NewMutableSparseIntSetWithCapacity(simpleRowMaxSize)
	}
}

// Add inserts the pair (x, y) and returns true when the relation changed.
// The row for x is materialized, and possibly promoted, as needed.
func (r *NaturalRelation) Add(x int, y int) bool {
	checkNonNegative(x)
	checkNonNegative(y)
	for x >= len(r.rows) {
		r.rows = append(r.rows, nil)
	}
	row := r.rows[x]
	if row == nil {
		row = makeRow(r.kindFor(x))
		r.rows[x] = row
	}
	changed := row.Add(y)
	if s, ok := row.(*MutableSparseIntSet); ok && s.Size() > simpleRowMaxSize {
		promoted := NewTwoLevelIntSet()
		s.ForEach(func(e int) { promoted.Add(e) })
		r.rows[x] = promoted
	}
	return changed
}

// Remove deletes the pair (x, y); absent pairs are a no-op.
func (r *NaturalRelation) Remove(x int, y int) {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return
	}
	r.rows[x].Remove(y)
	if r.rows[x].IsEmpty() {
		r.rows[x] = nil
	}
}

// RemoveAll deletes every pair with first coordinate x.
func (r *NaturalRelation) RemoveAll(x int) {
	if x >= 0 && x < len(r.rows) {
		r.rows[x] = nil
	}
}

// Contains returns true when the pair (x, y) is in the relation.
func (r *NaturalRelation) Contains(x int, y int) bool {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return false
	}
	return r.rows[x].Contains(y)
}

// RelatedCount returns the number of y related to x.
func (r *NaturalRelation) RelatedCount(x int) int {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return 0
	}
	return r.rows[x].Size()
}

// Related returns the set of y related to x, or nil when it is empty. The
// returned set aliases live storage; callers must not mutate it and must not
// retain it across mutations of the relation.
func (r *NaturalRelation) Related(x int) IntSet {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return nil
	}
	return r.rows[x]
}

// ForEachPair calls f on every pair (x, y) of the relation. Each pair is
// visited exactly once; the order is unspecified across mutations.
func (r *NaturalRelation) ForEachPair(f func(x int, y int)) {
	for x, row := range r.rows {
		if row == nil {
			continue
		}
		rx := x
		row.ForEach(func(y int) { f(rx, y) })
	}
}

func (r *NaturalRelation) String() string {
	var b strings.Builder
	r.ForEachPair(func(x int, y int) {
		fmt.Fprintf(&b, "(%d,%d) ", x, y)
	})
	return strings.TrimSpace(b.String())
}
