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

package graphs

import (
	"errors"
	"fmt"

	"github.com/awslabs/ar-ifds-tools/analysis/intset"
	"github.com/awslabs/ar-ifds-tools/internal/funcutil"
)

// ErrNotInGraph is returned by edge-manager operations when the node manager does not know one of
// the argument nodes. The operation has no effect.
var ErrNotInGraph = errors.New("node is not in graph")

// A NumberedEdgeManager tracks the edges between numbered nodes.
type NumberedEdgeManager[T comparable] interface {
	// AddEdge inserts the edge src -> dst; idempotent
	AddEdge(src T, dst T) error

	// HasEdge returns true when the edge src -> dst exists; false when either node is unknown
	HasEdge(src T, dst T) bool

	// RemoveEdge deletes the edge src -> dst; removing an absent edge is a no-op
	RemoveEdge(src T, dst T) error

	// RemoveOutgoingEdges deletes every edge out of n
	RemoveOutgoingEdges(n T) error

	// RemoveIncomingEdges deletes every edge into n
	RemoveIncomingEdges(n T) error

	// RemoveAllIncidentEdges deletes every edge incident on n
	RemoveAllIncidentEdges(n T) error

	// SuccNodes returns the successors of n
	SuccNodes(n T) ([]T, error)

	// PredNodes returns the predecessors of n
	PredNodes(n T) ([]T, error)

	// SuccNodeCount returns the number of successors of n
	SuccNodeCount(n T) (int, error)

	// PredNodeCount returns the number of predecessors of n
	PredNodeCount(n T) (int, error)

	// SuccNodeNumbers returns the live set of successor numbers of n, nil when empty
	SuccNodeNumbers(n T) (intset.IntSet, error)

	// PredNodeNumbers returns the live set of predecessor numbers of n, nil when empty
	PredNodeNumbers(n T) (intset.IntSet, error)

	// HasAnySuccessor returns true when the node with the given number has at least one successor
	HasAnySuccessor(number int) bool
}

var _ NumberedEdgeManager[int] = (*SparseNumberedEdgeManager[int])(nil)

// A SparseNumberedEdgeManager tracks edges for nodes that have numbers. It keeps a successor and a
// predecessor relation in lockstep, so that (x, y) is in successors exactly when (y, x) is in
// predecessors, and caches in a bit vector which nodes have a nonempty successor row.
type SparseNumberedEdgeManager[T comparable] struct {
	nodes NumberedNodeManager[T]

	successors   *intset.NaturalRelation
	predecessors *intset.NaturalRelation

	// cache this state here for efficiency
	hasSuccessor intset.BitVector

	// audit enables invariant verification after every mutation (slow)
	audit bool
}

// NewSparseNumberedEdgeManager returns an empty edge manager over the nodes tracked by nodeManager.
// The first normalCase node numbers use the simple row encoding, a time optimization for nodes with
// few out edges; rows beyond that use the delegate encoding.
func NewSparseNumberedEdgeManager[T comparable](nodeManager NumberedNodeManager[T], normalCase int,
	delegate intset.RowKind) *SparseNumberedEdgeManager[T] {
	var impl []intset.RowKind
	if normalCase > 0 {
		impl = make([]intset.RowKind, normalCase)
		for k := range impl {
			impl[k] = intset.Simple
		}
	}
	return &SparseNumberedEdgeManager[T]{
		nodes:        nodeManager,
		successors:   intset.NewNaturalRelation(impl, delegate),
		predecessors: intset.NewNaturalRelation(impl, delegate),
	}
}

// SetAudit toggles invariant verification after every mutation. An invariant breach panics, as it
// indicates a bug.
func (e *SparseNumberedEdgeManager[T]) SetAudit(audit bool) {
	e.audit = audit
}

func (e *SparseNumberedEdgeManager[T]) number(n T) (int, error) {
	x := e.nodes.Number(n)
	if x < 0 {
		return -1, fmt.Errorf("%v: %w", n, ErrNotInGraph)
	}
	return x, nil
}

// AddEdge inserts the edge src -> dst; idempotent
func (e *SparseNumberedEdgeManager[T]) AddEdge(src T, dst T) error {
	x, err := e.number(src)
	if err != nil {
		return fmt.Errorf("src %w", err)
	}
	y, err := e.number(dst)
	if err != nil {
		return fmt.Errorf("dst %w", err)
	}
	e.predecessors.Add(y, x)
	e.successors.Add(x, y)
	e.hasSuccessor.Set(x)
	e.checkInvariants()
	return nil
}

// HasEdge returns true when the edge src -> dst exists; false when either node is unknown
func (e *SparseNumberedEdgeManager[T]) HasEdge(src T, dst T) bool {
	x := e.nodes.Number(src)
	y := e.nodes.Number(dst)
	if x < 0 || y < 0 {
		return false
	}
	return e.successors.Contains(x, y)
}

// RemoveEdge deletes the edge src -> dst; removing an absent edge is a no-op
func (e *SparseNumberedEdgeManager[T]) RemoveEdge(src T, dst T) error {
	x, err := e.number(src)
	if err != nil {
		return fmt.Errorf("src %w", err)
	}
	y, err := e.number(dst)
	if err != nil {
		return fmt.Errorf("dst %w", err)
	}
	e.successors.Remove(x, y)
	if e.successors.RelatedCount(x) == 0 {
		e.hasSuccessor.Clear(x)
	}
	e.predecessors.Remove(y, x)
	e.checkInvariants()
	return nil
}

// RemoveOutgoingEdges deletes every edge out of n
func (e *SparseNumberedEdgeManager[T]) RemoveOutgoingEdges(n T) error {
	x, err := e.number(n)
	if err != nil {
		return err
	}
	e.removeOutgoing(x)
	e.checkInvariants()
	return nil
}

func (e *SparseNumberedEdgeManager[T]) removeOutgoing(x int) {
	if succ := e.successors.Related(x); succ != nil {
		succ.ForEach(func(y int) {
			e.predecessors.Remove(y, x)
		})
	}
	e.successors.RemoveAll(x)
	e.hasSuccessor.Clear(x)
}

// RemoveIncomingEdges deletes every edge into n
func (e *SparseNumberedEdgeManager[T]) RemoveIncomingEdges(n T) error {
	y, err := e.number(n)
	if err != nil {
		return err
	}
	e.removeIncoming(y)
	e.checkInvariants()
	return nil
}

func (e *SparseNumberedEdgeManager[T]) removeIncoming(y int) {
	if pred := e.predecessors.Related(y); pred != nil {
		pred.ForEach(func(x int) {
			e.successors.Remove(x, y)
			if e.successors.RelatedCount(x) == 0 {
				e.hasSuccessor.Clear(x)
			}
		})
	}
	e.predecessors.RemoveAll(y)
}

// RemoveAllIncidentEdges deletes every edge incident on n
func (e *SparseNumberedEdgeManager[T]) RemoveAllIncidentEdges(n T) error {
	x, err := e.number(n)
	if err != nil {
		return err
	}
	e.removeOutgoing(x)
	e.removeIncoming(x)
	e.hasSuccessor.Clear(x)
	e.checkInvariants()
	return nil
}

// SuccNodes returns the successors of n
func (e *SparseNumberedEdgeManager[T]) SuccNodes(n T) ([]T, error) {
	x, err := e.number(n)
	if err != nil {
		return nil, err
	}
	return e.realize(e.successors.Related(x)), nil
}

// PredNodes returns the predecessors of n
func (e *SparseNumberedEdgeManager[T]) PredNodes(n T) ([]T, error) {
	y, err := e.number(n)
	if err != nil {
		return nil, err
	}
	return e.realize(e.predecessors.Related(y)), nil
}

// realize materializes a set of node numbers as nodes.
func (e *SparseNumberedEdgeManager[T]) realize(s intset.IntSet) []T {
	if s == nil {
		return nil
	}
	var numbers []int
	s.ForEach(func(y int) { numbers = append(numbers, y) })
	return funcutil.Map(numbers, e.nodes.Node)
}

// SuccNodeCount returns the number of successors of n
func (e *SparseNumberedEdgeManager[T]) SuccNodeCount(n T) (int, error) {
	x, err := e.number(n)
	if err != nil {
		return 0, err
	}
	return e.successors.RelatedCount(x), nil
}

// PredNodeCount returns the number of predecessors of n
func (e *SparseNumberedEdgeManager[T]) PredNodeCount(n T) (int, error) {
	y, err := e.number(n)
	if err != nil {
		return 0, err
	}
	return e.predecessors.RelatedCount(y), nil
}

// SuccNodeNumbers returns the live set of successor numbers of n, nil when empty
func (e *SparseNumberedEdgeManager[T]) SuccNodeNumbers(n T) (intset.IntSet, error) {
	x, err := e.number(n)
	if err != nil {
		return nil, err
	}
	return e.successors.Related(x), nil
}

// PredNodeNumbers returns the live set of predecessor numbers of n, nil when empty
func (e *SparseNumberedEdgeManager[T]) PredNodeNumbers(n T) (intset.IntSet, error) {
	y, err := e.number(n)
	if err != nil {
		return nil, err
	}
	return e.predecessors.Related(y), nil
}

// HasAnySuccessor returns true when the node with the given number has at least one successor.
// This consults the cached bit vector rather than the successor relation.
func (e *SparseNumberedEdgeManager[T]) HasAnySuccessor(number int) bool {
	return number >= 0 && e.hasSuccessor.Get(number)
}

func (e *SparseNumberedEdgeManager[T]) String() string {
	return "Successors relation:\n" + e.successors.String()
}

// checkInvariants verifies the symmetry of the successor and predecessor relations and the
// hasSuccessor cache. Only active in audit mode.
func (e *SparseNumberedEdgeManager[T]) checkInvariants() {
	if !e.audit {
		return
	}
	e.successors.ForEachPair(func(x int, y int) {
		if !e.predecessors.Contains(y, x) {
			panic(fmt.Sprintf("graphs: edge (%d,%d) has no mirror in predecessors", x, y))
		}
		if !e.hasSuccessor.Get(x) {
			panic(fmt.Sprintf("graphs: hasSuccessor not set for %d", x))
		}
	})
	e.predecessors.ForEachPair(func(y int, x int) {
		if !e.successors.Contains(x, y) {
			panic(fmt.Sprintf("graphs: edge (%d,%d) has no mirror in successors", x, y))
		}
	})
	e.hasSuccessor.ForEachSetBit(func(x int) {
		if e.successors.RelatedCount(x) == 0 {
			panic(fmt.Sprintf("graphs: hasSuccessor set for %d with no successors", x))
		}
	})
}
