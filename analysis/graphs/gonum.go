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
	"fmt"

	gonumgraph "gonum.org/v1/gonum/graph"
)

var _ gonumgraph.Directed = DirectedView[int]{}

// A DirectedView is an abstraction over a SlowSparseNumberedGraph to work with existing graph
// libraries. It implements the methods to satisfy yourbasic's graph.Iterator and gonum's
// graph.Directed, with node IDs equal to node numbers.
//
// The view aliases the underlying graph; it observes later mutations.
type DirectedView[T comparable] struct {
	g *SlowSparseNumberedGraph[T]
}

// NewDirectedView returns a view of g usable with gonum and yourbasic algorithms.
func NewDirectedView[T comparable](g *SlowSparseNumberedGraph[T]) DirectedView[T] {
	return DirectedView[T]{g: g}
}

// Order implements the graph.Iterator interface for the DirectedView
func (v DirectedView[T]) Order() int {
	return v.g.NumberOfNodes()
}

// Visit implements the graph.Iterator interface for the DirectedView
func (v DirectedView[T]) Visit(x int, do func(w int, c int64) (skip bool)) (aborted bool) {
	for _, w := range v.g.succNumbers(x) {
		if do(w, 1) {
			return true
		}
	}
	return false
}

// *************** Directed interface implementation **********************

// Node returns the node with the given ID, or nil when no node has it
func (v DirectedView[T]) Node(id int64) gonumgraph.Node {
	if id < 0 || id >= int64(v.g.NumberOfNodes()) {
		return nil
	}
	return viewNode[T]{number: int(id), value: v.g.Node(int(id))}
}

// Nodes returns the set of nodes in the graph
func (v DirectedView[T]) Nodes() gonumgraph.Nodes {
	n := v.g.NumberOfNodes()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return &nodeSet[T]{g: v.g, ids: ids, cur: -1}
}

// From returns the set of nodes reachable from the id along one edge
func (v DirectedView[T]) From(id int64) gonumgraph.Nodes {
	ids := v.g.succNumbers(int(id))
	if len(ids) == 0 {
		return gonumgraph.Empty
	}
	return &nodeSet[T]{g: v.g, ids: ids, cur: -1}
}

// To returns the set of nodes with an edge to the id
func (v DirectedView[T]) To(id int64) gonumgraph.Nodes {
	var ids []int
	if s := v.g.edges.predecessors.Related(int(id)); s != nil {
		s.ForEach(func(x int) { ids = append(ids, x) })
	}
	if len(ids) == 0 {
		return gonumgraph.Empty
	}
	return &nodeSet[T]{g: v.g, ids: ids, cur: -1}
}

// HasEdgeBetween returns a boolean indicating whether an edge exists between the two node
// identifiers, ignoring direction
func (v DirectedView[T]) HasEdgeBetween(xid int64, yid int64) bool {
	return v.g.edges.successors.Contains(int(xid), int(yid)) ||
		v.g.edges.successors.Contains(int(yid), int(xid))
}

// HasEdgeFromTo returns a boolean indicating whether a directed edge u -> v exists
func (v DirectedView[T]) HasEdgeFromTo(uid int64, vid int64) bool {
	return v.g.edges.successors.Contains(int(uid), int(vid))
}

// Edge returns the edge between the two identifiers (nil if none exists)
func (v DirectedView[T]) Edge(uid int64, vid int64) gonumgraph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return viewEdge[T]{
		from: viewNode[T]{number: int(uid), value: v.g.Node(int(uid))},
		to:   viewNode[T]{number: int(vid), value: v.g.Node(int(vid))},
	}
}

// *************** Nodes implementation **********************

// viewNode wraps a numbered node to implement the graph.Node interface
type viewNode[T comparable] struct {
	number int
	value  T
}

// ID returns the id of the node
func (n viewNode[T]) ID() int64 {
	return int64(n.number)
}

func (n viewNode[T]) String() string {
	return fmt.Sprintf("%v", n.value)
}

// nodeSet implements the graph.Nodes interface, an iterator over a set of node numbers
type nodeSet[T comparable] struct {
	g *SlowSparseNumberedGraph[T]

	// ids is the set of node numbers in the iterator
	ids []int

	// cur is the current index of the iterator; -1 before the first call to Next
	// invariant: -1 <= cur <= len(ids)
	cur int
}

// Next moves the iterator to the next node and returns true if one exists.
func (ns *nodeSet[T]) Next() bool {
	if ns.cur+1 < len(ns.ids) {
		ns.cur++
		return true
	}
	return false
}

// Len returns the number of nodes remaining in the iterator
func (ns *nodeSet[T]) Len() int {
	return len(ns.ids) - ns.cur - 1
}

// Reset repositions the iterator before the first node
func (ns *nodeSet[T]) Reset() {
	ns.cur = -1
}

// Node returns the current node in the set
func (ns *nodeSet[T]) Node() gonumgraph.Node {
	return viewNode[T]{number: ns.ids[ns.cur], value: ns.g.Node(ns.ids[ns.cur])}
}

// *************** Edge implementation **********************

// viewEdge implements the graph.Edge interface
type viewEdge[T comparable] struct {
	from viewNode[T]
	to   viewNode[T]
}

// From returns the origin of the edge
func (e viewEdge[T]) From() gonumgraph.Node {
	return e.from
}

// To returns the destination of the edge
func (e viewEdge[T]) To() gonumgraph.Node {
	return e.to
}

// ReversedEdge returns a new value representing the reversed edge
func (e viewEdge[T]) ReversedEdge() gonumgraph.Edge {
	return viewEdge[T]{from: e.to, to: e.from}
}
