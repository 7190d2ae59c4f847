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
	"github.com/awslabs/ar-ifds-tools/analysis/config"
	"github.com/awslabs/ar-ifds-tools/analysis/intset"
)

// A Graph is the read contract shared by directed graphs over nodes of type T.
type Graph[T comparable] interface {
	// ForEachNode calls f on every node of the graph
	ForEachNode(f func(n T))

	// SuccNodes returns the successors of n
	SuccNodes(n T) ([]T, error)
}

// A SlowSparseNumberedGraph is a graph of numbered nodes, expected to have a fairly sparse edge
// structure. Nodes are numbered densely from 0 in insertion order.
type SlowSparseNumberedGraph[T comparable] struct {
	nodes *SlowNumberedNodeManager[T]
	edges *SparseNumberedEdgeManager[T]
}

// NewSlowSparseNumberedGraph returns an empty graph. If normalOutCount == n, the edge manager
// eagerly chooses the simple row encoding for the first n node numbers, a time optimization when the
// "normal" number of out edges per node is known.
func NewSlowSparseNumberedGraph[T comparable](normalOutCount int) *SlowSparseNumberedGraph[T] {
	nodes := NewSlowNumberedNodeManager[T]()
	return &SlowSparseNumberedGraph[T]{
		nodes: nodes,
		edges: NewSparseNumberedEdgeManager[T](nodes, normalOutCount, intset.TwoLevel),
	}
}

// NewSlowSparseNumberedGraphFromConfig returns an empty graph configured from cfg:
// normal-out-degree pre-sizes the row encodings and audit-data-structures enables invariant
// verification after every mutation.
func NewSlowSparseNumberedGraphFromConfig[T comparable](cfg *config.Config) *SlowSparseNumberedGraph[T] {
	g := NewSlowSparseNumberedGraph[T](cfg.NormalOutDegree)
	g.edges.SetAudit(cfg.AuditDataStructures)
	return g
}

// AddNode inserts n and returns its number; idempotent.
func (g *SlowSparseNumberedGraph[T]) AddNode(n T) int {
	return g.nodes.AddNode(n)
}

// Number returns the number of node n, or -1 when n is not in the graph
func (g *SlowSparseNumberedGraph[T]) Number(n T) int {
	return g.nodes.Number(n)
}

// Node returns the node with the given number, or the zero value of T when no node has it
func (g *SlowSparseNumberedGraph[T]) Node(number int) T {
	return g.nodes.Node(number)
}

// NumberOfNodes returns the number of nodes in the graph
func (g *SlowSparseNumberedGraph[T]) NumberOfNodes() int {
	return g.nodes.NumberOfNodes()
}

// ForEachNode calls f on every node, in increasing number order
func (g *SlowSparseNumberedGraph[T]) ForEachNode(f func(n T)) {
	g.nodes.ForEachNode(f)
}

// AddEdge inserts the edge src -> dst; idempotent
func (g *SlowSparseNumberedGraph[T]) AddEdge(src T, dst T) error {
	return g.edges.AddEdge(src, dst)
}

// HasEdge returns true when the edge src -> dst exists
func (g *SlowSparseNumberedGraph[T]) HasEdge(src T, dst T) bool {
	return g.edges.HasEdge(src, dst)
}

// RemoveEdge deletes the edge src -> dst; removing an absent edge is a no-op
func (g *SlowSparseNumberedGraph[T]) RemoveEdge(src T, dst T) error {
	return g.edges.RemoveEdge(src, dst)
}

// RemoveOutgoingEdges deletes every edge out of n
func (g *SlowSparseNumberedGraph[T]) RemoveOutgoingEdges(n T) error {
	return g.edges.RemoveOutgoingEdges(n)
}

// RemoveIncomingEdges deletes every edge into n
func (g *SlowSparseNumberedGraph[T]) RemoveIncomingEdges(n T) error {
	return g.edges.RemoveIncomingEdges(n)
}

// RemoveAllIncidentEdges deletes every edge incident on n
func (g *SlowSparseNumberedGraph[T]) RemoveAllIncidentEdges(n T) error {
	return g.edges.RemoveAllIncidentEdges(n)
}

// SuccNodes returns the successors of n
func (g *SlowSparseNumberedGraph[T]) SuccNodes(n T) ([]T, error) {
	return g.edges.SuccNodes(n)
}

// PredNodes returns the predecessors of n
func (g *SlowSparseNumberedGraph[T]) PredNodes(n T) ([]T, error) {
	return g.edges.PredNodes(n)
}

// SuccNodeCount returns the number of successors of n
func (g *SlowSparseNumberedGraph[T]) SuccNodeCount(n T) (int, error) {
	return g.edges.SuccNodeCount(n)
}

// PredNodeCount returns the number of predecessors of n
func (g *SlowSparseNumberedGraph[T]) PredNodeCount(n T) (int, error) {
	return g.edges.PredNodeCount(n)
}

// SuccNodeNumbers returns the live set of successor numbers of n, nil when empty
func (g *SlowSparseNumberedGraph[T]) SuccNodeNumbers(n T) (intset.IntSet, error) {
	return g.edges.SuccNodeNumbers(n)
}

// PredNodeNumbers returns the live set of predecessor numbers of n, nil when empty
func (g *SlowSparseNumberedGraph[T]) PredNodeNumbers(n T) (intset.IntSet, error) {
	return g.edges.PredNodeNumbers(n)
}

// HasAnySuccessor returns true when the node with the given number has at least one successor
func (g *SlowSparseNumberedGraph[T]) HasAnySuccessor(number int) bool {
	return g.edges.HasAnySuccessor(number)
}

// succNumbers materializes the successor numbers of the node with the given number.
func (g *SlowSparseNumberedGraph[T]) succNumbers(number int) []int {
	var numbers []int
	if s := g.edges.successors.Related(number); s != nil {
		s.ForEach(func(y int) { numbers = append(numbers, y) })
	}
	return numbers
}

// Duplicate returns a fresh SlowSparseNumberedGraph with the same nodes and edges as g. All nodes
// are mirrored before any edge, so edge insertion cannot fail on an unknown endpoint.
func Duplicate[T comparable](g Graph[T]) (*SlowSparseNumberedGraph[T], error) {
	result := NewSlowSparseNumberedGraph[T](0)
	g.ForEachNode(func(n T) {
		result.AddNode(n)
	})
	var err error
	g.ForEachNode(func(n T) {
		if err != nil {
			return
		}
		succs, errSucc := g.SuccNodes(n)
		if errSucc != nil {
			err = errSucc
			return
		}
		for _, s := range succs {
			if errAdd := result.AddEdge(n, s); errAdd != nil {
				err = errAdd
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
