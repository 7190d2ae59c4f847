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
	"sort"

	"golang.org/x/tools/go/callgraph"
)

// FromCallGraph builds a sparse numbered graph mirroring the nodes and resolved call edges of cg.
// Nodes are numbered in increasing callgraph node ID order, so the numbering is deterministic for a
// given call graph. Edges with a nil callee are skipped.
func FromCallGraph(cg *callgraph.Graph) *SlowSparseNumberedGraph[*callgraph.Node] {
	nodes := make([]*callgraph.Node, 0, len(cg.Nodes))
	for _, node := range cg.Nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	g := NewSlowSparseNumberedGraph[*callgraph.Node](0)
	for _, node := range nodes {
		g.AddNode(node)
	}
	for _, node := range nodes {
		for _, e := range node.Out {
			if e.Callee != nil {
				// both endpoints were just added, so AddEdge cannot fail
				_ = g.AddEdge(node, e.Callee)
			}
		}
	}
	return g
}
