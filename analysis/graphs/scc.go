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

import "github.com/awslabs/ar-ifds-tools/analysis/intset"

// StronglyConnectedComponents is an implementation of Tarjan's strongly connected component (SCC)
// algorithm over a numbered graph. Components are returned as slices of node numbers; the order
// within an SCC is arbitrary. The order of SCCs is toposorted so that successors appear first; i.e.
// if the graph is a tree then in order from leaves towards the root. For summary-based bottom-up
// algorithms, the result is in the desired order to minimize recomputation.
func StronglyConnectedComponents[T comparable](g *SlowSparseNumberedGraph[T]) (sccs [][]int) {
	n := g.NumberOfNodes()
	// index[v] == 0 means v has not been visited; visit order is stored shifted by one
	index := make([]int, n)
	lowlink := make([]int, n)
	var onStack intset.BitVector
	stack := make([]int, 0)
	nextIndex := 1
	sccs = make([][]int, 0)

	var visit func(v int)

	visit = func(v int) {
		index[v] = nextIndex
		lowlink[v] = nextIndex
		stack = append(stack, v)
		onStack.Set(v)
		nextIndex++
		for _, w := range g.succNumbers(v) {
			if index[w] == 0 {
				visit(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack.Get(w) {
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}
		if lowlink[v] == index[v] {
			scc := make([]int, 0)
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack.Clear(w)
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}
	for v := 0; v < n; v++ {
		if index[v] == 0 {
			visit(v)
		}
	}
	return sccs
}
