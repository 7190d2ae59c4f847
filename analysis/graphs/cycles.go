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
	"github.com/yourbasic/graph"
)

// minIterator restricts a DirectedView to the nodes with number >= min, implementing yourbasic's
// graph.Iterator. Node numbers stay absolute, so component contents are comparable across
// restrictions.
type minIterator[T comparable] struct {
	view DirectedView[T]
	min  int
}

func (it minIterator[T]) Order() int {
	return it.view.Order()
}

func (it minIterator[T]) Visit(v int, do func(w int, c int64) (skip bool)) (aborted bool) {
	if v < it.min {
		return false
	}
	for _, w := range it.view.g.succNumbers(v) {
		if w < it.min {
			continue
		}
		if do(w, 1) {
			return true
		}
	}
	return false
}

// FindAllElementaryCycles finds all elementary cycles of the graph as slices of node numbers, with
// the starting node repeated at the end. This uses Donald B. Johnson's algorithm presented in
// "Finding All The Elementary Circuits of a Directed Graph", 1975, seeded with the strongly
// connected components computed by yourbasic's graph package. Self loops are reported as cycles of
// the form [v, v] and are skipped by the circuit search.
func FindAllElementaryCycles[T comparable](g *SlowSparseNumberedGraph[T]) [][]int {
	view := NewDirectedView(g)
	n := g.NumberOfNodes()
	s := &circuitState[T]{
		g:       g,
		blocked: make([]bool, n),
		blist:   map[int]map[int]bool{},
		stack:   []int{},
		cycles:  [][]int{},
	}
	for v := 0; v < n; v++ {
		if g.edges.successors.Contains(v, v) {
			s.cycles = append(s.cycles, []int{v, v})
		}
	}
	start := 0
	for start < n {
		components := graph.StrongComponents(minIterator[T]{view: view, min: start})
		least := -1
		for _, component := range components {
			if len(component) < 2 {
				continue
			}
			m := component[0]
			for _, v := range component {
				if v < m {
					m = v
				}
			}
			if m >= start && (least < 0 || m < least) {
				least = m
			}
		}
		if least < 0 {
			break
		}
		start = least
		s.stack = []int{}
		for i := range s.blocked {
			s.blocked[i] = false
		}
		s.blist = map[int]map[int]bool{}
		s.circuit(start, start)
		start++
	}
	return s.cycles
}

type circuitState[T comparable] struct {
	g       *SlowSparseNumberedGraph[T]
	blocked []bool
	blist   map[int]map[int]bool
	stack   []int
	cycles  [][]int
}

func (s *circuitState[T]) unblock(u int) {
	s.blocked[u] = false
	for w := range s.blist[u] {
		if s.blocked[w] {
			s.unblock(w)
		}
	}
	delete(s.blist, u)
}

// circuit explores the elementary paths from v back to the start node i, restricted to nodes >= i.
func (s *circuitState[T]) circuit(v int, i int) bool {
	f := false
	s.stack = append(s.stack, v)
	s.blocked[v] = true
	for _, w := range s.g.succNumbers(v) {
		if w < i || w == v {
			continue
		}
		if w == i {
			cycle := make([]int, len(s.stack), len(s.stack)+1)
			copy(cycle, s.stack)
			cycle = append(cycle, w)
			s.cycles = append(s.cycles, cycle)
			f = true
		} else if !s.blocked[w] {
			if s.circuit(w, i) {
				f = true
			}
		}
	}

	if f {
		s.unblock(v)
	} else {
		for _, w := range s.g.succNumbers(v) {
			if w < i || w == v {
				continue
			}
			if m := s.blist[w]; m != nil {
				m[v] = true
			} else {
				s.blist[w] = map[int]bool{v: true}
			}
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	return f
}
