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
	"math/rand"
	"sort"
	"testing"

	"github.com/awslabs/ar-ifds-tools/analysis/config"
)

// newTestGraph returns an audited graph over the nodes 0 .. order-1.
func newTestGraph(t *testing.T, order int, normalOutCount int) *SlowSparseNumberedGraph[int] {
	t.Helper()
	g := NewSlowSparseNumberedGraph[int](normalOutCount)
	g.edges.SetAudit(true)
	for v := 0; v < order; v++ {
		if num := g.AddNode(v); num != v {
			t.Fatalf("node %d numbered %d", v, num)
		}
	}
	return g
}

func mustAddEdge(t *testing.T, g *SlowSparseNumberedGraph[int], src int, dst int) {
	t.Helper()
	if err := g.AddEdge(src, dst); err != nil {
		t.Fatalf("addEdge(%d, %d): %v", src, dst, err)
	}
}

func sortedSuccs(t *testing.T, g *SlowSparseNumberedGraph[int], n int) []int {
	t.Helper()
	succs, err := g.SuccNodes(n)
	if err != nil {
		t.Fatalf("succNodes(%d): %v", n, err)
	}
	sort.Ints(succs)
	return succs
}

func sortedPreds(t *testing.T, g *SlowSparseNumberedGraph[int], n int) []int {
	t.Helper()
	preds, err := g.PredNodes(n)
	if err != nil {
		t.Fatalf("predNodes(%d): %v", n, err)
	}
	sort.Ints(preds)
	return preds
}

func checkIntSlice(t *testing.T, ctx string, got []int, expected []int) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s = %v, expected %v", ctx, got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("%s = %v, expected %v", ctx, got, expected)
		}
	}
}

func TestNodeManager(t *testing.T) {
	m := NewSlowNumberedNodeManager[string]()
	if m.Number("a") != -1 {
		t.Errorf("number of an unknown node should be -1")
	}
	na := m.AddNode("a")
	nb := m.AddNode("b")
	if na != 0 || nb != 1 {
		t.Errorf("nodes numbered (%d, %d), expected (0, 1)", na, nb)
	}
	if m.AddNode("a") != 0 {
		t.Errorf("re-adding a node should keep its number")
	}
	if m.Node(0) != "a" || m.Node(1) != "b" || m.Node(2) != "" {
		t.Errorf("node lookup wrong")
	}
	if m.NumberOfNodes() != 2 {
		t.Errorf("numberOfNodes = %d", m.NumberOfNodes())
	}
	var all []string
	m.ForEachNode(func(n string) { all = append(all, n) })
	if len(all) != 2 || all[0] != "a" || all[1] != "b" {
		t.Errorf("iteration = %v", all)
	}
}

func TestEdgeInsertionAndRemoval(t *testing.T) {
	g := newTestGraph(t, 4, 2)
	mustAddEdge(t, g, 1, 2)
	mustAddEdge(t, g, 1, 3)
	mustAddEdge(t, g, 2, 3)
	// adds are idempotent
	mustAddEdge(t, g, 1, 2)

	checkIntSlice(t, "succ(1)", sortedSuccs(t, g, 1), []int{2, 3})
	checkIntSlice(t, "pred(3)", sortedPreds(t, g, 3), []int{1, 2})
	if !g.HasEdge(1, 2) || g.HasEdge(2, 1) {
		t.Errorf("hasEdge wrong")
	}
	if g.HasAnySuccessor(3) {
		t.Errorf("hasAnySuccessor(3) = true")
	}
	if !g.HasAnySuccessor(1) {
		t.Errorf("hasAnySuccessor(1) = false")
	}

	if err := g.RemoveEdge(1, 3); err != nil {
		t.Fatalf("removeEdge(1, 3): %v", err)
	}
	checkIntSlice(t, "succ(1)", sortedSuccs(t, g, 1), []int{2})
	checkIntSlice(t, "pred(3)", sortedPreds(t, g, 3), []int{2})
	if !g.HasAnySuccessor(1) {
		t.Errorf("hasAnySuccessor(1) = false after partial removal")
	}

	// removing an absent edge between valid nodes is a no-op
	if err := g.RemoveEdge(1, 3); err != nil {
		t.Fatalf("removing an absent edge: %v", err)
	}
	if err := g.RemoveEdge(0, 3); err != nil {
		t.Fatalf("removing an absent edge: %v", err)
	}

	if err := g.RemoveEdge(1, 2); err != nil {
		t.Fatalf("removeEdge(1, 2): %v", err)
	}
	if g.HasAnySuccessor(1) {
		t.Errorf("hasAnySuccessor(1) = true after removing the last edge")
	}
}

func TestRemoveAllIncidentEdges(t *testing.T) {
	g := newTestGraph(t, 4, 0)
	mustAddEdge(t, g, 1, 2)
	mustAddEdge(t, g, 1, 3)
	mustAddEdge(t, g, 2, 3)
	if err := g.RemoveAllIncidentEdges(2); err != nil {
		t.Fatalf("removeAllIncidentEdges(2): %v", err)
	}
	checkIntSlice(t, "succ(1)", sortedSuccs(t, g, 1), []int{3})
	checkIntSlice(t, "pred(3)", sortedPreds(t, g, 3), []int{1})
	if n, _ := g.SuccNodeCount(2); n != 0 {
		t.Errorf("succNodeCount(2) = %d", n)
	}
	if n, _ := g.PredNodeCount(2); n != 0 {
		t.Errorf("predNodeCount(2) = %d", n)
	}
	// the edge 1 -> 3 is not incident on 2 and must survive
	if !g.HasEdge(1, 3) {
		t.Errorf("removeAllIncidentEdges(2) destroyed an unrelated edge")
	}
	if g.HasAnySuccessor(2) {
		t.Errorf("hasAnySuccessor(2) = true after incident removal")
	}
}

func TestRemoveOutgoingAndIncoming(t *testing.T) {
	g := newTestGraph(t, 5, 0)
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 0, 2)
	mustAddEdge(t, g, 3, 0)
	mustAddEdge(t, g, 4, 0)
	mustAddEdge(t, g, 4, 1)

	if err := g.RemoveOutgoingEdges(0); err != nil {
		t.Fatalf("removeOutgoingEdges(0): %v", err)
	}
	if n, _ := g.SuccNodeCount(0); n != 0 {
		t.Errorf("succNodeCount(0) = %d", n)
	}
	if g.HasAnySuccessor(0) {
		t.Errorf("hasAnySuccessor(0) = true")
	}
	checkIntSlice(t, "pred(0)", sortedPreds(t, g, 0), []int{3, 4})

	if err := g.RemoveIncomingEdges(0); err != nil {
		t.Fatalf("removeIncomingEdges(0): %v", err)
	}
	checkIntSlice(t, "pred(0)", sortedPreds(t, g, 0), nil)
	// 3 lost its only successor, 4 still has one
	if g.HasAnySuccessor(3) {
		t.Errorf("hasAnySuccessor(3) = true after its only edge was removed")
	}
	if !g.HasAnySuccessor(4) {
		t.Errorf("hasAnySuccessor(4) = false, edge 4 -> 1 remains")
	}
}

func TestNotInGraphErrors(t *testing.T) {
	g := NewSlowSparseNumberedGraph[string](0)
	g.AddNode("a")
	if err := g.AddEdge("a", "zzz"); !errors.Is(err, ErrNotInGraph) {
		t.Errorf("addEdge to an unknown node: %v", err)
	}
	if err := g.AddEdge("zzz", "a"); !errors.Is(err, ErrNotInGraph) {
		t.Errorf("addEdge from an unknown node: %v", err)
	}
	if g.HasEdge("a", "zzz") {
		t.Errorf("hasEdge with an unknown node should be false")
	}
	if err := g.RemoveAllIncidentEdges("zzz"); !errors.Is(err, ErrNotInGraph) {
		t.Errorf("removeAllIncidentEdges on an unknown node: %v", err)
	}
	if _, err := g.SuccNodes("zzz"); !errors.Is(err, ErrNotInGraph) {
		t.Errorf("succNodes on an unknown node: %v", err)
	}
	// the failed operations must not have modified the graph
	if n, _ := g.SuccNodeCount("a"); n != 0 {
		t.Errorf("failed operations changed the graph")
	}
}

// Exercise the succ/pred symmetry invariant under a random mix of mutations. The graph runs in
// audit mode, so any asymmetry panics inside the mutators.
func TestRandomMutationSymmetry(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g := newTestGraph(t, 30, 8)
		r := rand.New(rand.NewSource(4000 + seed))
		model := map[[2]int]bool{}
		for op := 0; op < 2000; op++ {
			x, y := r.Intn(30), r.Intn(30)
			switch k := r.Float32(); {
			case k < 0.7:
				mustAddEdge(t, g, x, y)
				model[[2]int{x, y}] = true
			case k < 0.9:
				if err := g.RemoveEdge(x, y); err != nil {
					t.Fatalf("removeEdge: %v", err)
				}
				delete(model, [2]int{x, y})
			default:
				if err := g.RemoveAllIncidentEdges(x); err != nil {
					t.Fatalf("removeAllIncidentEdges: %v", err)
				}
				for e := range model {
					if e[0] == x || e[1] == x {
						delete(model, e)
					}
				}
			}
		}
		for e := range model {
			if !g.HasEdge(e[0], e[1]) {
				t.Fatalf("seed %d: edge %v lost", seed, e)
			}
		}
		total := 0
		for v := 0; v < 30; v++ {
			n, err := g.SuccNodeCount(v)
			if err != nil {
				t.Fatalf("succNodeCount: %v", err)
			}
			if g.HasAnySuccessor(v) != (n > 0) {
				t.Fatalf("seed %d: hasAnySuccessor(%d) inconsistent with count %d", seed, v, n)
			}
			total += n
		}
		if total != len(model) {
			t.Fatalf("seed %d: %d edges in graph, model has %d", seed, total, len(model))
		}
	}
}

func TestDuplicate(t *testing.T) {
	g := newTestGraph(t, 6, 0)
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 1, 2)
	mustAddEdge(t, g, 2, 0)
	mustAddEdge(t, g, 4, 5)

	d, err := Duplicate[int](g)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if d.NumberOfNodes() != g.NumberOfNodes() {
		t.Fatalf("duplicate has %d nodes, expected %d", d.NumberOfNodes(), g.NumberOfNodes())
	}
	g.ForEachNode(func(n int) {
		if d.Number(n) < 0 {
			t.Errorf("node %d missing from the duplicate", n)
		}
	})
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			if g.HasEdge(x, y) != d.HasEdge(x, y) {
				t.Errorf("edge (%d, %d) differs between graph and duplicate", x, y)
			}
		}
	}
	// the duplicate is independent of the original
	mustAddEdge(t, d, 3, 4)
	if g.HasEdge(3, 4) {
		t.Errorf("mutating the duplicate changed the original")
	}
}

func TestGraphFromConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.NormalOutDegree = 4
	cfg.AuditDataStructures = true
	g := NewSlowSparseNumberedGraphFromConfig[int](cfg)
	for v := 0; v < 8; v++ {
		g.AddNode(v)
	}
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 1, 0)
	if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
		t.Errorf("edges missing on a configured graph")
	}
}
