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

package ifds

import (
	"fmt"

	"github.com/awslabs/ar-ifds-tools/analysis/config"
	"github.com/awslabs/ar-ifds-tools/analysis/intset"
)

// LocalPathEdges is the set of path edges discovered for a particular procedure entry s_p.
//
// An edge <s_p, i> -> <n, j> is stored in exactly one of three stores:
//
//   - zeroPaths[j] holds the block numbers n with an edge <s_p, 0> -> <n, j>;
//   - identityPaths[i] holds the block numbers n with an edge <s_p, i> -> <n, i>, i != 0;
//   - paths[j] relates (n, i) for the remaining edges.
//
// paths is keyed by j and relates (n, i) rather than (i, n): of the (n, i, j) tuple space the set of n
// is expected to be dense for a given (i, j) pair while the pairs themselves are sparse, and the
// relations are designed to be dense in their first dimension. Keying by j also makes Inverse a single
// row lookup. The representation is bad for merges; see altPaths.
//
// When constructed with fastMerge, altPaths holds a redundant mirror of all three stores, keyed by i
// and relating (n, j), so that Reachable(n, i) is a row lookup instead of a scan over all j. This
// costs roughly twice the memory and is only worth it for solvers that merge frequently.
type LocalPathEdges struct {
	paths intset.SparseVector[*intset.NaturalRelation]

	// non-nil iff the index was built with fastMerge
	altPaths *intset.SparseVector[*intset.NaturalRelation]

	identityPaths intset.SparseVector[*intset.BitVectorIntSet]

	zeroPaths intset.SparseVector[*intset.BitVectorIntSet]

	// paranoid error checking: cross-check the fast and slow reachability paths (slow)
	paranoid bool

	log *config.LogGroup
}

// NewLocalPathEdges returns an empty path-edge index. When fastMerge is true the index uses extra
// space to support faster merge operations.
func NewLocalPathEdges(fastMerge bool) *LocalPathEdges {
	p := &LocalPathEdges{}
	if fastMerge {
		p.altPaths = &intset.SparseVector[*intset.NaturalRelation]{}
	}
	return p
}

// NewLocalPathEdgesFromConfig returns an empty path-edge index configured from cfg: fast-merge
// selects the redundant representation, audit-data-structures enables the paranoid cross-check of
// reachability queries. Trace output is emitted through log, which may be nil.
func NewLocalPathEdgesFromConfig(cfg *config.Config, log *config.LogGroup) *LocalPathEdges {
	p := NewLocalPathEdges(cfg.FastMerge)
	p.paranoid = cfg.AuditDataStructures
	p.log = log
	return p
}

// Add records that in this procedure a same-level realizable path from (s_p, i) reaches (n, j).
// n is the local block number of the basic block. Add is idempotent.
func (p *LocalPathEdges) Add(i int, n int, j int) {
	if i == 0 {
		p.addZeroPathEdge(n, j)
		return
	}
	if i == j {
		p.addIdentityPathEdge(i, n)
		return
	}
	r := p.paths.Get(j)
	if r == nil {
		// we expect the first dimension of the relation to be dense, the second sparse
		r = intset.NewStingyRelation()
		p.paths.Set(j, r)
	}
	r.Add(n, i)
	p.addAltPath(i, n, j)
	if p.log.TraceEnabled() {
		p.log.Tracef("recording path edge, now d2=%d has been reached from %v", j, r)
	}
}

// addIdentityPathEdge records a path from (s_p, i) to (n, i), i != 0.
func (p *LocalPathEdges) addIdentityPathEdge(i int, n int) {
	s := p.identityPaths.Get(i)
	if s == nil {
		s = intset.NewBitVectorIntSet()
		p.identityPaths.Set(i, s)
	}
	s.Add(n)
	p.addAltPath(i, n, i)
	if p.log.TraceEnabled() {
		p.log.Tracef("recording self-path edge, now d1=%d reaches %v", i, s)
	}
}

// addZeroPathEdge records a path from (s_p, 0) to (n, j).
func (p *LocalPathEdges) addZeroPathEdge(n int, j int) {
	z := p.zeroPaths.Get(j)
	if z == nil {
		z = intset.NewBitVectorIntSet()
		p.zeroPaths.Set(j, z)
	}
	z.Add(n)
	p.addAltPath(0, n, j)
	if p.log.TraceEnabled() {
		p.log.Tracef("recording 0-path edge, now d2=%d reached at %v", j, z)
	}
}

func (p *LocalPathEdges) addAltPath(i int, n int, j int) {
	if p.altPaths == nil {
		return
	}
	r := p.altPaths.Get(i)
	if r == nil {
		r = intset.NewStingyRelation()
		p.altPaths.Set(i, r)
	}
	r.Add(n, j)
}

// Contains returns true iff the index holds the path edge <s_p, i> -> <n, j>. It consults the one
// store the edge would have been routed to; the three cases are deliberately not unified.
func (p *LocalPathEdges) Contains(i int, n int, j int) bool {
	if n < 0 {
		panic(fmt.Sprintf("ifds: negative block number %d", n))
	}
	if i == 0 {
		z := p.zeroPaths.Get(j)
		return z != nil && z.Contains(n)
	}
	if i == j {
		s := p.identityPaths.Get(i)
		return s != nil && s.Contains(n)
	}
	r := p.paths.Get(j)
	return r != nil && r.Contains(n, i)
}

// Inverse returns the set of i such that <s_p, i> -> <n, d2> is a path edge, or nil when there is
// none. The result may alias live interior storage.
//
// N.B.: a solver using the zero-path short circuit may represent <s_p, d1> -> <n, d2> implicitly
// because <s_p, 0> -> <n, d2> is present. Inverse will NOT list those implicit d1; callers must not
// care about any d1 other than 0 when 0 is in the answer. This holds for the tabulation solver's one
// use of Inverse, which propagates flow from an exit node back to the caller's return sites: flow
// from fact 0 to the return sites is always seen, so other facts inducing the same flow are
// redundant there.
func (p *LocalPathEdges) Inverse(n int, d2 int) intset.IntSet {
	var related intset.IntSet
	if r := p.paths.Get(d2); r != nil {
		related = r.Related(n)
	}
	hasIdentity := false
	if s := p.identityPaths.Get(d2); s != nil && s.Contains(n) {
		hasIdentity = true
	}
	hasZero := false
	if z := p.zeroPaths.Get(d2); z != nil && z.Contains(n) {
		hasZero = true
	}
	switch {
	case related == nil:
		if hasIdentity && hasZero {
			return intset.Pair(0, d2)
		}
		if hasIdentity {
			return intset.Singleton(d2)
		}
		if hasZero {
			return intset.Singleton(0)
		}
		return nil
	case !hasIdentity && !hasZero:
		return related
	default:
		result := intset.MakeMutableCopy(related)
		if hasIdentity {
			result.Add(d2)
		}
		if hasZero {
			result.Add(0)
		}
		return result
	}
}

// Reachable returns the set of j such that <s_p, d1> -> <n, j> is a path edge. With fastMerge the
// answer is a row lookup in altPaths; otherwise it falls back to a scan over the primary stores.
func (p *LocalPathEdges) Reachable(n int, d1 int) intset.IntSet {
	if p.altPaths == nil {
		return p.reachableSlow(n, d1)
	}
	if p.paranoid {
		slow := p.reachableSlow(n, d1)
		fast := p.reachableFast(n, d1)
		if !intset.SameValue(slow, fast) {
			panic(fmt.Sprintf("ifds: reachable(%d, %d) mismatch: slow=%v fast=%v", n, d1, slow, fast))
		}
	}
	return p.reachableFast(n, d1)
}

// reachableSlow scans the three primary stores. Note that this is really slow.
func (p *LocalPathEdges) reachableSlow(n int, d1 int) intset.IntSet {
	result := intset.NewMutableSparseIntSet()
	p.paths.ForEachPair(func(d2 int, r *intset.NaturalRelation) {
		if r != nil && r.Contains(n, d1) {
			result.Add(d2)
		}
	})
	if s := p.identityPaths.Get(d1); s != nil && s.Contains(n) {
		result.Add(d1)
	}
	if d1 == 0 {
		p.zeroPaths.ForEachPair(func(d2 int, z *intset.BitVectorIntSet) {
			if z != nil && z.Contains(n) {
				result.Add(d2)
			}
		})
	}
	return result
}

func (p *LocalPathEdges) reachableFast(n int, d1 int) intset.IntSet {
	if r := p.altPaths.Get(d1); r != nil {
		return r.Related(n)
	}
	return nil
}

// AllReachable returns the set of j such that <s_p, i> -> <n, j> is a path edge for some i.
//
// TODO: exploit altPaths when it is present.
func (p *LocalPathEdges) AllReachable(n int) intset.IntSet {
	result := intset.NewMutableSparseIntSet()
	p.paths.ForEachPair(func(d2 int, r *intset.NaturalRelation) {
		if r != nil && r.RelatedCount(n) > 0 {
			result.Add(d2)
		}
	})
	p.identityPaths.ForEachPair(func(d1 int, s *intset.BitVectorIntSet) {
		if s != nil && s.Contains(n) {
			result.Add(d1)
		}
	})
	p.zeroPaths.ForEachPair(func(d2 int, z *intset.BitVectorIntSet) {
		if z != nil && z.Contains(n) {
			result.Add(d2)
		}
	})
	return result
}

// ReachedNodes returns the set of block numbers that are reached by any fact.
func (p *LocalPathEdges) ReachedNodes() intset.IntSet {
	result := intset.NewMutableSparseIntSet()
	p.paths.ForEachPair(func(_ int, r *intset.NaturalRelation) {
		r.ForEachPair(func(n int, _ int) { result.Add(n) })
	})
	p.identityPaths.ForEachPair(func(_ int, s *intset.BitVectorIntSet) {
		s.ForEach(func(n int) { result.Add(n) })
	})
	p.zeroPaths.ForEachPair(func(_ int, z *intset.BitVectorIntSet) {
		z.ForEach(func(n int) { result.Add(n) })
	})
	return result
}
