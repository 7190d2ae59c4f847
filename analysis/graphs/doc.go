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

/*
Package graphs implements directed graphs over numbered nodes with a sparse edge structure.

A [NumberedNodeManager] assigns each node a stable nonnegative number; [SparseNumberedEdgeManager]
tracks edges as a pair of natural relations (successors and predecessors) kept in lockstep, with a bit
vector caching which nodes have any successor. [SlowSparseNumberedGraph] glues the two together and is
the default graph representation for analysis clients.

The package also provides adapters so that a numbered graph can be consumed by gonum
(gonum.org/v1/gonum/graph) and yourbasic (github.com/yourbasic/graph) algorithms, strongly connected
components and elementary cycle enumeration over numbered graphs, and a bridge from an x/tools call
graph.

Graphs are owned by a single logical writer and provide no internal synchronization. Number sets
returned by queries alias live interior storage and are invalidated by the next mutation.
*/
package graphs
