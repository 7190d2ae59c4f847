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
Package ifds implements the per-procedure path-edge index used by an IFDS tabulation solver.

For a procedure with entry point s_p, a path edge <s_p, d1> -> <n, d2> records that a same-level
realizable path starting at the entry with dataflow fact d1 reaches basic block n with fact d2. Blocks
and facts are identified by small nonnegative integers, with fact 0 reserved for the tautological fact.
A whole-program tabulation records hundreds of millions of such edges, so [LocalPathEdges] splits its
storage between dedicated bit-vector sets for the dominant identity (d1 == d2) and zero (d1 == 0)
edges and a dense-by-block binary relation for the rest.

The index is owned by a single logical writer; it provides no internal synchronization. Sets returned
by queries may alias live interior storage and are invalidated by the next mutation.
*/
package ifds
