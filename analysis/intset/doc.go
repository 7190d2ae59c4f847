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

// Package intset implements sets of small nonnegative integers and a binary
// relation over naturals that is dense in its first coordinate and sparse in
// its second. These are the building blocks of the path-edge indexes and the
// numbered-graph edge managers in this module.
//
// The package offers several encodings with different space/time tradeoffs:
// sorted-slice sets (SparseIntSet) for small sets, bit vectors
// (BitVectorIntSet) for dense sets of block numbers, and a two-level sparse
// bit vector (TwoLevelIntSet) for large sets with clustered elements.
// NaturalRelation picks a per-row encoding from an implementation vector and
// promotes rows that outgrow the simple encoding.
package intset
