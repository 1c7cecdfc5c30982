/*
Package ostree implements an ordered map as a height-balanced (AVL) binary
search tree, augmented for order statistics.

Order-Statistics Trees

Every node of the tree carries, besides its key and value, the height of its
subtree and the number of nodes in its left subtree. The height keeps the tree
balanced: after every insertion and deletion the heights of sibling subtrees
differ by at most one, which bounds the height of a tree with n keys by
approximately 1.44·log2(n+2). The left-subtree count turns the search tree
into an order-statistics tree: the k-th smallest key is found by a single
descent, comparing k with the rank of the current node.

	Operation     |   Cost
	--------------+-----------------
	Insert        |   O(log n)
	Remove        |   O(log n)
	Get/Contains  |   O(log n)
	KthSmallest   |   O(log n)
	Rank          |   O(log n)
	RangeQuery    |   O(log n + m)   for m matching keys

Trees are not safe for concurrent use. Mutating operations require exclusive
access; concurrent readers are fine as long as no writer is active. Clients
have to serialize access themselves, e.g. with a sync.RWMutex per tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ostree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

// TreeError is an error type for the ostree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever a value is requested for a key which is
// not present in the tree.
const ErrKeyNotFound = TreeError("key not found")

// ErrRankOutOfRange is flagged whenever a rank is requested which is outside
// of [1, Len()].
const ErrRankOutOfRange = TreeError("rank out of range")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrCorruptTree is returned by the invariant checker.
const ErrCorruptTree = TreeError("tree invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
