package merkle

import (
	"github.com/ethereum/go-ethereum/common"
)

// TreeBuilder is used to build binary merkle tree from ordered data blocks.
//
// The zero value is ready to use with the default hasher.
type TreeBuilder struct {
	hasher     Hasher
	leafHashes []common.Hash
}

// NewTreeBuilder creates a builder with the specified hasher, or the default one if nil.
func NewTreeBuilder(hasher Hasher) *TreeBuilder {
	return &TreeBuilder{hasher: hasher}
}

// Append appends a leaf for the specified data block.
func (builder *TreeBuilder) Append(content []byte) {
	builder.hasher = orDefault(builder.hasher)
	builder.leafHashes = append(builder.leafHashes, builder.hasher.LeafDigest(content))
}

// AppendHash appends a leaf whose digest has already been computed.
func (builder *TreeBuilder) AppendHash(hash common.Hash) {
	builder.leafHashes = append(builder.leafHashes, hash)
}

// Len returns the number of leaves appended so far.
func (builder *TreeBuilder) Len() int {
	return len(builder.leafHashes)
}

// Build builds the merkle tree. Adjacent nodes are paired from left to right
// level by level. If a level has an odd number of nodes, the last one is
// paired with a copy of itself.
func (builder *TreeBuilder) Build() (*Tree, error) {
	numLeafNodes := len(builder.leafHashes)
	if numLeafNodes == 0 {
		return nil, ErrEmptyInput
	}

	hasher := orDefault(builder.hasher)

	leafHashes := make([]common.Hash, numLeafNodes)
	copy(leafHashes, builder.leafHashes)

	level := make([]*Node, numLeafNodes)
	for i, hash := range leafHashes {
		level[i] = newLeafNode(hash, i)
	}

	numNodes := numLeafNodes
	var height int

	for len(level) > 1 {
		next := make([]*Node, 0, (len(level)+1)/2)

		for i := 0; i < len(level); i += 2 {
			left := level[i]

			var right *Node
			if i+1 < len(level) {
				right = level[i+1]
			} else {
				// last single node, duplicated so that every node keeps a single owner
				right = left.Clone()
				numNodes += right.Size()
			}

			next = append(next, newInteriorNode(hasher, left, right))
		}

		numNodes += len(next)
		level = next
		height++
	}

	return &Tree{
		root:       level[0],
		hasher:     hasher,
		leafHashes: leafHashes,
		numNodes:   numNodes,
		height:     height,
	}, nil
}
