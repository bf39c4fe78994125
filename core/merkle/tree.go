package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Tree represents an immutable binary merkle tree.
//
// A Tree is safe for concurrent use once built.
type Tree struct {
	root       *Node // always not nil
	hasher     Hasher
	leafHashes []common.Hash
	numNodes   int
	height     int
}

// NewTree builds a merkle tree from the ordered data blocks, using the
// optionally specified hasher or the default one.
func NewTree(blocks [][]byte, hasher ...Hasher) (*Tree, error) {
	var h Hasher
	if len(hasher) > 0 {
		h = hasher[0]
	}

	builder := NewTreeBuilder(h)
	for _, block := range blocks {
		builder.Append(block)
	}

	return builder.Build()
}

// Root returns the root node, which is owned by the tree and must not be modified.
func (tree *Tree) Root() *Node {
	return tree.root
}

// RootHash returns the merkle root hash.
func (tree *Tree) RootHash() common.Hash {
	return tree.root.Hash
}

// Hasher returns the hasher used to build the tree.
func (tree *Tree) Hasher() Hasher {
	return tree.hasher
}

// NumLeaves returns the number of leaves.
func (tree *Tree) NumLeaves() int {
	return len(tree.leafHashes)
}

// NumNodes returns the number of nodes in the tree including leaves, internal
// nodes and copies made for odd levels.
func (tree *Tree) NumNodes() int {
	return tree.numNodes
}

// Height returns the number of levels above the leaves.
func (tree *Tree) Height() int {
	return tree.height
}

// LeafHash returns the digest of the leaf at the specified position.
func (tree *Tree) LeafHash(i int) (common.Hash, error) {
	if err := tree.checkIndex(i); err != nil {
		return common.Hash{}, err
	}

	return tree.leafHashes[i], nil
}

func (tree *Tree) checkIndex(i int) error {
	if i < 0 || i >= len(tree.leafHashes) {
		return errors.WithMessagef(ErrIndexOutOfBounds, "index = %v, leaves = %v", i, len(tree.leafHashes))
	}

	return nil
}

// GenerateProof returns the inclusion proof of the leaf at the specified position.
// Proof steps are ordered from the leaf to the root.
func (tree *Tree) GenerateProof(i int) (*Proof, error) {
	if err := tree.checkIndex(i); err != nil {
		return nil, err
	}

	steps := make([]ProofStep, 0, tree.height)

	// descend to the leaf along the path covering i, then reverse
	current := tree.root
	for !current.IsLeaf() {
		if current.Left == nil || current.Right == nil {
			return nil, errors.WithMessagef(ErrMissingSibling, "node [%v, %v] has a single child",
				current.LeftIdx, current.RightIdx)
		}

		switch {
		case current.Left.Contains(i):
			steps = append(steps, ProofStep{Sibling: current.Right.Hash, Direction: Right})
			current = current.Left
		case current.Right.Contains(i):
			steps = append(steps, ProofStep{Sibling: current.Left.Hash, Direction: Left})
			current = current.Right
		default:
			return nil, errors.WithMessagef(ErrMissingSibling, "no child of node [%v, %v] covers leaf %v",
				current.LeftIdx, current.RightIdx, i)
		}
	}

	if current.LeftIdx != i {
		return nil, errors.WithMessagef(ErrMissingSibling, "reached leaf %v instead of %v", current.LeftIdx, i)
	}

	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}

	return &Proof{
		LeafIndex: i,
		LeafHash:  current.Hash,
		Steps:     steps,
	}, nil
}

// GenerateProofs returns the inclusion proofs of all leaves in order.
func (tree *Tree) GenerateProofs() ([]*Proof, error) {
	proofs := make([]*Proof, len(tree.leafHashes))

	for i := range proofs {
		proof, err := tree.GenerateProof(i)
		if err != nil {
			return nil, err
		}

		proofs[i] = proof
	}

	return proofs, nil
}
