package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Node is a binary merkle tree node. A node is either a leaf without children,
// or an internal node that owns exactly two children.
//
// LeftIdx and RightIdx are the inclusive range of leaf positions covered by the node.
type Node struct {
	Hash     common.Hash `json:"hash"`
	LeftIdx  int         `json:"leftIdx"`
	RightIdx int         `json:"rightIdx"`
	Left     *Node       `json:"left,omitempty"`
	Right    *Node       `json:"right,omitempty"`
}

func newLeafNode(hash common.Hash, position int) *Node {
	return &Node{
		Hash:     hash,
		LeftIdx:  position,
		RightIdx: position,
	}
}

func newInteriorNode(hasher Hasher, left, right *Node) *Node {
	return &Node{
		Hash:     hasher.Combine(left.Hash, right.Hash),
		LeftIdx:  left.LeftIdx,
		RightIdx: right.RightIdx,
		Left:     left,
		Right:    right,
	}
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Contains returns true if the leaf at position i is under this node.
func (n *Node) Contains(i int) bool {
	return n.LeftIdx <= i && i <= n.RightIdx
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Hash:     n.Hash,
		LeftIdx:  n.LeftIdx,
		RightIdx: n.RightIdx,
		Left:     n.Left.Clone(),
		Right:    n.Right.Clone(),
	}
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Size() + n.Right.Size()
}

// Verify checks recursively that every internal node under n has both
// children, covers exactly the leaves of its children and carries the
// combined digest of its children.
//
// Leaf digests can not be checked without the leaf data and are trusted.
func (n *Node) Verify(hasher Hasher) error {
	hasher = orDefault(hasher)

	if n.IsLeaf() {
		if n.LeftIdx != n.RightIdx {
			return errors.WithMessagef(ErrInvalidNode, "leaf covers range [%v, %v]", n.LeftIdx, n.RightIdx)
		}

		return nil
	}

	if n.Left == nil || n.Right == nil {
		return errors.WithMessagef(ErrMissingSibling, "node [%v, %v] has a single child", n.LeftIdx, n.RightIdx)
	}

	if n.LeftIdx != n.Left.LeftIdx || n.RightIdx != n.Right.RightIdx {
		return errors.WithMessagef(ErrInvalidNode, "node [%v, %v] does not match range of children", n.LeftIdx, n.RightIdx)
	}

	if expected := hasher.Combine(n.Left.Hash, n.Right.Hash); expected != n.Hash {
		return errors.WithMessagef(ErrInvalidNode, "node [%v, %v] hash mismatch, expected = %v, actual = %v",
			n.LeftIdx, n.RightIdx, expected, n.Hash)
	}

	if err := n.Left.Verify(hasher); err != nil {
		return err
	}

	return n.Right.Verify(hasher)
}
