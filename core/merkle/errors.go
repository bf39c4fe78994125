package merkle

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when building a tree without any data block.
	ErrEmptyInput = errors.New("no data blocks to build merkle tree")

	// ErrIndexOutOfBounds is returned when a proof is requested for a leaf the tree does not have.
	ErrIndexOutOfBounds = errors.New("leaf index out of bounds")

	// ErrMissingSibling is returned when the walk from a leaf to the root finds
	// an internal node without both children. It indicates a corrupted tree.
	ErrMissingSibling = errors.New("merkle node sibling missing")

	// ErrInvalidProof is returned for a structurally malformed proof.
	ErrInvalidProof = errors.New("invalid merkle proof format")

	// ErrProofContentMismatch is returned when the proven content does not match the leaf digest of a proof.
	ErrProofContentMismatch = errors.New("merkle proof content mismatch")

	// ErrProofRootMismatch is returned when a well formed proof does not lead to the expected root.
	ErrProofRootMismatch = errors.New("merkle proof root mismatch")

	// ErrInvalidNode is returned when a node's digest or leaf span disagrees with its children.
	ErrInvalidNode = errors.New("invalid merkle node")
)
