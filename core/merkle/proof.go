package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Direction indicates on which side of the concatenation a proof sibling goes.
type Direction uint8

const (
	// Left means the sibling is the left operand, i.e. the proven node is a right child.
	Left Direction = iota + 1

	// Right means the sibling is the right operand, i.e. the proven node is a left child.
	Right
)

func (d Direction) IsValid() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, errors.WithMessagef(ErrInvalidProof, "direction %d", uint8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*d = Left
	case "right":
		*d = Right
	default:
		return errors.WithMessagef(ErrInvalidProof, "direction %q", string(text))
	}

	return nil
}

// ProofStep is the sibling digest at one level of a proof.
type ProofStep struct {
	Sibling   common.Hash `json:"sibling"`
	Direction Direction   `json:"direction"`
}

// Proof represents an inclusion proof of a leaf. Steps are ordered from the
// leaf to the root, and the root itself is not included.
//
// A proof holds copies of digests only, and remains valid after the tree is gone.
type Proof struct {
	LeafIndex int         `json:"leafIndex"`
	LeafHash  common.Hash `json:"leafHash"`
	Steps     []ProofStep `json:"steps"`
}

// Copy returns a copy of the proof that shares no memory with it.
func (proof *Proof) Copy() *Proof {
	cp := *proof
	if proof.Steps != nil {
		cp.Steps = make([]ProofStep, len(proof.Steps))
		copy(cp.Steps, proof.Steps)
	}

	return &cp
}

// Position returns the leaf position implied by the proof directions.
func (proof *Proof) Position() int {
	var position int

	for i, step := range proof.Steps {
		// sibling on the left side means the proven node is a right child
		if step.Direction == Left {
			position |= 1 << i
		}
	}

	return position
}

// ValidateFormat checks the proof structure regardless of any root.
func (proof *Proof) ValidateFormat() error {
	if proof.LeafIndex < 0 {
		return errors.WithMessagef(ErrInvalidProof, "negative leaf index %v", proof.LeafIndex)
	}

	for i, step := range proof.Steps {
		if !step.Direction.IsValid() {
			return errors.WithMessagef(ErrInvalidProof, "step %v has direction %d", i, uint8(step.Direction))
		}
	}

	if position := proof.Position(); position != proof.LeafIndex {
		return errors.WithMessagef(ErrInvalidProof, "position mismatch, index = %v, path = %v", proof.LeafIndex, position)
	}

	return nil
}

// Validate validates the proof of content against the specified root.
//
// Unlike VerifyProof, it reports why a proof is rejected: ErrInvalidProof
// for a malformed proof, ErrProofContentMismatch if the content does not match
// the leaf digest carried by the proof and ErrProofRootMismatch if the proof
// is well formed but leads to another root.
func (proof *Proof) Validate(hasher Hasher, root common.Hash, content []byte) error {
	hasher = orDefault(hasher)
	return proof.ValidateHash(hasher, root, hasher.LeafDigest(content))
}

// ValidateHash is the same as Validate for an already hashed leaf.
func (proof *Proof) ValidateHash(hasher Hasher, root, leafHash common.Hash) error {
	if err := proof.ValidateFormat(); err != nil {
		return err
	}

	if proof.LeafHash != leafHash {
		return errors.WithMessagef(ErrProofContentMismatch, "expected = %v, actual = %v", proof.LeafHash, leafHash)
	}

	if computed := proof.fold(orDefault(hasher), leafHash); computed != root {
		return errors.WithMessagef(ErrProofRootMismatch, "expected = %v, computed = %v", root, computed)
	}

	return nil
}

func (proof *Proof) fold(hasher Hasher, leafHash common.Hash) common.Hash {
	hash := leafHash

	for _, step := range proof.Steps {
		if step.Direction == Left {
			hash = hasher.Combine(step.Sibling, hash)
		} else {
			hash = hasher.Combine(hash, step.Sibling)
		}
	}

	return hash
}

// VerifyProof recomputes the root from the leaf data and the proof, and
// returns true only if it equals the expected root. A nil proof is treated as
// a proof without steps, and a proof with an unknown direction never verifies.
func VerifyProof(hasher Hasher, leafData []byte, proof *Proof, expectedRoot common.Hash) bool {
	hasher = orDefault(hasher)
	return VerifyProofHash(hasher, hasher.LeafDigest(leafData), proof, expectedRoot)
}

// VerifyProofHash is the same as VerifyProof for an already hashed leaf.
func VerifyProofHash(hasher Hasher, leafHash common.Hash, proof *Proof, expectedRoot common.Hash) bool {
	if proof == nil {
		return leafHash == expectedRoot
	}

	for _, step := range proof.Steps {
		if !step.Direction.IsValid() {
			return false
		}
	}

	return proof.fold(orDefault(hasher), leafHash) == expectedRoot
}
