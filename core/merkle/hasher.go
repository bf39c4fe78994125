package merkle

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
)

const (
	// LeafPrefix is prepended to leaf data before hashing.
	LeafPrefix byte = 0x00

	// NodePrefix is prepended to the concatenated child digests of an internal node.
	NodePrefix byte = 0x01
)

// Hasher computes the digests of leaves and internal nodes.
//
// Implementations must keep the two domains apart, so that the digest of an
// internal node can never be presented as the digest of a leaf, and Combine
// must depend on the order of its operands.
type Hasher interface {
	LeafDigest(data []byte) common.Hash
	Combine(left, right common.Hash) common.Hash
}

// DefaultHasher returns the hasher used when none is specified.
func DefaultHasher() Hasher {
	return Keccak256Hasher{}
}

func orDefault(hasher Hasher) Hasher {
	if hasher == nil {
		return DefaultHasher()
	}

	return hasher
}

// Keccak256Hasher hashes with keccak256, e.g. keccak256(0x00 || data) for leaves.
type Keccak256Hasher struct{}

func (Keccak256Hasher) LeafDigest(data []byte) common.Hash {
	return crypto.Keccak256Hash([]byte{LeafPrefix}, data)
}

func (Keccak256Hasher) Combine(left, right common.Hash) common.Hash {
	return crypto.Keccak256Hash([]byte{NodePrefix}, left.Bytes(), right.Bytes())
}

// SHA256Hasher hashes with sha256 using the same prefixes as Keccak256Hasher.
type SHA256Hasher struct{}

func (SHA256Hasher) LeafDigest(data []byte) common.Hash {
	h := sha256.New()
	h.Write([]byte{LeafPrefix})
	h.Write(data)
	return common.BytesToHash(h.Sum(nil))
}

func (SHA256Hasher) Combine(left, right common.Hash) common.Hash {
	h := sha256.New()
	h.Write([]byte{NodePrefix})
	h.Write(left.Bytes())
	h.Write(right.Bytes())
	return common.BytesToHash(h.Sum(nil))
}

// Blake2bHasher hashes with unkeyed blake2b-256.
type Blake2bHasher struct{}

func (Blake2bHasher) LeafDigest(data []byte) common.Hash {
	buf := make([]byte, 0, 1+len(data))
	buf = append(buf, LeafPrefix)
	buf = append(buf, data...)
	return common.Hash(blake2b.Sum256(buf))
}

func (Blake2bHasher) Combine(left, right common.Hash) common.Hash {
	var buf [1 + 2*common.HashLength]byte
	buf[0] = NodePrefix
	copy(buf[1:], left[:])
	copy(buf[1+common.HashLength:], right[:])
	return common.Hash(blake2b.Sum256(buf[:]))
}
