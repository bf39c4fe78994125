package merkle

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// DefaultProofCacheSize is the number of proofs kept by a ProofCache when no size is specified.
const DefaultProofCacheSize = 1024

// ProofCache memoizes the proofs of recently requested leaves of a tree.
//
// It is safe for concurrent use.
type ProofCache struct {
	tree  *Tree
	cache *lru.Cache[int, *Proof]
}

// NewProofCache creates a proof cache of the specified tree, holding at most size proofs.
func NewProofCache(tree *Tree, size int) (*ProofCache, error) {
	if size <= 0 {
		size = DefaultProofCacheSize
	}

	cache, err := lru.New[int, *Proof](size)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create lru cache")
	}

	return &ProofCache{tree, cache}, nil
}

// Tree returns the underlying tree.
func (c *ProofCache) Tree() *Tree {
	return c.tree
}

// Proof returns the proof of the leaf at position i. The returned proof is
// owned by the caller.
func (c *ProofCache) Proof(i int) (*Proof, error) {
	if proof, ok := c.cache.Get(i); ok {
		return proof.Copy(), nil
	}

	proof, err := c.tree.GenerateProof(i)
	if err != nil {
		return nil, err
	}

	c.cache.Add(i, proof.Copy())

	return proof, nil
}

// Len returns the number of cached proofs.
func (c *ProofCache) Len() int {
	return c.cache.Len()
}
