package merkle_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/srinathln7/merkle-tree/core/merkle"
	"gotest.tools/assert"
)

func TestErrorIs(t *testing.T) {
	tree, err := merkle.NewTree([][]byte{[]byte("a"), []byte("b")})
	assert.NilError(t, err)

	_, err = tree.GenerateProof(2)
	assert.Equal(t, errors.Is(err, merkle.ErrIndexOutOfBounds), true)
	assert.Equal(t, errors.Is(err, merkle.ErrMissingSibling), false)
	assert.ErrorContains(t, err, "index = 2, leaves = 2")

	wrapped := errors.WithMessage(err, "failed to generate proof")
	assert.Equal(t, errors.Is(wrapped, merkle.ErrIndexOutOfBounds), true)

	_, err = merkle.NewTree(nil)
	assert.Equal(t, errors.Is(errors.WithMessage(err, "failed to build tree"), merkle.ErrEmptyInput), true)
}
