package merkle

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeJSON(t *testing.T) {
	tree := createTreeByChunks(t, 5)

	data, err := json.Marshal(tree.Root())
	require.NoError(t, err)

	var decoded Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tree.Root(), &decoded)
	assert.NoError(t, decoded.Verify(tree.Hasher()))

	// leaves omit children
	data, err = json.Marshal(tree.Root().Left.Left.Left)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "left\":")
	assert.Contains(t, string(data), `"leftIdx":0`)
}

func TestNodeBinary(t *testing.T) {
	for chunks := 1; chunks <= 9; chunks++ {
		tree := createTreeByChunks(t, chunks)

		data, err := tree.Root().MarshalBinary()
		require.NoError(t, err)

		var decoded Node
		require.NoError(t, decoded.UnmarshalBinary(data))
		assert.Equal(t, tree.Root(), &decoded)
	}
}

func TestProofBinary(t *testing.T) {
	tree := createTreeByChunks(t, 11)

	for i := 0; i < tree.NumLeaves(); i++ {
		proof, err := tree.GenerateProof(i)
		require.NoError(t, err)

		data, err := proof.MarshalBinary()
		require.NoError(t, err)

		var decoded Proof
		require.NoError(t, decoded.UnmarshalBinary(data))
		assert.Equal(t, proof, &decoded)
		assert.NoError(t, decoded.Validate(nil, tree.RootHash(), createChunkData(i)))
	}
}

func TestCodecErrors(t *testing.T) {
	tree := createTreeByChunks(t, 2)

	proof, err := tree.GenerateProof(0)
	require.NoError(t, err)

	data, err := proof.MarshalBinary()
	require.NoError(t, err)

	var decoded Proof
	assert.Error(t, decoded.UnmarshalBinary(nil))
	assert.Error(t, decoded.UnmarshalBinary(data[:len(ProofCodecMagicBytes)+1]))
	assert.Error(t, decoded.UnmarshalBinary(data[:len(data)-1]))

	// node codec does not accept proofs
	var node Node
	assert.Error(t, node.UnmarshalBinary(data))

	unsupported := append([]byte{}, data...)
	binary.BigEndian.PutUint16(unsupported[len(ProofCodecMagicBytes):], CodecVersion+1)
	assert.Error(t, decoded.UnmarshalBinary(unsupported))
}
