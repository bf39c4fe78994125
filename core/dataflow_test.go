package core

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/srinathln7/merkle-tree/core/merkle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomData(t *testing.T, size int) []byte {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	data := make([]byte, size)
	n, err := r.Read(data)
	require.NoError(t, err)
	require.Equal(t, n, len(data))

	return data
}

func writeTempFile(t *testing.T, data []byte) string {
	tmpFile, err := os.CreateTemp("", "merkle-tree-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	_, err = tmpFile.Write(data)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

func TestFileAndInMemoryData(t *testing.T) {
	data := randomData(t, DefaultBlockSize*10+10)
	name := writeTempFile(t, data)

	file, err := Open(name)
	require.NoError(t, err)
	defer file.Close()

	fileTree, err := MerkleTree(file, DefaultBlockSize, nil)
	assert.NoError(t, err)
	assert.Equal(t, 11, fileTree.NumLeaves())

	inMem, err := NewDataInMemory(data)
	require.NoError(t, err)
	inMemTree, err := MerkleTree(inMem, DefaultBlockSize, nil)
	assert.NoError(t, err)

	assert.Equal(t, fileTree.RootHash(), inMemTree.RootHash())

	root, err := MerkleRoot(name, DefaultBlockSize, nil)
	assert.NoError(t, err)
	assert.Equal(t, fileTree.RootHash(), root)
}

func TestBlocks(t *testing.T) {
	data := randomData(t, 1000)

	inMem, err := NewDataInMemory(data)
	require.NoError(t, err)

	blocks, err := Blocks(inMem, 300)
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	assert.Equal(t, data[:300], blocks[0])
	assert.Equal(t, data[900:], blocks[3])

	numBlocks, err := NumBlocks(inMem, 300)
	assert.NoError(t, err)
	assert.Equal(t, uint64(4), numBlocks)

	for i, block := range blocks {
		b, err := BlockAt(inMem, 300, uint64(i))
		assert.NoError(t, err)
		assert.Equal(t, block, b)
	}

	_, err = BlockAt(inMem, 300, 4)
	assert.ErrorIs(t, err, merkle.ErrIndexOutOfBounds)

	_, err = Blocks(inMem, 0)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = MerkleTree(inMem, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockSize)

	// the tree commits to the exact blocks
	tree, err := MerkleTree(inMem, 300, nil)
	require.NoError(t, err)

	expected, err := merkle.NewTree(blocks)
	require.NoError(t, err)
	assert.Equal(t, expected.RootHash(), tree.RootHash())
}

func TestSplit(t *testing.T) {
	data := randomData(t, 1000)
	name := writeTempFile(t, data)

	file, err := Open(name)
	require.NoError(t, err)
	defer file.Close()

	inMem, err := NewDataInMemory(data)
	require.NoError(t, err)

	for _, whole := range []IterableData{file, inMem} {
		fragments := whole.Split(400)
		require.Len(t, fragments, 3)
		assert.Equal(t, int64(800), fragments[2].Offset())
		assert.Equal(t, int64(200), fragments[2].Size())

		blocks, err := Blocks(fragments[1], 100)
		require.NoError(t, err)
		require.Len(t, blocks, 4)
		assert.Equal(t, data[700:800], blocks[3])

		blocks, err = Blocks(fragments[2], 150)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, data[950:], blocks[1])

		assert.Len(t, whole.Split(0), 1)
	}
}

func TestOpen(t *testing.T) {
	_, err := Open(writeTempFile(t, nil))
	assert.ErrorIs(t, err, ErrFileEmpty)

	_, err = Open(os.TempDir())
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = NewDataInMemory(nil)
	assert.ErrorIs(t, err, ErrDataEmpty)

	exists, err := Exists(writeTempFile(t, []byte("x")))
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = Exists(os.TempDir() + "/merkle-tree-not-exists")
	assert.NoError(t, err)
	assert.False(t, exists)
}
