package core

import (
	"github.com/pkg/errors"
	"github.com/srinathln7/merkle-tree/core/merkle"
)

// DefaultBlockSize represents the default block size in bytes.
const DefaultBlockSize = 256

// ErrInvalidBlockSize is returned when data is split by a non-positive block size.
var ErrInvalidBlockSize = errors.New("block size must be positive")

// IterableData is a sequence of bytes that can be read at random offsets and
// split into fixed size blocks, which are the leaves of a merkle tree.
type IterableData interface {
	Size() int64
	Offset() int64
	Read(buf []byte, offset int64) (int, error)
	Split(fragmentSize int64) []IterableData
}

// NumSplits returns the number of units required to cover total bytes.
func NumSplits(total int64, unit int64) uint64 {
	return uint64((total-1)/unit + 1)
}

// NumBlocks returns the number of blocks of data.
func NumBlocks(data IterableData, blockSize int64) (uint64, error) {
	if blockSize <= 0 {
		return 0, ErrInvalidBlockSize
	}

	return NumSplits(data.Size(), blockSize), nil
}

// Blocks reads all blocks of data. The last block may be shorter than blockSize.
func Blocks(data IterableData, blockSize int64) ([][]byte, error) {
	numBlocks, err := NumBlocks(data, blockSize)
	if err != nil {
		return nil, err
	}

	blocks := make([][]byte, 0, numBlocks)

	iter := NewIterator(data, 0, blockSize)
	for {
		ok, err := iter.Next()
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to read block %v", len(blocks))
		}

		if !ok {
			break
		}

		blocks = append(blocks, append([]byte{}, iter.Current()...))
	}

	return blocks, nil
}

// BlockAt reads the block at the specified position.
func BlockAt(data IterableData, blockSize int64, i uint64) ([]byte, error) {
	numBlocks, err := NumBlocks(data, blockSize)
	if err != nil {
		return nil, err
	}

	if i >= numBlocks {
		return nil, errors.WithMessagef(merkle.ErrIndexOutOfBounds, "block = %v, blocks = %v", i, numBlocks)
	}

	offset := int64(i) * blockSize
	size := min(blockSize, data.Size()-offset)

	buf := make([]byte, size)
	n, err := data.Read(buf, offset)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read block %v", i)
	}

	if int64(n) != size {
		return nil, errors.Errorf("block %v truncated, expected = %v, actual = %v", i, size, n)
	}

	return buf, nil
}

// MerkleTree builds the merkle tree of data split into blocks, using the
// specified hasher or the default one if nil.
func MerkleTree(data IterableData, blockSize int64, hasher merkle.Hasher) (*merkle.Tree, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	iter := NewIterator(data, 0, blockSize)
	builder := merkle.NewTreeBuilder(hasher)

	for {
		ok, err := iter.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		builder.Append(iter.Current())
	}

	return builder.Build()
}
