package core

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/srinathln7/merkle-tree/core/merkle"
)

var (
	// ErrFileRequired is returned when manipulate on a folder.
	ErrFileRequired = errors.New("file required")

	// ErrFileEmpty is returned when empty file opened.
	ErrFileEmpty = errors.New("file is empty")
)

// File implement of IterableData, the underlying is a file on disk
type File struct {
	os.FileInfo
	underlying *os.File
	offset     int64
	size       int64
}

var _ IterableData = (*File)(nil)

// Read reads at most len(buf) bytes at offset within the file fragment.
func (file *File) Read(buf []byte, offset int64) (int, error) {
	if offset < 0 || offset > file.size {
		return 0, errors.Errorf("offset %v out of range [0, %v]", offset, file.size)
	}

	if remaining := file.size - offset; int64(len(buf)) > remaining {
		buf = buf[:remaining]
	}

	n, err := file.underlying.ReadAt(buf, file.offset+offset)
	// unexpected IO error
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	return n, nil
}

func Exists(name string) (bool, error) {
	file, err := os.Open(name)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	defer file.Close()

	return true, nil
}

// Open create a File from a file on disk
func Open(name string) (*File, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if info.IsDir() {
		file.Close()
		return nil, ErrFileRequired
	}

	if info.Size() == 0 {
		file.Close()
		return nil, ErrFileEmpty
	}

	return &File{
		FileInfo:   info,
		underlying: file,
		offset:     0,
		size:       info.Size(),
	}, nil
}

// MerkleRoot returns the merkle root hash of a file on disk
func MerkleRoot(filename string, blockSize int64, hasher merkle.Hasher) (common.Hash, error) {
	file, err := Open(filename)
	if err != nil {
		return common.Hash{}, errors.WithMessage(err, "failed to open file")
	}
	defer file.Close()

	tree, err := MerkleTree(file, blockSize, hasher)
	if err != nil {
		return common.Hash{}, errors.WithMessage(err, "failed to create merkle tree")
	}

	return tree.RootHash(), nil
}

func (file *File) Close() error {
	return file.underlying.Close()
}

func (file *File) Size() int64 {
	return file.size
}

func (file *File) Offset() int64 {
	return file.offset
}

// Split splits the file into fragments of the specified size, which share the
// underlying file handle. Fragments must not be used after the file is closed.
func (file *File) Split(fragmentSize int64) []IterableData {
	if fragmentSize <= 0 {
		return []IterableData{file}
	}

	fragments := make([]IterableData, 0)
	for offset := int64(0); offset < file.size; offset += fragmentSize {
		size := min(file.size-offset, fragmentSize)
		fragment := &File{
			FileInfo:   file.FileInfo,
			underlying: file.underlying,
			offset:     file.offset + offset,
			size:       size,
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}
