package core

import "github.com/pkg/errors"

// Iterator iterates over data in batches.
type Iterator interface {
	Next() (bool, error)
	Current() []byte
}

type dataIterator struct {
	data    IterableData
	buf     []byte // buffer to read data
	bufSize int    // actual data size in buffer
	offset  int64  // offset to read data
}

var _ Iterator = (*dataIterator)(nil)

// NewIterator returns an iterator reading data from offset in batches of the
// specified size. The last batch may be shorter, and the buffer returned by
// Current is reused between calls of Next.
func NewIterator(data IterableData, offset int64, batch int64) Iterator {
	if batch <= 0 {
		panic("batch size should be positive")
	}

	return &dataIterator{
		data:   data,
		buf:    make([]byte, batch),
		offset: offset,
	}
}

func (it *dataIterator) Next() (bool, error) {
	// Reject invalid offset
	if it.offset < 0 || it.offset >= it.data.Size() {
		it.bufSize = 0
		return false, nil
	}

	expectedBufSize := min(int64(len(it.buf)), it.data.Size()-it.offset)

	n, err := it.data.Read(it.buf[:expectedBufSize], it.offset)
	if err != nil {
		return false, err
	}

	if int64(n) != expectedBufSize {
		return false, errors.Errorf("unexpected end of data at offset %v, expected = %v, actual = %v",
			it.offset, expectedBufSize, n)
	}

	it.bufSize = n
	it.offset += int64(n)

	return true, nil
}

func (it *dataIterator) Current() []byte {
	return it.buf[:it.bufSize]
}
