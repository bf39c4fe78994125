package core

import "github.com/pkg/errors"

// ErrDataEmpty is returned when in memory data is empty.
var ErrDataEmpty = errors.New("data is empty")

// DataInMemory implement of IterableData, the underlying is memory data
type DataInMemory struct {
	underlying []byte
	offset     int64
	size       int64
}

var _ IterableData = (*DataInMemory)(nil)

// NewDataInMemory creates DataInMemory from given data
func NewDataInMemory(data []byte) (*DataInMemory, error) {
	if len(data) == 0 {
		return nil, ErrDataEmpty
	}
	return &DataInMemory{
		underlying: data,
		offset:     0,
		size:       int64(len(data)),
	}, nil
}

func (data *DataInMemory) Read(buf []byte, offset int64) (int, error) {
	if offset < 0 || offset > data.size {
		return 0, errors.Errorf("offset %v out of range [0, %v]", offset, data.size)
	}

	start := data.offset + offset
	n := copy(buf, data.underlying[start:data.offset+data.size])
	return n, nil
}

func (data *DataInMemory) Size() int64 {
	return data.size
}

func (data *DataInMemory) Offset() int64 {
	return data.offset
}

func (data *DataInMemory) Split(fragmentSize int64) []IterableData {
	if fragmentSize <= 0 {
		return []IterableData{data}
	}

	fragments := make([]IterableData, 0)
	for offset := int64(0); offset < data.size; offset += fragmentSize {
		size := min(data.size-offset, fragmentSize)
		fragment := &DataInMemory{
			underlying: data.underlying,
			offset:     data.offset + offset,
			size:       size,
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}
