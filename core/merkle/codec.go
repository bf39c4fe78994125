package merkle

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	_ encoding.BinaryMarshaler   = (*Node)(nil)
	_ encoding.BinaryUnmarshaler = (*Node)(nil)
	_ encoding.BinaryMarshaler   = (*Proof)(nil)
	_ encoding.BinaryUnmarshaler = (*Proof)(nil)

	CodecVersion = uint16(1)

	NodeCodecMagicBytes  = crypto.Keccak256([]byte("merkle-tree-node-codec"))
	ProofCodecMagicBytes = crypto.Keccak256([]byte("merkle-tree-proof-codec"))
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (n *Node) MarshalBinary() ([]byte, error) {
	return marshalBinary(NodeCodecMagicBytes, n)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (n *Node) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(NodeCodecMagicBytes, data, n)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (proof *Proof) MarshalBinary() ([]byte, error) {
	return marshalBinary(ProofCodecMagicBytes, proof)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (proof *Proof) UnmarshalBinary(data []byte) error {
	return unmarshalBinary(ProofCodecMagicBytes, data, proof)
}

// marshalBinary encodes v as:
// MagicBytes + CodecVersion (2 bytes) + Payload Length (4 bytes) + JSON Payload
func marshalBinary(magic []byte, v interface{}) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to marshal to JSON")
	}

	if uint64(len(payload)) > math.MaxUint32 {
		return nil, errors.New("payload too large")
	}

	data := make([]byte, len(magic)+2+4+len(payload))
	offset := 0

	copy(data[offset:], magic)
	offset += len(magic)

	binary.BigEndian.PutUint16(data[offset:], CodecVersion)
	offset += 2

	binary.BigEndian.PutUint32(data[offset:], uint32(len(payload)))
	offset += 4

	copy(data[offset:], payload)

	return data, nil
}

func unmarshalBinary(magic, data []byte, v interface{}) error {
	offset := 0
	datalen := len(data)

	if datalen < offset+len(magic) {
		return errors.New("not enough data to read magic bytes")
	}

	if !bytes.Equal(data[offset:offset+len(magic)], magic) {
		return errors.New("invalid magic bytes")
	}
	offset += len(magic)

	if datalen < offset+2 {
		return errors.New("not enough data to read codec version")
	}
	version := binary.BigEndian.Uint16(data[offset : offset+2])
	if version != CodecVersion {
		return errors.Errorf("unsupported codec version: got %d, expected %d", version, CodecVersion)
	}
	offset += 2

	if datalen < offset+4 {
		return errors.New("not enough data to read payload length")
	}
	payloadLength := int(binary.BigEndian.Uint32(data[offset : offset+4]))
	offset += 4

	if datalen != offset+payloadLength {
		return errors.Errorf("payload length mismatch: got %d, expected %d", datalen-offset, payloadLength)
	}

	if err := json.Unmarshal(data[offset:], v); err != nil {
		return errors.WithMessage(err, "failed to unmarshal from JSON")
	}

	return nil
}
