package wireformat

import (
	"encoding/binary"
	"fmt"
)

const (
	// MagicByte is the first byte of every wire format message.
	MagicByte byte = 0x00

	// HeaderLength is the size of the wire format prefix: the magic byte
	// followed by a 4-byte big-endian schema id.
	HeaderLength = 5

	// PayloadOffset is the index at which the serialized payload starts.
	PayloadOffset = HeaderLength
)

// validate checks that data starts with the magic byte and is long enough to
// hold the header plus at least one payload byte.
func validate(data []byte) error {
	if len(data) <= HeaderLength {
		return fmt.Errorf("%w: %d bytes, need more than %d", ErrMalformed, len(data), HeaderLength)
	}
	if data[0] != MagicByte {
		return fmt.Errorf("%w: unknown magic byte 0x%x", ErrMalformed, data[0])
	}
	return nil
}

// DecodeSchemaID reads the schema id from the wire format header of data.
// It fails with ErrMalformed if the magic byte is wrong or data is shorter
// than the header plus one payload byte.
func DecodeSchemaID(data []byte) (int32, error) {
	if err := validate(data); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(data[1:HeaderLength])), nil
}

// SetSchemaID overwrites the schema id in the header of data in place,
// leaving the magic byte and the payload untouched. The same validity rules
// as DecodeSchemaID apply.
func SetSchemaID(data []byte, id int32) error {
	if err := validate(data); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(data[1:HeaderLength], uint32(id))
	return nil
}

// Payload returns the serialized payload that follows the header. The
// returned slice aliases data; it is not a copy.
func Payload(data []byte) ([]byte, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	return data[PayloadOffset:], nil
}

// Prepend builds a new wire format message carrying id followed by payload.
func Prepend(id int32, payload []byte) []byte {
	buf := make([]byte, HeaderLength+len(payload))
	buf[0] = MagicByte
	binary.BigEndian.PutUint32(buf[1:HeaderLength], uint32(id))
	copy(buf[PayloadOffset:], payload)
	return buf
}
