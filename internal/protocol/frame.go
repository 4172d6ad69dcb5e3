package protocol

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize     = 2
	maxPayloadSize = 1<<20 - headerSize // 1MB max frame size
)

// EncodeFrame encodes the message id as the first 2 bytes (big-endian) followed by the payload.
func EncodeFrame(id MessageID, payload []byte) ([]byte, error) {
	if len(payload) > maxPayloadSize {
		return nil, fmt.Errorf("%w: %d exceeds maximum %d bytes", ErrPayloadTooLarge, len(payload), maxPayloadSize)
	}

	out := make([]byte, headerSize+len(payload))
	binary.BigEndian.PutUint16(out[:headerSize], uint16(id))
	copy(out[headerSize:], payload)
	return out, nil
}

// DecodeFrame decodes the first 2 bytes as the message id (big-endian) and returns the rest as payload.
// The payload slice references the input data - do not modify it.
func DecodeFrame(data []byte) (MessageID, []byte, error) {
	if len(data) < headerSize {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrMalformedFrame, len(data))
	}

	payloadSize := len(data) - headerSize
	if payloadSize > maxPayloadSize {
		return 0, nil, fmt.Errorf("%w: %d exceeds maximum %d bytes", ErrPayloadTooLarge, payloadSize, maxPayloadSize)
	}

	id := MessageID(binary.BigEndian.Uint16(data[:headerSize]))
	return id, data[headerSize:], nil
}
