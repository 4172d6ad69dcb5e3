package protocol

import "errors"

var (
	// ErrUnknownMessageID is returned when an id has no schema in the table being consulted.
	ErrUnknownMessageID = errors.New("unknown message id")
	// ErrMalformedFrame is returned for inputs shorter than the 2-byte header.
	ErrMalformedFrame = errors.New("malformed frame")
	// ErrCorruptPayload is returned when a payload is not valid for its schema.
	ErrCorruptPayload = errors.New("corrupt payload")
	// ErrPayloadTooLarge is returned when a frame exceeds the maximum size.
	ErrPayloadTooLarge = errors.New("payload too large")
)
