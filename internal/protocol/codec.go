package protocol

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative ../../proto/Game.proto

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

var unmarshalOptions = proto.UnmarshalOptions{DiscardUnknown: true}

// Encode serializes a client request into a frame.
func Encode(req Request) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrUnknownMessageID)
	}
	if _, err := NewRequest(req.ID()); err != nil {
		return nil, err
	}
	return marshal(req)
}

// Decode parses a frame sent by the gate. Ids outside the reply table are not
// an error: the id is returned with a nil message so callers can report an
// unexpected message themselves.
func Decode(data []byte) (MessageID, Reply, error) {
	id, payload, err := DecodeFrame(data)
	if err != nil {
		return 0, nil, err
	}
	msg, ok := NewReply(id)
	if !ok {
		return id, nil, nil
	}
	if err := unmarshal(payload, msg); err != nil {
		return id, nil, err
	}
	return id, msg, nil
}

// EncodeReply serializes a gate reply into a frame.
func EncodeReply(msg Reply) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil reply", ErrUnknownMessageID)
	}
	if _, ok := NewReply(msg.ID()); !ok {
		return nil, unknownID(msg.ID())
	}
	return marshal(msg)
}

// DecodeRequest parses a frame sent by a client. Like Decode, unknown ids
// yield a nil message and no error.
func DecodeRequest(data []byte) (MessageID, Request, error) {
	id, payload, err := DecodeFrame(data)
	if err != nil {
		return 0, nil, err
	}
	msg, err := NewRequest(id)
	if err != nil {
		return id, nil, nil
	}
	if err := unmarshal(payload, msg); err != nil {
		return id, nil, err
	}
	return id, msg, nil
}

func marshal(msg Message) ([]byte, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %v: %w", msg.ID(), err)
	}
	return EncodeFrame(msg.ID(), payload)
}

// unmarshal rejects truncated fields, mismatched wire types on known fields
// and strings that are not valid UTF-8.
func unmarshal(payload []byte, msg Message) error {
	if err := unmarshalOptions.Unmarshal(payload, msg); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrCorruptPayload, msg.ID(), err)
	}
	return nil
}

func unknownID(id MessageID) error {
	return fmt.Errorf("%w: %v", ErrUnknownMessageID, id)
}
