package protocol

import (
	"bytes"
	"errors"
	"testing"

	"google.golang.org/protobuf/proto"
)

// TestEncodeKnownBytes pins the wire format of each request to Game.proto.
func TestEncodeKnownBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want []byte
	}{
		{
			name: "login",
			req:  &Login{Account: "u1", Password: "p1"},
			want: []byte{0x03, 0xE9, 0x0A, 0x02, 'u', '1', 0x12, 0x02, 'p', '1'},
		},
		{
			name: "register",
			req:  &Register{Account: "u1", Password: "p1"},
			want: []byte{0x03, 0xEB, 0x0A, 0x02, 'u', '1', 0x12, 0x02, 'p', '1'},
		},
		{
			name: "logout has no payload",
			req:  &Logout{},
			want: []byte{0x04, 0x4D},
		},
		{
			name: "join room",
			req:  &JoinRoom{RoomId: "r"},
			want: []byte{0x07, 0xD1, 0x0A, 0x01, 'r'},
		},
		{
			name: "room action",
			req:  &RoomAction{Action: 1, Data: []byte{0xFF}},
			want: []byte{0x07, 0xD3, 0x08, 0x01, 0x12, 0x01, 0xFF},
		},
		{
			name: "ping",
			req:  &Ping{Timestamp: 300},
			want: []byte{0x23, 0x29, 0x08, 0xAC, 0x02},
		},
		{
			name: "zero values are omitted",
			req:  &Ping{},
			want: []byte{0x23, 0x29},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.req)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}

			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestEncodeNilRequest(t *testing.T) {
	t.Parallel()

	if _, err := Encode(nil); !errors.Is(err, ErrUnknownMessageID) {
		t.Errorf("Encode(nil) error = %v, want ErrUnknownMessageID", err)
	}
}

func TestNewRequestUnknownID(t *testing.T) {
	t.Parallel()

	for _, id := range []MessageID{None, S2CLoginResult, S2CPong, 4242} {
		if _, err := NewRequest(id); !errors.Is(err, ErrUnknownMessageID) {
			t.Errorf("NewRequest(%v) error = %v, want ErrUnknownMessageID", id, err)
		}
	}
}

// TestIDPartition verifies that request and reply ids never overlap.
func TestIDPartition(t *testing.T) {
	t.Parallel()

	for id := range names {
		if id.IsRequest() == id.IsReply() {
			t.Errorf("%v: IsRequest=%v IsReply=%v, want exactly one", id, id.IsRequest(), id.IsReply())
		}
	}

	if None.IsRequest() || None.IsReply() {
		t.Error("None must not be part of either partition")
	}
}

func TestMessageIDString(t *testing.T) {
	t.Parallel()

	if got := C2SLogin.String(); got != "C2S_Login" {
		t.Errorf("C2SLogin.String() = %q", got)
	}
	if got := S2CKick.String(); got != "S2C_Kick" {
		t.Errorf("S2CKick.String() = %q", got)
	}
	if got := MessageID(4242).String(); got != "4242" {
		t.Errorf("MessageID(4242).String() = %q", got)
	}
}

// TestDecode tests the Decode function on frames sent by the gate
func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      []byte
		wantID    MessageID
		wantMsg   Reply
		wantError error
	}{
		{
			name:    "login result",
			data:    []byte{0x03, 0xEA, 0x10, 0x2A},
			wantID:  S2CLoginResult,
			wantMsg: &LoginResult{Code: 0, Uid: 42},
		},
		{
			name:    "register result duplicate",
			data:    []byte{0x03, 0xEC, 0x08, 0x03},
			wantID:  S2CRegisterResult,
			wantMsg: &RegisterResult{Code: 3},
		},
		{
			name:    "kick",
			data:    []byte{0x04, 0x4E, 0x0A, 0x03, 'b', 'y', 'e'},
			wantID:  S2CKick,
			wantMsg: &Kick{Reason: "bye"},
		},
		{
			name:    "pong with empty payload",
			data:    []byte{0x23, 0x2A},
			wantID:  S2CPong,
			wantMsg: &Pong{},
		},
		{
			name:    "unknown fields are skipped",
			data:    []byte{0x03, 0xEC, 0x28, 0x07, 0x08, 0x03},
			wantID:  S2CRegisterResult,
			wantMsg: &RegisterResult{Code: 3},
		},
		{
			name:    "mismatched wire type is skipped",
			data:    []byte{0x23, 0x2A, 0x0A, 0x01, 0x00},
			wantID:  S2CPong,
			wantMsg: &Pong{},
		},
		{
			name:   "unknown id yields nil message",
			data:   []byte{0x12, 0x34, 0xDE, 0xAD},
			wantID: 0x1234,
		},
		{
			name:   "request id is not a reply",
			data:   []byte{0x03, 0xE9},
			wantID: C2SLogin,
		},
		{
			name:      "short frame",
			data:      []byte{0x03},
			wantError: ErrMalformedFrame,
		},
		{
			name:      "truncated varint",
			data:      []byte{0x23, 0x2A, 0x08, 0x80},
			wantError: ErrCorruptPayload,
		},
		{
			name:      "length exceeds payload",
			data:      []byte{0x07, 0xD2, 0x12, 0x05, 'r'},
			wantError: ErrCorruptPayload,
		},
		{
			name:      "string field is not utf-8",
			data:      []byte{0x04, 0x4E, 0x0A, 0x02, 0xFF, 0xFE},
			wantError: ErrCorruptPayload,
		},
		{
			name:      "field number zero",
			data:      []byte{0x04, 0x4E, 0x00},
			wantError: ErrCorruptPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, msg, err := Decode(tt.data)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantError)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}

			if id != tt.wantID {
				t.Errorf("Decode() id = %v, want %v", id, tt.wantID)
			}

			if tt.wantMsg == nil {
				if msg != nil {
					t.Errorf("Decode() msg = %#v, want nil", msg)
				}
				return
			}

			if !proto.Equal(msg, tt.wantMsg) {
				t.Errorf("Decode() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

// TestNegativeCode verifies int32 sign extension on the wire.
func TestNegativeCode(t *testing.T) {
	t.Parallel()

	data, err := EncodeReply(&LoginResult{Code: -1, Uid: 7})
	if err != nil {
		t.Fatalf("EncodeReply() failed: %v", err)
	}

	// tag + 10 byte varint + tag + 1 byte varint
	if want := headerSize + 1 + 10 + 1 + 1; len(data) != want {
		t.Errorf("frame length = %d, want %d", len(data), want)
	}

	_, msg, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	got := msg.(*LoginResult)
	if got.Code != -1 || got.Uid != 7 {
		t.Errorf("Decode() = %+v, want {Code:-1 Uid:7}", got)
	}
}

// TestRequestRoundTrip checks the gate side of the codec against the client side.
func TestRequestRoundTrip(t *testing.T) {
	t.Parallel()

	reqs := []Request{
		&Login{Account: "acct", Password: "secret"},
		&Register{Account: "acct", Password: "secret"},
		&Logout{},
		&JoinRoom{RoomId: "test_room_001"},
		&RoomAction{Action: -3, Data: []byte("move")},
		&Ping{Timestamp: 1700000000000},
	}

	for _, req := range reqs {
		t.Run(req.ID().String(), func(t *testing.T) {
			t.Parallel()

			data, err := Encode(req)
			if err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}

			id, got, err := DecodeRequest(data)
			if err != nil {
				t.Fatalf("DecodeRequest() failed: %v", err)
			}

			if id != req.ID() {
				t.Errorf("id = %v, want %v", id, req.ID())
			}

			if !proto.Equal(got, req) {
				t.Errorf("DecodeRequest() = %v, want %v", got, req)
			}
		})
	}
}

func TestDecodeRequestInvalidUTF8(t *testing.T) {
	t.Parallel()

	// C2S_Login with account 0xff
	data := []byte{0x03, 0xE9, 0x0A, 0x01, 0xFF}

	id, msg, err := DecodeRequest(data)
	if !errors.Is(err, ErrCorruptPayload) {
		t.Fatalf("DecodeRequest() error = %v, want ErrCorruptPayload", err)
	}
	if id != C2SLogin || msg != nil {
		t.Errorf("DecodeRequest() = (%v, %v), want (C2S_Login, nil)", id, msg)
	}
}

func TestDecodeRequestUnknownID(t *testing.T) {
	t.Parallel()

	id, msg, err := DecodeRequest([]byte{0x23, 0x2A, 0x08, 0x01})
	if err != nil {
		t.Fatalf("DecodeRequest() failed: %v", err)
	}
	if id != S2CPong || msg != nil {
		t.Errorf("DecodeRequest() = (%v, %#v), want (S2C_Pong, nil)", id, msg)
	}
}

// BenchmarkDecodeLoginResult benchmarks decoding a typical reply
func BenchmarkDecodeLoginResult(b *testing.B) {
	data, _ := EncodeReply(&LoginResult{Uid: 123456})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode(data)
	}
}
