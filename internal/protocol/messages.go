package protocol

import (
	"strconv"

	"google.golang.org/protobuf/proto"
)

// MessageID is the 16-bit discriminator at the head of every frame.
type MessageID uint16

// None is returned in place of an id when no message arrived.
const None MessageID = 0

// Client to server requests.
const (
	C2SLogin      MessageID = 1001
	C2SRegister   MessageID = 1003
	C2SLogout     MessageID = 1101
	C2SJoinRoom   MessageID = 2001
	C2SRoomAction MessageID = 2003
	C2SPing       MessageID = 9001
)

// Server to client replies and notices.
const (
	S2CLoginResult    MessageID = 1002
	S2CRegisterResult MessageID = 1004
	S2CKick           MessageID = 1102
	S2CJoinResult     MessageID = 2002
	S2CRoomSync       MessageID = 2004
	S2CPong           MessageID = 9002
)

var names = map[MessageID]string{
	C2SLogin:          "C2S_Login",
	S2CLoginResult:    "S2C_LoginResult",
	C2SRegister:       "C2S_Register",
	S2CRegisterResult: "S2C_RegisterResult",
	C2SLogout:         "C2S_Logout",
	S2CKick:           "S2C_Kick",
	C2SJoinRoom:       "C2S_JoinRoom",
	S2CJoinResult:     "S2C_JoinResult",
	C2SRoomAction:     "C2S_RoomAction",
	S2CRoomSync:       "S2C_RoomSync",
	C2SPing:           "C2S_Ping",
	S2CPong:           "S2C_Pong",
}

// String returns the symbolic name, or the decimal id when it is not part of the protocol.
func (id MessageID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}

// IsRequest reports whether id belongs to the client to server partition.
func (id MessageID) IsRequest() bool {
	_, err := NewRequest(id)
	return err == nil
}

// IsReply reports whether id belongs to the server to client partition.
func (id MessageID) IsReply() bool {
	_, ok := NewReply(id)
	return ok
}

// Message is a generated payload schema bound to exactly one MessageID.
type Message interface {
	proto.Message
	ID() MessageID
}

// Request is a message the client sends. The set is closed.
type Request interface {
	Message
	request()
}

// Reply is a message the gate sends. The set is closed.
type Reply interface {
	Message
	reply()
}

// NewRequest returns an empty request schema for id.
func NewRequest(id MessageID) (Request, error) {
	switch id {
	case C2SLogin:
		return &Login{}, nil
	case C2SRegister:
		return &Register{}, nil
	case C2SLogout:
		return &Logout{}, nil
	case C2SJoinRoom:
		return &JoinRoom{}, nil
	case C2SRoomAction:
		return &RoomAction{}, nil
	case C2SPing:
		return &Ping{}, nil
	}
	return nil, unknownID(id)
}

// NewReply returns an empty reply schema for id. ok is false for ids outside
// the reply table.
func NewReply(id MessageID) (msg Reply, ok bool) {
	switch id {
	case S2CLoginResult:
		return &LoginResult{}, true
	case S2CRegisterResult:
		return &RegisterResult{}, true
	case S2CKick:
		return &Kick{}, true
	case S2CJoinResult:
		return &JoinResult{}, true
	case S2CRoomSync:
		return &RoomSync{}, true
	case S2CPong:
		return &Pong{}, true
	}
	return nil, false
}

// Short names for the generated schemas in Game.pb.go.
type (
	Login          = C2S_Login
	Register       = C2S_Register
	Logout         = C2S_Logout
	JoinRoom       = C2S_JoinRoom
	RoomAction     = C2S_RoomAction
	Ping           = C2S_Ping
	LoginResult    = S2C_LoginResult
	RegisterResult = S2C_RegisterResult
	Kick           = S2C_Kick
	JoinResult     = S2C_JoinResult
	RoomSync       = S2C_RoomSync
	Pong           = S2C_Pong
)

func (*C2S_Login) ID() MessageID      { return C2SLogin }
func (*C2S_Register) ID() MessageID   { return C2SRegister }
func (*C2S_Logout) ID() MessageID     { return C2SLogout }
func (*C2S_JoinRoom) ID() MessageID   { return C2SJoinRoom }
func (*C2S_RoomAction) ID() MessageID { return C2SRoomAction }
func (*C2S_Ping) ID() MessageID       { return C2SPing }

func (*C2S_Login) request()      {}
func (*C2S_Register) request()   {}
func (*C2S_Logout) request()     {}
func (*C2S_JoinRoom) request()   {}
func (*C2S_RoomAction) request() {}
func (*C2S_Ping) request()       {}

func (*S2C_LoginResult) ID() MessageID    { return S2CLoginResult }
func (*S2C_RegisterResult) ID() MessageID { return S2CRegisterResult }
func (*S2C_Kick) ID() MessageID           { return S2CKick }
func (*S2C_JoinResult) ID() MessageID     { return S2CJoinResult }
func (*S2C_RoomSync) ID() MessageID       { return S2CRoomSync }
func (*S2C_Pong) ID() MessageID           { return S2CPong }

func (*S2C_LoginResult) reply()    {}
func (*S2C_RegisterResult) reply() {}
func (*S2C_Kick) reply()           {}
func (*S2C_JoinResult) reply()     {}
func (*S2C_RoomSync) reply()       {}
func (*S2C_Pong) reply()           {}
