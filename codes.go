package gateprobe

// Result codes carried by S2C_LoginResult and S2C_RegisterResult.
const (
	CodeSuccess          int32 = 0
	CodeAccountNotFound  int32 = 1
	CodeWrongPassword    int32 = 2
	CodeDuplicateAccount int32 = 3
	// CodeRejected is a register the gate could not complete, such as a
	// password bcrypt refuses to hash.
	CodeRejected int32 = 4
)

// Defaults for the gate endpoint.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 9948
	DefaultPath = "/"
)

// GroupAll selects every registered scenario group.
const GroupAll = "all"

// Standard error messages
const (
	// Connection errors
	ErrConnectFailed     = "connect failed"
	ErrNotConnected      = "session is not connected"
	ErrAlreadyConnected  = "session is already connected"
	ErrTimeout           = "timed out waiting for reply"
	ErrConnectionClosed  = "connection closed by peer"
	ErrUnexpectedReply   = "unexpected reply"
	ErrFailedToEncode    = "failed to encode message"
	ErrServerRunning     = "gate already running"
	ErrUnknownGroup      = "unknown test group"
	ErrRateLimitExceeded = "rate limit exceeded"
	ErrInvalidFrame      = "invalid frame"
)

// KickReasonDuplicateLogin is the reason the reference gate sends with S2C_Kick.
const KickReasonDuplicateLogin = "account logged in elsewhere"
