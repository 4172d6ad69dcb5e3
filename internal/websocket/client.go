package websocket

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/protocol"
)

var (
	ErrConnectFailed    = errors.New(gateprobe.ErrConnectFailed)
	ErrNotConnected     = errors.New(gateprobe.ErrNotConnected)
	ErrAlreadyConnected = errors.New(gateprobe.ErrAlreadyConnected)
	ErrTimeout          = errors.New(gateprobe.ErrTimeout)
	ErrConnectionClosed = errors.New(gateprobe.ErrConnectionClosed)
	ErrUnexpectedReply  = errors.New(gateprobe.ErrUnexpectedReply)
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 1 << 20
	inboxSize      = 64
)

// UnexpectedReplyError is returned by composite operations when the reply id
// is not the one the request calls for. It matches ErrUnexpectedReply.
type UnexpectedReplyError struct {
	Want protocol.MessageID
	Got  protocol.MessageID
}

func (e *UnexpectedReplyError) Error() string {
	return fmt.Sprintf("%s: expected %v, got %v", gateprobe.ErrUnexpectedReply, e.Want, e.Got)
}

func (e *UnexpectedReplyError) Is(target error) bool {
	return target == ErrUnexpectedReply
}

// ClientConfig configures one game session.
type ClientConfig struct {
	// Endpoint is the gate URI, e.g. "ws://127.0.0.1:9948/".
	Endpoint string
	// Label tags every log line of the session.
	Label string
	// HandshakeTimeout bounds Connect.
	HandshakeTimeout time.Duration
	// ReplyTimeout bounds the reply wait of Register, Login and Ping.
	ReplyTimeout time.Duration
}

// DefaultClientConfig returns a configuration with 5 second handshake and reply timeouts.
func DefaultClientConfig(endpoint, label string) *ClientConfig {
	return &ClientConfig{
		Endpoint:         endpoint,
		Label:            label,
		HandshakeTimeout: 5 * time.Second,
		ReplyTimeout:     5 * time.Second,
	}
}

// link is one open connection. A background pump owns the reader so a
// receive that times out leaves the connection usable.
type link struct {
	conn    *websocket.Conn
	frames  chan []byte
	quit    chan struct{}
	done    chan struct{}
	writeMu sync.Mutex
	err     error // set by readPump before frames is closed
}

// Client is a game session: Disconnected -> Connected -> Authenticated.
// It is owned by one goroutine at a time.
type Client struct {
	cfg    ClientConfig
	dialer *websocket.Dialer
	log    zerolog.Logger

	mu   sync.Mutex
	link *link
	uid  int64
}

// NewClient creates a disconnected session.
func NewClient(cfg *ClientConfig) *Client {
	c := *cfg
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = 5 * time.Second
	}
	if c.ReplyTimeout <= 0 {
		c.ReplyTimeout = 5 * time.Second
	}
	return &Client{
		cfg: c,
		dialer: &websocket.Dialer{
			HandshakeTimeout: c.HandshakeTimeout,
		},
		log: logger.WithComponent("client").With().Str("session", c.Label).Logger(),
	}
}

// Label returns the session label.
func (c *Client) Label() string {
	return c.cfg.Label
}

// AuthenticatedID returns the uid stored by the last successful Login, or 0.
func (c *Client) AuthenticatedID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid
}

// Connected reports whether the session holds an open connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link != nil
}

// Connect opens the WebSocket to the configured endpoint.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.link != nil {
		return ErrAlreadyConnected
	}

	conn, _, err := c.dialer.DialContext(ctx, c.cfg.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConnectFailed, c.cfg.Endpoint, err)
	}
	conn.SetReadLimit(maxMessageSize)

	l := &link{
		conn:   conn,
		frames: make(chan []byte, inboxSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.readPump()

	c.link = l
	c.log.Info().Str("endpoint", c.cfg.Endpoint).Msg("connected")
	return nil
}

// Close releases the connection. It is valid in any state and never fails.
func (c *Client) Close() error {
	c.mu.Lock()
	l := c.link
	c.link = nil
	c.uid = 0
	c.mu.Unlock()

	if l == nil {
		return nil
	}

	l.writeMu.Lock()
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = l.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
	l.writeMu.Unlock()

	close(l.quit)
	_ = l.conn.Close()
	<-l.done

	c.log.Info().Msg("disconnected")
	return nil
}

// Send encodes req and writes it as one binary frame.
func (c *Client) Send(ctx context.Context, req protocol.Request) error {
	data, err := protocol.Encode(req)
	if err != nil {
		return fmt.Errorf("%s: %w", gateprobe.ErrFailedToEncode, err)
	}

	l := c.current()
	if l == nil {
		return ErrNotConnected
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = l.conn.SetWriteDeadline(deadline)
	if err := l.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	}

	c.log.Debug().Str("dir", ">>>").Stringer("msg", req.ID()).Interface("fields", req).Msg("")
	return nil
}

// Receive waits up to timeout for the next frame. ErrTimeout and
// ErrConnectionClosed are distinct outcomes. A frame with an id outside the
// reply table is returned with a nil message.
func (c *Client) Receive(ctx context.Context, timeout time.Duration) (protocol.MessageID, protocol.Reply, error) {
	l := c.current()
	if l == nil {
		return protocol.None, nil, ErrNotConnected
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case data, ok := <-l.frames:
		if !ok {
			return protocol.None, nil, fmt.Errorf("%w: %v", ErrConnectionClosed, l.err)
		}
		id, msg, err := protocol.Decode(data)
		if err != nil {
			c.log.Error().Err(err).Hex("frame", data).Msg("undecodable frame")
			return id, nil, err
		}
		c.log.Debug().Str("dir", "<<<").Stringer("msg", id).Interface("fields", msg).Msg("")
		return id, msg, nil
	case <-timer.C:
		return protocol.None, nil, fmt.Errorf("%w after %v", ErrTimeout, timeout)
	case <-ctx.Done():
		return protocol.None, nil, ctx.Err()
	}
}

// ReceiveOptional is Receive with timeout and peer close reported as
// protocol.None instead of an error.
func (c *Client) ReceiveOptional(ctx context.Context, timeout time.Duration) (protocol.MessageID, protocol.Reply, error) {
	id, msg, err := c.Receive(ctx, timeout)
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrConnectionClosed) {
		return protocol.None, nil, nil
	}
	return id, msg, err
}

// Register sends C2S_Register and returns the S2C_RegisterResult verbatim.
func (c *Client) Register(ctx context.Context, account, password string) (*protocol.RegisterResult, error) {
	return call[*protocol.RegisterResult](ctx, c, &protocol.Register{Account: account, Password: password}, protocol.S2CRegisterResult)
}

// Login sends C2S_Login. On a success code the returned uid becomes the
// session's authenticated id.
func (c *Client) Login(ctx context.Context, account, password string) (*protocol.LoginResult, error) {
	res, err := call[*protocol.LoginResult](ctx, c, &protocol.Login{Account: account, Password: password}, protocol.S2CLoginResult)
	if err != nil {
		return nil, err
	}
	if res.Code == gateprobe.CodeSuccess {
		c.mu.Lock()
		c.uid = res.Uid
		c.mu.Unlock()
	}
	return res, nil
}

// Ping sends a C2S_Ping stamped with the current unix milliseconds and
// returns the timestamp echoed by S2C_Pong.
func (c *Client) Ping(ctx context.Context) (int64, error) {
	pong, err := call[*protocol.Pong](ctx, c, &protocol.Ping{Timestamp: time.Now().UnixMilli()}, protocol.S2CPong)
	if err != nil {
		return 0, err
	}
	return pong.Timestamp, nil
}

// call sends req and expects exactly one reply of type T next on the wire.
func call[T protocol.Reply](ctx context.Context, c *Client, req protocol.Request, want protocol.MessageID) (T, error) {
	var zero T
	if err := c.Send(ctx, req); err != nil {
		return zero, err
	}
	id, msg, err := c.Receive(ctx, c.cfg.ReplyTimeout)
	if err != nil {
		return zero, err
	}
	reply, ok := msg.(T)
	if !ok {
		return zero, &UnexpectedReplyError{Want: want, Got: id}
	}
	return reply, nil
}

func (c *Client) current() *link {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link
}

// readPump delivers binary frames until the connection fails or Close is called.
func (l *link) readPump() {
	defer close(l.done)
	defer close(l.frames)

	for {
		msgType, data, err := l.conn.ReadMessage()
		if err != nil {
			l.err = err
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		select {
		case l.frames <- data:
		case <-l.quit:
			return
		}
	}
}
