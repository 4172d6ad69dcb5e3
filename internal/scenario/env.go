package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/config"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/protocol"
	"github.com/luciancaetano/gateprobe/internal/websocket"
)

// Session is the client surface scenarios drive. *websocket.Client implements it.
type Session interface {
	Label() string
	Connect(ctx context.Context) error
	Close() error
	Send(ctx context.Context, req protocol.Request) error
	Receive(ctx context.Context, timeout time.Duration) (protocol.MessageID, protocol.Reply, error)
	ReceiveOptional(ctx context.Context, timeout time.Duration) (protocol.MessageID, protocol.Reply, error)
	Register(ctx context.Context, account, password string) (*protocol.RegisterResult, error)
	Login(ctx context.Context, account, password string) (*protocol.LoginResult, error)
	Ping(ctx context.Context) (int64, error)
	AuthenticatedID() int64
}

// Timing holds every bounded wait a scenario uses.
type Timing struct {
	JoinRoom          time.Duration
	KickGrace         time.Duration
	KickWindow        time.Duration
	UnauthPingWindow  time.Duration
	Reconnect         time.Duration
	HeartbeatInterval time.Duration
	Heartbeats        int
}

// Env is what every scenario runs against.
type Env struct {
	Timing Timing
	Kick   KickPolicy
	Log    zerolog.Logger

	// NewSession returns a disconnected session tagged with label.
	NewSession func(label string) Session
}

// NewEnv builds an Env whose sessions dial the configured gate.
func NewEnv(cfg *config.Config) (*Env, error) {
	policy, err := ParseKickPolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint()
	return &Env{
		Timing: Timing{
			JoinRoom:          cfg.JoinRoom,
			KickGrace:         cfg.KickGrace,
			KickWindow:        cfg.KickWindow,
			UnauthPingWindow:  cfg.UnauthPingWindow,
			Reconnect:         cfg.PacingConf.Reconnect,
			HeartbeatInterval: cfg.HeartbeatInterval,
			Heartbeats:        3,
		},
		Kick: policy,
		Log:  logger.WithComponent("scenario"),
		NewSession: func(label string) Session {
			return websocket.NewClient(&websocket.ClientConfig{
				Endpoint:         endpoint,
				Label:            label,
				HandshakeTimeout: cfg.HandshakeTimeout,
				ReplyTimeout:     cfg.Reply,
			})
		},
	}, nil
}

// Account returns an account name no earlier run has used.
func (e *Env) Account(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().Unix(), uuid.NewString()[:8])
}

// Open creates and connects a session. The caller owns the Close.
func (e *Env) Open(ctx context.Context, label string) (Session, error) {
	s := e.NewSession(label)
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterAccount registers account on a session of its own and closes it.
// Gates may drop the connection once the result is sent, so nothing else
// runs on it.
func (e *Env) RegisterAccount(ctx context.Context, label, account, password string) (*protocol.RegisterResult, error) {
	s, err := e.Open(ctx, label)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	res, err := s.Register(ctx, account, password)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", account, err)
	}
	return res, nil
}

// SignUp registers account, waits out the reconnect pacing and logs in on a
// fresh session. It returns the logged in session, which the caller closes,
// and the uid.
func (e *Env) SignUp(ctx context.Context, label, account, password string) (Session, int64, error) {
	reg, err := e.RegisterAccount(ctx, label+"_register", account, password)
	if err != nil {
		return nil, 0, err
	}
	if err := expectCode("register", reg.Code, gateprobe.CodeSuccess); err != nil {
		return nil, 0, err
	}

	if err := Pause(ctx, e.Timing.Reconnect); err != nil {
		return nil, 0, err
	}

	s, err := e.Open(ctx, label)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.Login(ctx, account, password)
	if err == nil {
		err = expectCode("login", res.Code, gateprobe.CodeSuccess)
	} else {
		err = fmt.Errorf("login %s: %w", account, err)
	}
	if err == nil && res.Uid != reg.Uid {
		err = violation("login uid %d differs from registered uid %d", res.Uid, reg.Uid)
	}
	if err != nil {
		s.Close()
		return nil, 0, err
	}
	return s, res.Uid, nil
}

// Pause waits for d or until ctx is done.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
