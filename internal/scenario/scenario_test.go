package scenario

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciancaetano/gateprobe/internal/protocol"
	"github.com/luciancaetano/gateprobe/internal/websocket"
)

func fastTiming() Timing {
	return Timing{
		JoinRoom:          300 * time.Millisecond,
		KickGrace:         50 * time.Millisecond,
		KickWindow:        500 * time.Millisecond,
		UnauthPingWindow:  200 * time.Millisecond,
		Reconnect:         10 * time.Millisecond,
		HeartbeatInterval: 10 * time.Millisecond,
		Heartbeats:        3,
	}
}

// gateEnv starts a reference gate and returns an Env dialing it.
func gateEnv(t *testing.T, cfg *websocket.ServerConfig, policy KickPolicy) *Env {
	t.Helper()

	cfg.Addr = "127.0.0.1:0"
	if cfg.RateLimitConfig == nil {
		cfg.RateLimitConfig = websocket.NoRateLimit()
	}
	gate := websocket.New(cfg)
	require.NoError(t, gate.Start(context.Background()))
	t.Cleanup(func() { gate.Stop(context.Background()) })

	endpoint := "ws://" + gate.Addr() + "/"
	return &Env{
		Timing: fastTiming(),
		Kick:   policy,
		Log:    zerolog.Nop(),
		NewSession: func(label string) Session {
			return websocket.NewClient(websocket.DefaultClientConfig(endpoint, label))
		},
	}
}

func TestScenariosAgainstReferenceGate(t *testing.T) {
	t.Parallel()
	env := gateEnv(t, &websocket.ServerConfig{RoomsEnabled: true, CloseAfterRegister: true}, KickEither)

	scenarios := []Scenario{
		{"register", Register},
		{"register_duplicate", RegisterDuplicate},
		{"login", Login},
		{"login_wrong_password", LoginWrongPassword},
		{"login_nonexistent", LoginNonexistent},
		{"heartbeat", Heartbeat},
		{"heartbeat_before_login", HeartbeatBeforeLogin},
		{"kick", Kick},
		{"join_room", JoinRoom},
	}

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			out := Execute(context.Background(), env, s)
			assert.NoError(t, out.Err)
			assert.True(t, out.Passed())
			assert.Equal(t, s.Name, out.Name)
			assert.True(t, out.Duration > 0)
		})
	}
}

func TestHeartbeatBeforeLoginToleratesPong(t *testing.T) {
	t.Parallel()
	env := gateEnv(t, &websocket.ServerConfig{PongBeforeAuth: true}, KickEither)

	assert.NoError(t, HeartbeatBeforeLogin(context.Background(), env))
}

func TestJoinRoomToleratesMissingRoute(t *testing.T) {
	t.Parallel()
	env := gateEnv(t, &websocket.ServerConfig{}, KickEither)

	assert.NoError(t, JoinRoom(context.Background(), env))
}

func TestKickPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     websocket.KickMode
		policy   KickPolicy
		wantPass bool
	}{
		{"notice and close under either", websocket.KickNoticeAndClose, KickEither, true},
		{"notice and close under notice", websocket.KickNoticeAndClose, KickNotice, true},
		{"notice and close under close", websocket.KickNoticeAndClose, KickClose, true},
		{"close only under either", websocket.KickCloseOnly, KickEither, true},
		{"close only under notice", websocket.KickCloseOnly, KickNotice, false},
		{"close only under close", websocket.KickCloseOnly, KickClose, true},
		{"notice only under either", websocket.KickNoticeOnly, KickEither, true},
		{"notice only under notice", websocket.KickNoticeOnly, KickNotice, true},
		{"notice only under close", websocket.KickNoticeOnly, KickClose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := gateEnv(t, &websocket.ServerConfig{KickMode: tt.mode, CloseAfterRegister: true}, tt.policy)

			err := Kick(context.Background(), env)
			if tt.wantPass {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrContract)
		})
	}
}

func TestParseKickPolicy(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]KickPolicy{"": KickEither, "either": KickEither, "notice": KickNotice, "close": KickClose} {
		got, err := ParseKickPolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseKickPolicy("sometimes")
	assert.Error(t, err)
}

func TestEvictionSatisfies(t *testing.T) {
	t.Parallel()

	none := eviction{}
	notice := eviction{notice: true}
	closed := eviction{closed: true}

	assert.False(t, none.satisfies(KickEither))
	assert.True(t, notice.satisfies(KickEither))
	assert.True(t, closed.satisfies(KickEither))
	assert.False(t, closed.satisfies(KickNotice))
	assert.False(t, notice.satisfies(KickClose))
}

func TestExecuteRecoversPanic(t *testing.T) {
	t.Parallel()
	env := &Env{Log: zerolog.Nop()}

	out := Execute(context.Background(), env, Scenario{
		Name: "boom",
		Run: func(context.Context, *Env) error {
			var m map[string]int
			m["x"]++
			return nil
		},
	})

	require.Error(t, out.Err)
	assert.ErrorIs(t, out.Err, ErrPanic)
	assert.Contains(t, out.Err.Error(), "goroutine")
	assert.False(t, out.Passed())
}

func TestAccountNamesAreUnique(t *testing.T) {
	t.Parallel()
	env := &Env{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := env.Account("testuser")
		assert.False(t, seen[name], "duplicate account %s", name)
		assert.Regexp(t, `^testuser_\d+_[0-9a-f]{8}$`, name)
		seen[name] = true
	}
}

// stubSession answers every composite call with canned results and records
// the calls it saw. Every session an Env opens shares the same stub.
type stubSession struct {
	register *protocol.RegisterResult
	login    *protocol.LoginResult
	calls    []string
}

func (s *stubSession) Label() string                       { return "stub" }
func (s *stubSession) Connect(context.Context) error       { s.calls = append(s.calls, "connect"); return nil }
func (s *stubSession) Close() error                        { s.calls = append(s.calls, "close"); return nil }
func (s *stubSession) AuthenticatedID() int64              { return 0 }
func (s *stubSession) Ping(context.Context) (int64, error) { return 1, nil }

func (s *stubSession) count(call string) int {
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

// assertRegisterCloses checks that nothing follows a register on the same
// connection and that every connection was released.
func assertRegisterCloses(t *testing.T, s *stubSession) {
	t.Helper()

	for i, c := range s.calls {
		if c != "register" {
			continue
		}
		if i+1 >= len(s.calls) || s.calls[i+1] != "close" {
			t.Errorf("calls %v: register at %d is not followed by close", s.calls, i)
		}
	}
	assert.Equal(t, s.count("connect"), s.count("close"), "calls %v: every connection must be released", s.calls)
}

func (s *stubSession) Send(context.Context, protocol.Request) error {
	return nil
}

func (s *stubSession) Receive(context.Context, time.Duration) (protocol.MessageID, protocol.Reply, error) {
	return protocol.None, nil, websocket.ErrTimeout
}

func (s *stubSession) ReceiveOptional(context.Context, time.Duration) (protocol.MessageID, protocol.Reply, error) {
	return protocol.None, nil, nil
}

func (s *stubSession) Register(context.Context, string, string) (*protocol.RegisterResult, error) {
	s.calls = append(s.calls, "register")
	return s.register, nil
}

func (s *stubSession) Login(context.Context, string, string) (*protocol.LoginResult, error) {
	s.calls = append(s.calls, "login")
	return s.login, nil
}

func TestContractViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(context.Context, *Env) error
		stub *stubSession
	}{
		{
			name: "register without uid",
			run:  Register,
			stub: &stubSession{register: &protocol.RegisterResult{Code: 0, Uid: 0}},
		},
		{
			name: "duplicate accepted",
			run:  RegisterDuplicate,
			stub: &stubSession{register: &protocol.RegisterResult{Code: 0, Uid: 5}},
		},
		{
			name: "login uid mismatch",
			run:  Login,
			stub: &stubSession{
				register: &protocol.RegisterResult{Code: 0, Uid: 5},
				login:    &protocol.LoginResult{Code: 0, Uid: 6},
			},
		},
		{
			name: "wrong password reported as not found",
			run:  LoginWrongPassword,
			stub: &stubSession{
				register: &protocol.RegisterResult{Code: 0, Uid: 5},
				login:    &protocol.LoginResult{Code: 1},
			},
		},
		{
			name: "ghost login succeeds",
			run:  LoginNonexistent,
			stub: &stubSession{login: &protocol.LoginResult{Code: 0, Uid: 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := &Env{
				Timing:     fastTiming(),
				Log:        zerolog.Nop(),
				NewSession: func(string) Session { return tt.stub },
			}

			err := tt.run(context.Background(), env)
			assert.ErrorIs(t, err, ErrContract)
			assertRegisterCloses(t, tt.stub)
		})
	}
}

// TestRegistrationGetsItsOwnConnection covers gates that drop the connection
// once the register result is out.
func TestRegistrationGetsItsOwnConnection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		run       func(context.Context, *Env) error
		registers int
		logins    int
	}{
		{"register_duplicate", RegisterDuplicate, 2, 0},
		{"login", Login, 1, 1},
		{"login_wrong_password", LoginWrongPassword, 1, 1},
		{"heartbeat", Heartbeat, 1, 1},
		{"kick", Kick, 1, 2},
		{"join_room", JoinRoom, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stub := &stubSession{
				register: &protocol.RegisterResult{Code: 0, Uid: 5},
				login:    &protocol.LoginResult{Code: 0, Uid: 5},
			}
			env := &Env{
				Timing:     fastTiming(),
				Kick:       KickEither,
				Log:        zerolog.Nop(),
				NewSession: func(string) Session { return stub },
			}

			// The stub never reports an eviction or an authenticated id, so
			// some of these fail. Only the connection pattern matters here.
			_ = tt.run(context.Background(), env)

			assert.Equal(t, tt.registers, stub.count("register"), "calls %v", stub.calls)
			assert.Equal(t, tt.logins, stub.count("login"), "calls %v", stub.calls)
			assertRegisterCloses(t, stub)
		})
	}
}

func TestPauseHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.ErrorIs(t, Pause(ctx, time.Minute), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.NoError(t, Pause(context.Background(), 0))
}
