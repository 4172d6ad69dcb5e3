package websocket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/protocol"
)

// CheckOriginFn is a function that validates the origin of a WebSocket connection request.
// It receives the HTTP request and returns true if the origin is allowed, false otherwise.
type CheckOriginFn = func(r *http.Request) bool

// KickMode selects what the gate does to a session evicted by a newer login
// of the same account.
type KickMode int

const (
	// KickNoticeAndClose sends S2C_Kick and then closes the old connection.
	KickNoticeAndClose KickMode = iota
	// KickCloseOnly closes the old connection without a notice.
	KickCloseOnly
	// KickNoticeOnly sends S2C_Kick and leaves the old connection open but unbound.
	KickNoticeOnly
)

// ServerConfig configures the reference gate.
type ServerConfig struct {
	Addr            string
	Path            string
	RateLimitConfig *RateLimitConfig
	CheckOrigin     CheckOriginFn
	KickMode        KickMode
	// PongBeforeAuth answers pings from sessions that have not logged in.
	PongBeforeAuth bool
	// RoomsEnabled registers the join-room and room-action routes.
	RoomsEnabled bool
	// FirstUID is the uid handed to the first registered account.
	FirstUID int64
	// CloseAfterRegister closes the connection once the register result is
	// sent, so clients must log in on a new connection.
	CloseAfterRegister bool
}

// RateLimitConfig defines rate limiting configuration for clients
type RateLimitConfig struct {
	// MessagesPerSecond defines how many messages a client can send per second
	MessagesPerSecond rate.Limit
	// Burst defines the maximum burst size (token bucket capacity)
	Burst int
	// Enabled determines if rate limiting is active
	Enabled bool
}

// DefaultRateLimitConfig returns the default rate limit configuration
// Allows 100 messages per second with burst of 200
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		MessagesPerSecond: 100,
		Burst:             200,
		Enabled:           true,
	}
}

// NoRateLimit returns a configuration with rate limiting disabled
func NoRateLimit() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled: false,
	}
}

// Server is the reference gate. It implements gateprobe.Gate.
type Server struct {
	addr   string
	path   string
	cfg    ServerConfig
	server *http.Server
	peers  sync.Map // map[string]*peer

	// Rate limiting configuration
	rateLimitConfig *RateLimitConfig

	mu       sync.RWMutex
	running  bool
	upgrader websocket.Upgrader
	stopped  chan struct{}

	accounts *accountStore

	stateMu sync.Mutex
	online  map[int64]*peer
	rooms   map[string]map[*peer]struct{}

	log zerolog.Logger
}

// New creates a new gate instance with the specified configuration.
//
// The gate uses the Gorilla WebSocket library with read/write buffer sizes of 1024 bytes.
// Rate limiting is applied per-connection using a token bucket algorithm.
func New(cfg *ServerConfig) *Server {
	if cfg.RateLimitConfig == nil {
		cfg.RateLimitConfig = DefaultRateLimitConfig()
	}
	path := cfg.Path
	if path == "" {
		path = gateprobe.DefaultPath
	}
	return &Server{
		addr:            cfg.Addr,
		path:            path,
		cfg:             *cfg,
		rateLimitConfig: cfg.RateLimitConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		accounts: newAccountStore(cfg.FirstUID),
		online:   make(map[int64]*peer),
		rooms:    make(map[string]map[*peer]struct{}),
		log:      logger.WithComponent("gate"),
	}
}

// Start binds the listen address and serves in the background. Cancelling
// ctx stops the gate.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New(gateprobe.ErrServerRunning)
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.path, s.handleWebSocket)

	s.addr = ln.Addr().String()
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.stopped = make(chan struct{})
	s.running = true

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("serve failed")
		}
	}()

	if ctx.Done() != nil {
		stopped := s.stopped
		go func() {
			select {
			case <-ctx.Done():
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				s.Stop(stopCtx)
			case <-stopped:
			}
		}()
	}

	s.log.Info().Str("addr", s.addr).Str("path", s.path).Msg("gate listening")
	return nil
}

// Stop stops the gate and closes all client connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopped)
	s.mu.Unlock()

	s.peers.Range(func(key, value interface{}) bool {
		if p, ok := value.(*peer); ok {
			p.CloseWithCode(websocket.CloseGoingAway, "gate shutting down")
		}
		return true
	})

	return s.server.Shutdown(ctx)
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Online returns the number of sessions bound to an account.
func (s *Server) Online() int {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return len(s.online)
}

// Accounts returns the number of registered accounts.
func (s *Server) Accounts() int {
	return s.accounts.len()
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Str("remote_addr", r.RemoteAddr).Msg("upgrade failed")
		return
	}
	conn.SetReadLimit(maxMessageSize)

	p := newPeer(conn, r.RemoteAddr, s.rateLimitConfig)
	s.peers.Store(p.id, p)

	go s.handlePeer(p)
}

// handlePeer reads frames from one connection and dispatches them in arrival order.
func (s *Server) handlePeer(p *peer) {
	l := s.log.With().Str("peer", p.id).Str("remote_addr", p.remoteAddr).Logger()
	l.Debug().Msg("peer connected")

	defer func() {
		s.unbind(p)
		s.peers.Delete(p.id)
		p.Close()
		l.Debug().Msg("peer disconnected")
	}()

	// Set read deadline to prevent indefinite blocking
	p.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	// Set pong handler to reset read deadline on pong
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				l.Warn().Err(err).Msg("unexpected close")
			}
			return
		}

		// Reset read deadline after successful read
		p.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		if !p.CheckRateLimit() {
			l.Warn().Msg(gateprobe.ErrRateLimitExceeded)
			p.CloseWithCode(websocket.ClosePolicyViolation, gateprobe.ErrRateLimitExceeded)
			return
		}

		id, msg, err := protocol.DecodeRequest(data)
		if err != nil {
			l.Warn().Err(err).Msg("invalid frame")
			p.CloseWithCode(websocket.CloseProtocolError, gateprobe.ErrInvalidFrame)
			return
		}
		if msg == nil {
			// Unknown ids are ignored.
			l.Debug().Stringer("msg", id).Msg("no route")
			continue
		}

		if err := s.dispatch(p, msg); err != nil {
			l.Warn().Err(err).Stringer("msg", id).Msg("handler failed")
		}
	}
}

func (s *Server) dispatch(p *peer, msg protocol.Request) error {
	ctx := p.ctx
	switch m := msg.(type) {
	case *protocol.Register:
		uid, code, err := s.accounts.register(m.Account, m.Password)
		if err != nil {
			// Still answered, the caller logs err.
			err = fmt.Errorf("register %q: %w", m.Account, err)
			code = gateprobe.CodeRejected
		}
		if sendErr := p.Send(ctx, &protocol.RegisterResult{Code: code, Uid: uid}); sendErr != nil {
			return sendErr
		}
		if s.cfg.CloseAfterRegister {
			p.CloseWithCode(websocket.CloseNormalClosure, "registered")
		}
		return err

	case *protocol.Login:
		uid, code := s.accounts.authenticate(m.Account, m.Password)
		if code != gateprobe.CodeSuccess {
			return p.Send(ctx, &protocol.LoginResult{Code: code})
		}
		evicted := s.bind(p, uid)
		if err := p.Send(ctx, &protocol.LoginResult{Code: code, Uid: uid}); err != nil {
			return err
		}
		if evicted != nil {
			s.kick(evicted)
		}
		return nil

	case *protocol.Logout:
		s.unbind(p)
		return p.CloseWithCode(websocket.CloseNormalClosure, "logout")

	case *protocol.Ping:
		if s.uidOf(p) == 0 && !s.cfg.PongBeforeAuth {
			return nil
		}
		ts := m.Timestamp
		if ts <= 0 {
			ts = time.Now().UnixMilli()
		}
		return p.Send(ctx, &protocol.Pong{Timestamp: ts})

	case *protocol.JoinRoom:
		if !s.cfg.RoomsEnabled || s.uidOf(p) == 0 {
			return nil
		}
		s.join(p, m.RoomId)
		return p.Send(ctx, &protocol.JoinResult{Code: gateprobe.CodeSuccess, RoomId: m.RoomId})

	case *protocol.RoomAction:
		if !s.cfg.RoomsEnabled {
			return nil
		}
		room, members := s.members(p)
		update := &protocol.RoomSync{RoomId: room, Data: m.Data}
		for _, member := range members {
			if member.IsAlive() {
				member.Send(ctx, update)
			}
		}
		return nil
	}
	return nil
}

// kick evicts a session whose account logged in on another connection.
func (s *Server) kick(p *peer) {
	s.log.Info().Str("peer", p.id).Int("mode", int(s.cfg.KickMode)).Msg("kicking duplicate login")
	switch s.cfg.KickMode {
	case KickNoticeAndClose:
		p.Send(p.ctx, &protocol.Kick{Reason: gateprobe.KickReasonDuplicateLogin})
		p.CloseWithCode(websocket.CloseNormalClosure, gateprobe.KickReasonDuplicateLogin)
	case KickCloseOnly:
		p.CloseWithCode(websocket.CloseNormalClosure, gateprobe.KickReasonDuplicateLogin)
	case KickNoticeOnly:
		p.Send(p.ctx, &protocol.Kick{Reason: gateprobe.KickReasonDuplicateLogin})
	}
}

// bind makes p the session of uid and returns the session it replaced.
func (s *Server) bind(p *peer, uid int64) *peer {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if p.uid != 0 && p.uid != uid && s.online[p.uid] == p {
		delete(s.online, p.uid)
	}

	var evicted *peer
	if prev, ok := s.online[uid]; ok && prev != p {
		s.leaveLocked(prev)
		prev.uid = 0
		evicted = prev
	}
	s.online[uid] = p
	p.uid = uid
	return evicted
}

func (s *Server) unbind(p *peer) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if p.uid != 0 && s.online[p.uid] == p {
		delete(s.online, p.uid)
	}
	p.uid = 0
	s.leaveLocked(p)
}

func (s *Server) uidOf(p *peer) int64 {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return p.uid
}

func (s *Server) join(p *peer, room string) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	s.leaveLocked(p)
	members, ok := s.rooms[room]
	if !ok {
		members = make(map[*peer]struct{})
		s.rooms[room] = members
	}
	members[p] = struct{}{}
	p.room = room
}

func (s *Server) leaveLocked(p *peer) {
	if p.room == "" {
		return
	}
	if members, ok := s.rooms[p.room]; ok {
		delete(members, p)
		if len(members) == 0 {
			delete(s.rooms, p.room)
		}
	}
	p.room = ""
}

// members returns the room of p and a snapshot of its members.
func (s *Server) members(p *peer) (string, []*peer) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if p.room == "" {
		return "", nil
	}
	out := make([]*peer, 0, len(s.rooms[p.room]))
	for member := range s.rooms[p.room] {
		out = append(out, member)
	}
	return p.room, out
}
