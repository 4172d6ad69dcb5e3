package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/protocol"
)

// peer is the gate side of one client connection.
type peer struct {
	id          string
	conn        *websocket.Conn
	remoteAddr  string
	ctx         context.Context
	cancel      context.CancelFunc
	sendCh      chan []byte
	mu          sync.RWMutex
	closed      bool
	closeCode   int
	closeReason string
	rateLimiter *rate.Limiter // Rate limiter for incoming messages

	// Gate state, guarded by Server.stateMu.
	uid  int64
	room string
}

// newPeer creates a peer with rate limiting and starts its write pump.
func newPeer(conn *websocket.Conn, remoteAddr string, rateLimitConfig *RateLimitConfig) *peer {
	ctx, cancel := context.WithCancel(context.Background())

	var limiter *rate.Limiter
	if rateLimitConfig != nil && rateLimitConfig.Enabled {
		limiter = rate.NewLimiter(rateLimitConfig.MessagesPerSecond, rateLimitConfig.Burst)
	}

	p := &peer{
		id:          uuid.New().String(),
		conn:        conn,
		remoteAddr:  remoteAddr,
		ctx:         ctx,
		cancel:      cancel,
		sendCh:      make(chan []byte, 256),
		rateLimiter: limiter,
	}

	go p.writePump()

	return p
}

// Send encodes a reply and queues it for delivery.
func (p *peer) Send(ctx context.Context, msg protocol.Reply) error {
	data, err := protocol.EncodeReply(msg)
	if err != nil {
		return fmt.Errorf("%s: %w", gateprobe.ErrFailedToEncode, err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrConnectionClosed
	}

	select {
	case p.sendCh <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrConnectionClosed
	}
}

// Close closes the connection normally.
func (p *peer) Close() error {
	return p.CloseWithCode(websocket.CloseNormalClosure, "")
}

// CloseWithCode stops accepting messages. The write pump flushes what is
// already queued, sends the close frame and closes the socket.
func (p *peer) CloseWithCode(code int, reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	p.closeCode = code
	p.closeReason = reason
	close(p.sendCh)
	return nil
}

// IsAlive returns true if the connection is still active
func (p *peer) IsAlive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}

// CheckRateLimit returns true if the message is allowed, false if rate limited
func (p *peer) CheckRateLimit() bool {
	if p.rateLimiter == nil {
		return true
	}
	return p.rateLimiter.Allow()
}

// writePump pumps messages from the send channel to the websocket connection
func (p *peer) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		p.cancel()
		p.conn.Close()
	}()

	for {
		select {
		case message, ok := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// closeCode and closeReason are written before sendCh is closed.
				p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(p.closeCode, p.closeReason))
				return
			}

			if err := p.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			// Send ping to keep connection alive
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
