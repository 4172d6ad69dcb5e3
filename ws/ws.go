package ws

import (
	"net/http"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/websocket"
)

type RateLimitConfig = websocket.RateLimitConfig
type CheckOriginFn = websocket.CheckOriginFn
type KickMode = websocket.KickMode
type GateConfig = *websocket.ServerConfig
type Client = websocket.Client
type ClientConfig = websocket.ClientConfig

const (
	KickNoticeAndClose = websocket.KickNoticeAndClose
	KickCloseOnly      = websocket.KickCloseOnly
	KickNoticeOnly     = websocket.KickNoticeOnly
)

var _ gateprobe.Gate = (*websocket.Server)(nil)

// NewGate creates a reference gate speaking the game protocol.
//
// Parameters:
//   - cfg: Gate configuration built with NewGateConfig or by hand.
//     KickMode, PongBeforeAuth and RoomsEnabled select which variant of
//     gate behaviour is simulated.
//
// Example:
//
//	gate := ws.NewGate(ws.NewGateConfig("127.0.0.1:9948", ws.DefaultRateLimitConfig(), ws.AllOrigins()))
//	if err := gate.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
func NewGate(cfg GateConfig) gateprobe.Gate {
	return websocket.New(cfg)
}

// NewGateConfig returns a gate configuration for addr with kick notice and
// close, no pong before login and no room routes.
func NewGateConfig(addr string, rateLimitConfig *RateLimitConfig, checkOrigin CheckOriginFn) GateConfig {
	return &websocket.ServerConfig{
		Addr:            addr,
		RateLimitConfig: rateLimitConfig,
		CheckOrigin:     checkOrigin,
	}
}

// NewClient creates a disconnected game session for endpoint with default timeouts.
func NewClient(endpoint, label string) *Client {
	return websocket.NewClient(websocket.DefaultClientConfig(endpoint, label))
}

// AllOrigins returns the default checkOrigin function that allows all origins
func AllOrigins() CheckOriginFn {
	return func(r *http.Request) bool {
		return true
	}
}

// DefaultRateLimitConfig returns the default rate limit configuration
func DefaultRateLimitConfig() *RateLimitConfig {
	return websocket.DefaultRateLimitConfig()
}

// NoRateLimit returns a configuration with rate limiting disabled
func NoRateLimit() *RateLimitConfig {
	return websocket.NoRateLimit()
}
