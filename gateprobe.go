package gateprobe

import "context"

// Gate defines the reference gate that speaks the same binary protocol as the
// game server front door.
//
// Every frame exchanged with a gate is a 2-byte big-endian message id followed
// by a protobuf encoded payload. The reference gate exists so the scenario
// set can be exercised without a real game server.
//
// Example usage:
//
//	import "github.com/luciancaetano/gateprobe/ws"
//
//	gate := ws.NewGate(ws.NewGateConfig("127.0.0.1:9948", ws.DefaultRateLimitConfig(), nil))
//	if err := gate.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer gate.Stop(ctx)
type Gate interface {
	// Start binds the listen address and begins accepting WebSocket
	// connections. It returns once the listener is bound.
	//
	// Returns an error if the gate is already running or the address
	// cannot be bound.
	Start(ctx context.Context) error

	// Stop closes every open session and shuts the HTTP server down.
	// Calling Stop on a stopped gate is a no-op.
	Stop(ctx context.Context) error

	// Addr returns the bound listen address, e.g. "127.0.0.1:9948".
	// Before Start it returns the configured address.
	Addr() string

	// Online reports how many sessions are currently bound to an account.
	Online() int
}
