// Package gateprobe is a conformance harness for the authentication front door
// ("gate") of a game server.
//
// The gate speaks a binary message-id addressed protocol over a persistent
// WebSocket. gateprobe drives it with synthetic clients and asserts a fixed set
// of behavioral contracts: registration, login, credential failures, duplicate
// login eviction ("kick"), heartbeat liveness and many concurrent client
// lifecycles.
//
// # Protocol Format
//
//	[2 bytes: MessageID (uint16, big-endian)][N bytes: protobuf payload]
//
// Message ids:
//
//	1001/1002  login request / result
//	1003/1004  register request / result
//	1101/1102  logout request / forced-kick notice
//	2001/2002  join-room request / result
//	2003/2004  room-action request / room-state sync
//	9001/9002  ping / pong
//
// Result codes: 0 success, 1 account not found, 2 wrong password,
// 3 duplicate account. The reference gate also answers 4 to a register it
// cannot complete.
//
// # Running
//
//	gateprobe -host 127.0.0.1 -port 9948 -test all
//	gateprobe -test stress -total 200 -batch 10
//
// Scenario groups: register, login, heartbeat, reconnect, room, stress, all.
// Failures are reported through the log. Pass -strict to turn them into a
// non-zero exit status.
//
// # Reference Gate
//
// The ws package also exposes a reference gate implementing the server side of
// the protocol:
//
//	gate := ws.NewGate(ws.NewGateConfig("127.0.0.1:9948", ws.DefaultRateLimitConfig(), nil))
//	gate.Start(ctx)
//
// cmd/gatesim runs it as a standalone process.
//
// # Important
//
//   - Composite client operations (Register, Login, Ping) assume strict
//     one-request-one-reply ordering. Server pushes such as S2C_Kick must be
//     read with ReceiveOptional outside a composite call.
//   - The gate drops the connection after a register result. Log in on a new
//     connection.
//   - A session is owned by a single goroutine. Do not share a client across
//     goroutines.
package gateprobe
