// Package main runs the reference gate locally so gateprobe can be pointed
// at something without a game server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/ws"
)

func main() {
	addr := flag.String("addr", fmt.Sprintf("%s:%d", gateprobe.DefaultHost, gateprobe.DefaultPort), "Listen address")
	path := flag.String("path", gateprobe.DefaultPath, "WebSocket path")
	kick := flag.String("kick", "notice-close", "Duplicate login handling: notice-close, close or notice")
	pongBeforeAuth := flag.Bool("pong-before-auth", false, "Answer pings from sessions that have not logged in")
	rooms := flag.Bool("rooms", true, "Register the join-room and room-action routes")
	closeAfterRegister := flag.Bool("close-after-register", true, "Close the connection after answering a register")
	mps := flag.Float64("rate", 100, "Messages per second per connection, 0 disables the limit")
	burst := flag.Int("burst", 200, "Rate limiter burst")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if err := logger.Init(*level); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	mode, err := parseKickMode(*kick)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}

	limit := ws.NoRateLimit()
	if *mps > 0 {
		limit = &ws.RateLimitConfig{MessagesPerSecond: rate.Limit(*mps), Burst: *burst, Enabled: true}
	}

	cfg := ws.NewGateConfig(*addr, limit, ws.AllOrigins())
	cfg.Path = *path
	cfg.KickMode = mode
	cfg.PongBeforeAuth = *pongBeforeAuth
	cfg.RoomsEnabled = *rooms
	cfg.CloseAfterRegister = *closeAfterRegister

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gate := ws.NewGate(cfg)
	if err := gate.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start gate")
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := gate.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func parseKickMode(s string) (ws.KickMode, error) {
	switch s {
	case "notice-close":
		return ws.KickNoticeAndClose, nil
	case "close":
		return ws.KickCloseOnly, nil
	case "notice":
		return ws.KickNoticeOnly, nil
	}
	return 0, fmt.Errorf("unknown kick mode %q", s)
}
