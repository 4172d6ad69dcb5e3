package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/protocol"
	"github.com/luciancaetano/gateprobe/internal/websocket"
)

// KickPolicy decides which evidence of eviction the kick scenario accepts.
type KickPolicy string

const (
	// KickEither accepts an S2C_Kick notice or a peer close.
	KickEither KickPolicy = "either"
	// KickNotice requires an S2C_Kick notice.
	KickNotice KickPolicy = "notice"
	// KickClose requires the gate to close the evicted connection.
	KickClose KickPolicy = "close"
)

// ParseKickPolicy maps a config value to a policy. Empty means KickEither.
func ParseKickPolicy(s string) (KickPolicy, error) {
	switch p := KickPolicy(s); p {
	case "":
		return KickEither, nil
	case KickEither, KickNotice, KickClose:
		return p, nil
	}
	return "", fmt.Errorf("unknown kick policy %q", s)
}

// eviction is what the old session observed.
type eviction struct {
	notice bool
	closed bool
}

func (e eviction) satisfies(p KickPolicy) bool {
	switch p {
	case KickNotice:
		return e.notice
	case KickClose:
		return e.closed
	}
	return e.notice || e.closed
}

// Kick asserts that logging an account in on a second session evicts the
// first one while the second stays responsive.
func Kick(ctx context.Context, env *Env) error {
	account := env.Account("kickuser")

	first, uid, err := env.SignUp(ctx, "kick_first", account, password)
	if err != nil {
		return err
	}
	defer first.Close()

	if err := Pause(ctx, env.Timing.Reconnect); err != nil {
		return err
	}

	second, err := env.Open(ctx, "kick_second")
	if err != nil {
		return err
	}
	defer second.Close()

	res, err := second.Login(ctx, account, password)
	if err != nil {
		return fmt.Errorf("second login: %w", err)
	}
	if err := expectCode("second login", res.Code, gateprobe.CodeSuccess); err != nil {
		return err
	}
	if res.Uid != uid {
		return violation("second login returned uid %d, want %d", res.Uid, uid)
	}

	if err := Pause(ctx, env.Timing.KickGrace); err != nil {
		return err
	}

	seen, err := watchEviction(ctx, env, first)
	if err != nil {
		return err
	}
	env.Log.Info().Bool("notice", seen.notice).Bool("closed", seen.closed).Str("policy", string(env.Kick)).Msg("eviction observed")
	if !seen.satisfies(env.Kick) {
		return violation("first session saw notice=%v closed=%v within %v, policy %q", seen.notice, seen.closed, env.Timing.KickWindow, env.Kick)
	}

	ts, err := second.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping after kick: %w", err)
	}
	if ts <= 0 {
		return violation("pong after kick carried timestamp %d", ts)
	}
	return nil
}

// watchEviction reads the evicted session until the policy is met, the peer
// closes or the kick window runs out. Unrelated messages are skipped.
func watchEviction(ctx context.Context, env *Env, s Session) (eviction, error) {
	var seen eviction
	deadline := time.Now().Add(env.Timing.KickWindow)

	for !seen.closed {
		if seen.satisfies(env.Kick) {
			return seen, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return seen, nil
		}

		id, msg, err := s.Receive(ctx, remaining)
		switch {
		case errors.Is(err, websocket.ErrConnectionClosed):
			seen.closed = true
		case errors.Is(err, websocket.ErrTimeout):
			return seen, nil
		case err != nil:
			return seen, err
		case id == protocol.S2CKick:
			seen.notice = true
			if kick, ok := msg.(*protocol.Kick); ok {
				env.Log.Info().Str("reason", kick.Reason).Msg("kick notice")
			}
		default:
			env.Log.Debug().Stringer("msg", id).Msg("skipping message on evicted session")
		}
	}
	return seen, nil
}
