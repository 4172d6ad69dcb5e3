package scenario

import (
	"context"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/protocol"
)

// Heartbeat asserts repeated ping round trips on an authenticated session.
func Heartbeat(ctx context.Context, env *Env) error {
	s, _, err := env.SignUp(ctx, "heartbeat", env.Account("hbuser"), password)
	if err != nil {
		return err
	}
	defer s.Close()

	for i := 0; i < env.Timing.Heartbeats; i++ {
		if i > 0 {
			if err := Pause(ctx, env.Timing.HeartbeatInterval); err != nil {
				return err
			}
		}
		ts, err := s.Ping(ctx)
		if err != nil {
			return err
		}
		if ts <= 0 {
			return violation("pong %d carried timestamp %d, want a positive timestamp", i+1, ts)
		}
		env.Log.Debug().Int("round", i+1).Int64("ts", ts).Msg("pong")
	}
	return nil
}

// HeartbeatBeforeLogin asserts that a ping on an unauthenticated session
// neither breaks the connection nor shifts frame boundaries. Any reply is
// tolerated; a ghost login afterwards must still get its own result.
func HeartbeatBeforeLogin(ctx context.Context, env *Env) error {
	s, err := env.Open(ctx, "heartbeat_before_login")
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Send(ctx, &protocol.Ping{Timestamp: 1}); err != nil {
		return err
	}

	id, msg, err := s.ReceiveOptional(ctx, env.Timing.UnauthPingWindow)
	if err != nil {
		return err
	}
	if id == protocol.None {
		env.Log.Info().Msg("no reply to unauthenticated ping")
	} else {
		env.Log.Info().Stringer("msg", id).Interface("fields", msg).Msg("tolerated reply to unauthenticated ping")
	}

	res, err := s.Login(ctx, env.Account("ghost"), "whatever")
	if err != nil {
		return err
	}
	return expectCode("login after ping", res.Code, gateprobe.CodeAccountNotFound)
}
