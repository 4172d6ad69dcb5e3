package scenario

import (
	"context"
	"errors"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/protocol"
	"github.com/luciancaetano/gateprobe/internal/websocket"
)

// TestRoomID is the room the join scenario asks for.
const TestRoomID = "test_room_001"

// JoinRoom attempts the join handshake. A gate without the route stays
// silent, which passes.
func JoinRoom(ctx context.Context, env *Env) error {
	s, _, err := env.SignUp(ctx, "join_room", env.Account("roomuser"), password)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Send(ctx, &protocol.JoinRoom{RoomId: TestRoomID}); err != nil {
		return err
	}

	id, msg, err := s.Receive(ctx, env.Timing.JoinRoom)
	switch {
	case errors.Is(err, websocket.ErrTimeout):
		env.Log.Warn().Msg("no join reply, room route not registered")
		return nil
	case err != nil:
		return err
	}

	res, ok := msg.(*protocol.JoinResult)
	if !ok {
		return &websocket.UnexpectedReplyError{Want: protocol.S2CJoinResult, Got: id}
	}
	if res.Code != gateprobe.CodeSuccess {
		env.Log.Warn().Int32("code", res.Code).Msg("join refused")
		return nil
	}
	if res.RoomId != "" && res.RoomId != TestRoomID {
		return violation("joined room %q, want %q", res.RoomId, TestRoomID)
	}
	env.Log.Info().Str("room", res.RoomId).Msg("joined")
	return nil
}
