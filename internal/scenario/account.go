package scenario

import (
	"context"

	"github.com/luciancaetano/gateprobe"
)

const password = "test_password"

// Register asserts that a fresh account registers with a positive uid.
func Register(ctx context.Context, env *Env) error {
	s, err := env.Open(ctx, "register")
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Register(ctx, env.Account("testuser"), password)
	if err != nil {
		return err
	}
	if err := expectCode("register", res.Code, gateprobe.CodeSuccess); err != nil {
		return err
	}
	if res.Uid <= 0 {
		return violation("register returned uid %d, want a positive uid", res.Uid)
	}
	env.Log.Info().Int64("uid", res.Uid).Msg("registered")
	return nil
}

// RegisterDuplicate asserts that an account name can be taken only once,
// whatever password the second attempt carries. Each attempt gets its own
// connection.
func RegisterDuplicate(ctx context.Context, env *Env) error {
	account := env.Account("dupuser")
	first, err := env.RegisterAccount(ctx, "register_duplicate_first", account, password)
	if err != nil {
		return err
	}
	if err := expectCode("first register", first.Code, gateprobe.CodeSuccess); err != nil {
		return err
	}

	if err := Pause(ctx, env.Timing.Reconnect); err != nil {
		return err
	}

	second, err := env.RegisterAccount(ctx, "register_duplicate_second", account, "another_password")
	if err != nil {
		return err
	}
	return expectCode("second register", second.Code, gateprobe.CodeDuplicateAccount)
}

// Login asserts that the uid handed out at registration comes back on login.
func Login(ctx context.Context, env *Env) error {
	s, uid, err := env.SignUp(ctx, "login", env.Account("loginuser"), password)
	if err != nil {
		return err
	}
	defer s.Close()

	if got := s.AuthenticatedID(); got != uid {
		return violation("session holds uid %d after login, want %d", got, uid)
	}
	env.Log.Info().Int64("uid", uid).Msg("logged in")
	return nil
}

// LoginWrongPassword asserts the wrong password code on a connection opened
// after registration.
func LoginWrongPassword(ctx context.Context, env *Env) error {
	account := env.Account("wrongpw")
	reg, err := env.RegisterAccount(ctx, "login_wrong_password_register", account, password)
	if err != nil {
		return err
	}
	if err := expectCode("register", reg.Code, gateprobe.CodeSuccess); err != nil {
		return err
	}

	if err := Pause(ctx, env.Timing.Reconnect); err != nil {
		return err
	}

	s, err := env.Open(ctx, "login_wrong_password")
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Login(ctx, account, "wrong_password")
	if err != nil {
		return err
	}
	if err := expectCode("login", res.Code, gateprobe.CodeWrongPassword); err != nil {
		return err
	}
	if s.AuthenticatedID() != 0 {
		return violation("session authenticated after a rejected login")
	}
	return nil
}

// LoginNonexistent asserts the account not found code.
func LoginNonexistent(ctx context.Context, env *Env) error {
	s, err := env.Open(ctx, "login_nonexistent")
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Login(ctx, env.Account("ghost"), "whatever")
	if err != nil {
		return err
	}
	return expectCode("login", res.Code, gateprobe.CodeAccountNotFound)
}
