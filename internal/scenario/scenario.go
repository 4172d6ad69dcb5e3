package scenario

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// ErrContract marks a reply that broke the behaviour under test.
	ErrContract = errors.New("contract violated")
	// ErrPanic marks a scenario body that panicked.
	ErrPanic = errors.New("scenario panicked")
)

// Scenario is one self-contained procedure asserting a single behaviour.
type Scenario struct {
	Name string
	Run  func(ctx context.Context, env *Env) error
}

// Outcome records how one scenario ended.
type Outcome struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the scenario finished without error.
func (o Outcome) Passed() bool {
	return o.Err == nil
}

// Execute runs s and records its result. A panic in s becomes a failure
// carrying the stack trace.
func Execute(ctx context.Context, env *Env, s Scenario) (out Outcome) {
	out.Name = s.Name
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
		}
		out.Duration = time.Since(start)

		if out.Err != nil {
			env.Log.Error().Str("scenario", s.Name).Dur("took", out.Duration).Err(out.Err).Msg("fail")
			return
		}
		env.Log.Info().Str("scenario", s.Name).Dur("took", out.Duration).Msg("pass")
	}()

	out.Err = s.Run(ctx, env)
	return out
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...))
}

func expectCode(op string, got, want int32) error {
	if got != want {
		return violation("%s returned code %d, want %d", op, got, want)
	}
	return nil
}
