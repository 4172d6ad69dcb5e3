package runner

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/scenario"
)

// Aggregate counts stress lifecycle outcomes. Succeeded + Failed equals the
// requested total once Run returns.
type Aggregate struct {
	Succeeded int
	Failed    int
}

// Total returns Succeeded + Failed.
func (a Aggregate) Total() int {
	return a.Succeeded + a.Failed
}

// StressConfig paces the stress runner.
type StressConfig struct {
	ReconnectPause time.Duration
	BatchPause     time.Duration
}

// StressRunner fans synthetic client lifecycles out in fixed-width batches.
type StressRunner struct {
	env *scenario.Env
	cfg StressConfig
	log zerolog.Logger
}

// NewStressRunner creates a runner using env for sessions.
func NewStressRunner(env *scenario.Env, cfg StressConfig) *StressRunner {
	return &StressRunner{
		env: env,
		cfg: cfg,
		log: logger.WithComponent("stress"),
	}
}

// Run executes total lifecycles, at most width at a time. Each batch is
// joined before the next one starts. A cancelled ctx fails the lifecycles
// that have not started.
func (r *StressRunner) Run(ctx context.Context, total, width int) Aggregate {
	var agg Aggregate
	if width < 1 {
		width = 1
	}

	for start := 0; start < total; start += width {
		if start > 0 {
			_ = scenario.Pause(ctx, r.cfg.BatchPause)
		}

		n := min(width, total-start)
		results := make([]error, n)

		var g errgroup.Group
		for i := 0; i < n; i++ {
			g.Go(func() error {
				results[i] = r.lifecycle(ctx, start+i)
				return nil
			})
		}
		_ = g.Wait()

		for i, err := range results {
			if err != nil {
				agg.Failed++
				r.log.Warn().Int("lifecycle", start+i).Err(err).Msg("lifecycle failed")
				continue
			}
			agg.Succeeded++
		}
		r.log.Info().Int("done", start+n).Int("total", total).Int("failed", agg.Failed).Msg("batch settled")
	}

	r.log.Info().Int("succeeded", agg.Succeeded).Int("failed", agg.Failed).Int("total", total).Msg("stress complete")
	return agg
}

// lifecycle registers a fresh account, reconnects, logs in and pings.
func (r *StressRunner) lifecycle(ctx context.Context, n int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v\n%s", scenario.ErrPanic, rec, debug.Stack())
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.env.NewSession(fmt.Sprintf("stress-%d", n))
	defer s.Close()

	account := r.env.Account(fmt.Sprintf("stress%d", n))
	const password = "stress_password"

	if err := s.Connect(ctx); err != nil {
		return err
	}
	reg, err := s.Register(ctx, account, password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if reg.Code != gateprobe.CodeSuccess {
		return fmt.Errorf("%w: register returned code %d", scenario.ErrContract, reg.Code)
	}

	if err := s.Close(); err != nil {
		return err
	}
	if err := scenario.Pause(ctx, r.cfg.ReconnectPause); err != nil {
		return err
	}
	if err := s.Connect(ctx); err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	res, err := s.Login(ctx, account, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if res.Code != gateprobe.CodeSuccess {
		return fmt.Errorf("%w: login returned code %d", scenario.ErrContract, res.Code)
	}

	ts, err := s.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if ts <= 0 {
		return fmt.Errorf("%w: pong timestamp %d", scenario.ErrContract, ts)
	}
	return nil
}

// Scenario wraps a stress run as a scenario that fails when any lifecycle failed.
func (r *StressRunner) Scenario(total, width int) scenario.Scenario {
	return scenario.Scenario{
		Name: "stress",
		Run: func(ctx context.Context, _ *scenario.Env) error {
			agg := r.Run(ctx, total, width)
			if agg.Failed > 0 {
				return fmt.Errorf("%w: %d of %d lifecycles failed", scenario.ErrContract, agg.Failed, agg.Total())
			}
			return nil
		},
	}
}
