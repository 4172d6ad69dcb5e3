package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciancaetano/gateprobe/internal/scenario"
)

// recorder builds scenarios that log their own names when run.
type recorder struct {
	mu  sync.Mutex
	ran []string
}

func (r *recorder) scenario(name string, err error) scenario.Scenario {
	return scenario.Scenario{
		Name: name,
		Run: func(context.Context, *scenario.Env) error {
			r.mu.Lock()
			r.ran = append(r.ran, name)
			r.mu.Unlock()
			return err
		},
	}
}

func newTestOrchestrator(settle time.Duration) *Orchestrator {
	return NewOrchestrator(&scenario.Env{Log: zerolog.Nop()}, settle)
}

func TestRunGroupInOrder(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(0)
	o.Register("auth", rec.scenario("a1", nil), rec.scenario("a2", nil))
	o.Register("ping", rec.scenario("p1", nil))

	report, err := o.Run(context.Background(), "auth")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, rec.ran)
	assert.Equal(t, 2, report.Total())
	assert.True(t, report.OK())
}

func TestRunAllInRegistrationOrder(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(0)
	o.Register("b", rec.scenario("b1", nil))
	o.Register("a", rec.scenario("a1", nil))
	o.Register("b", rec.scenario("b2", nil))

	assert.Equal(t, []string{"b", "a"}, o.Groups())

	_, err := o.Run(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2", "a1"}, rec.ran)
}

func TestRunUnknownGroup(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(0)
	o.Register("auth", rec.scenario("a1", nil))

	report, err := o.Run(context.Background(), "nope")
	require.ErrorIs(t, err, ErrUnknownGroup)
	assert.Contains(t, err.Error(), "auth")
	assert.Empty(t, rec.ran)
	assert.Zero(t, report.Total())
}

func TestRunCollectsFailures(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(0)
	boom := errors.New("boom")
	o.Register("mixed",
		rec.scenario("ok", nil),
		rec.scenario("bad", boom),
		scenario.Scenario{Name: "panics", Run: func(context.Context, *scenario.Env) error { panic("kaput") }},
		rec.scenario("after", nil),
	)

	report, err := o.Run(context.Background(), "mixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"ok", "bad", "after"}, rec.ran)
	require.Len(t, report.Failed, 2)
	assert.ErrorIs(t, report.Failed[0].Err, boom)
	assert.ErrorIs(t, report.Failed[1].Err, scenario.ErrPanic)
	assert.Len(t, report.Passed, 2)
	assert.False(t, report.OK())
}

func TestRunSettlesBetweenScenarios(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(30 * time.Millisecond)
	o.Register("g", rec.scenario("1", nil), rec.scenario("2", nil), rec.scenario("3", nil))

	start := time.Now()
	_, err := o.Run(context.Background(), "g")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	o := newTestOrchestrator(time.Minute)
	o.Register("g", rec.scenario("1", nil), rec.scenario("2", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	report, err := o.Run(ctx, "g")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{"1"}, rec.ran)
	assert.Equal(t, 1, report.Total())
}

func TestRegisterDefaults(t *testing.T) {
	t.Parallel()
	env := &scenario.Env{Log: zerolog.Nop()}
	o := NewOrchestrator(env, 0)
	RegisterDefaults(o, NewStressRunner(env, StressConfig{}), 20, 5)

	assert.Equal(t, []string{"register", "login", "heartbeat", "reconnect", "room", "stress"}, o.Groups())

	var names []string
	for _, g := range o.groups {
		for _, s := range g.scenarios {
			names = append(names, s.Name)
		}
	}
	assert.Equal(t, []string{
		"register", "register_duplicate",
		"login", "login_wrong_password", "login_nonexistent",
		"heartbeat", "heartbeat_before_login",
		"kick",
		"join_room",
		"stress",
	}, names)
}
