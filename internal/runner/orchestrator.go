package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/scenario"
)

// ErrUnknownGroup is returned by Run for a selector that names no group.
var ErrUnknownGroup = errors.New(gateprobe.ErrUnknownGroup)

type group struct {
	name      string
	scenarios []scenario.Scenario
}

// Report lists scenario outcomes of one run in execution order.
type Report struct {
	Passed []scenario.Outcome
	Failed []scenario.Outcome
}

// Total returns the number of scenarios that ran.
func (r Report) Total() int {
	return len(r.Passed) + len(r.Failed)
}

// OK reports whether every scenario passed.
func (r Report) OK() bool {
	return len(r.Failed) == 0
}

// Orchestrator holds scenario groups in registration order.
type Orchestrator struct {
	env    *scenario.Env
	settle time.Duration
	groups []group
	log    zerolog.Logger
}

// NewOrchestrator creates an empty registry. settle is the delay between
// consecutive scenarios.
func NewOrchestrator(env *scenario.Env, settle time.Duration) *Orchestrator {
	return &Orchestrator{
		env:    env,
		settle: settle,
		log:    logger.WithComponent("runner"),
	}
}

// Register appends scenarios to the named group, creating it on first use.
func (o *Orchestrator) Register(name string, scenarios ...scenario.Scenario) {
	for i := range o.groups {
		if o.groups[i].name == name {
			o.groups[i].scenarios = append(o.groups[i].scenarios, scenarios...)
			return
		}
	}
	o.groups = append(o.groups, group{name: name, scenarios: scenarios})
}

// Groups returns the group names in registration order.
func (o *Orchestrator) Groups() []string {
	names := make([]string, 0, len(o.groups))
	for _, g := range o.groups {
		names = append(names, g.name)
	}
	return names
}

// Run executes the group named by selector, or every group for "all".
// Scenario failures are collected in the report, not returned. The error is
// ErrUnknownGroup for a bad selector, or the context error if ctx ends early.
func (o *Orchestrator) Run(ctx context.Context, selector string) (Report, error) {
	var report Report

	selected, err := o.pick(selector)
	if err != nil {
		return report, err
	}

	first := true
	for _, g := range selected {
		logger.Section(o.log, "TEST: "+g.name)
		for _, s := range g.scenarios {
			if !first {
				if err := scenario.Pause(ctx, o.settle); err != nil {
					return report, err
				}
			}
			first = false

			out := scenario.Execute(ctx, o.env, s)
			if out.Passed() {
				report.Passed = append(report.Passed, out)
			} else {
				report.Failed = append(report.Failed, out)
			}
		}
	}

	o.log.Info().
		Str("selector", selector).
		Int("passed", len(report.Passed)).
		Int("failed", len(report.Failed)).
		Msg("run complete")
	return report, nil
}

func (o *Orchestrator) pick(selector string) ([]group, error) {
	if selector == gateprobe.GroupAll {
		return o.groups, nil
	}
	for _, g := range o.groups {
		if g.name == selector {
			return []group{g}, nil
		}
	}
	return nil, fmt.Errorf("%w %q, available: %s, %s", ErrUnknownGroup, selector, strings.Join(o.Groups(), ", "), gateprobe.GroupAll)
}
