// Package main runs gate conformance scenarios against a game server gate.
//
// Usage:
//
//	gateprobe [-config configs/gateprobe.ini] [-host 127.0.0.1] [-port 9948] [-test all]
//
// Failures are reported in the log. With -strict the process also exits 1
// when any scenario failed. Usage errors exit 2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/luciancaetano/gateprobe"
	"github.com/luciancaetano/gateprobe/internal/config"
	"github.com/luciancaetano/gateprobe/internal/logger"
	"github.com/luciancaetano/gateprobe/internal/runner"
	"github.com/luciancaetano/gateprobe/internal/scenario"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// CLIConfig holds the parsed command line.
type CLIConfig struct {
	configFile string
	host       string
	port       int
	test       string
	total      int
	batch      int
	kickPolicy string
	logLevel   string
	strict     bool
	set        map[string]bool
}

// parseCLIFlags parses args into a CLIConfig, remembering which flags were given.
func parseCLIFlags(args []string, out io.Writer) (*CLIConfig, error) {
	cli := &CLIConfig{set: make(map[string]bool)}

	fs := flag.NewFlagSet("gateprobe", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cli.configFile, "config", "", "Path to an ini config file")

	// Target
	fs.StringVar(&cli.host, "host", gateprobe.DefaultHost, "Gate host")
	fs.IntVar(&cli.port, "port", gateprobe.DefaultPort, "Gate port")

	// Selection
	fs.StringVar(&cli.test, "test", gateprobe.GroupAll, "Scenario group to run, or \"all\"")
	fs.IntVar(&cli.total, "total", 20, "Stress lifecycles")
	fs.IntVar(&cli.batch, "batch", 5, "Stress batch width")
	fs.StringVar(&cli.kickPolicy, "kick-policy", "either", "Eviction evidence to accept: either, notice or close")

	// Output
	fs.StringVar(&cli.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cli.strict, "strict", false, "Exit 1 when any scenario failed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { cli.set[f.Name] = true })
	return cli, nil
}

// apply overlays explicitly given flags on cfg.
func (cli *CLIConfig) apply(cfg *config.Config) {
	if cli.set["host"] {
		cfg.Host = cli.host
	}
	if cli.set["port"] {
		cfg.Port = cli.port
	}
	if cli.set["total"] {
		cfg.Total = cli.total
	}
	if cli.set["batch"] {
		cfg.Batch = cli.batch
	}
	if cli.set["kick-policy"] {
		cfg.Policy = cli.kickPolicy
	}
	if cli.set["log-level"] {
		cfg.Level = cli.logLevel
	}
	if cli.set["strict"] {
		cfg.StrictExit = cli.strict
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cli, err := parseCLIFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(cli.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Fatal: %v\n", err)
		return exitUsage
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Fatal: %v\n", err)
		return exitUsage
	}

	if err := logger.InitWriter(stderr, cfg.Level); err != nil {
		fmt.Fprintf(stderr, "Fatal: Failed to initialize logger: %v\n", err)
		return exitUsage
	}

	env, err := scenario.NewEnv(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid scenario settings")
		return exitUsage
	}

	orch := runner.NewOrchestrator(env, cfg.Settle)
	stress := runner.NewStressRunner(env, runner.StressConfig{
		ReconnectPause: cfg.ReconnectPause,
		BatchPause:     cfg.BatchPause,
	})
	runner.RegisterDefaults(orch, stress, cfg.Total, cfg.Batch)

	log.Info().Str("endpoint", cfg.Endpoint()).Str("test", cli.test).Msg("gateprobe starting")

	report, err := orch.Run(ctx, cli.test)
	switch {
	case errors.Is(err, runner.ErrUnknownGroup):
		log.Error().Err(err).Msg("usage")
		fmt.Fprintf(stderr, "Available groups: %s, %s\n", strings.Join(orch.Groups(), ", "), gateprobe.GroupAll)
		return exitUsage
	case err != nil:
		log.Warn().Err(err).Msg("run interrupted")
	}

	for _, out := range report.Failed {
		log.Error().Str("scenario", out.Name).Err(out.Err).Msg("FAILED")
	}
	log.Info().Int("passed", len(report.Passed)).Int("failed", len(report.Failed)).Msg("summary")

	if cfg.StrictExit && (!report.OK() || err != nil) {
		return exitFailed
	}
	return exitOK
}
