package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/luciancaetano/gateprobe"
)

// TargetConf is the gate under test.
type TargetConf struct {
	Host             string        `ini:"host"`
	Port             int           `ini:"port"`
	Path             string        `ini:"path"`
	HandshakeTimeout time.Duration `ini:"handshake_timeout"`
}

// TimeoutConf bounds every wait on the wire.
type TimeoutConf struct {
	Reply            time.Duration `ini:"reply"`
	JoinRoom         time.Duration `ini:"join_room"`
	KickGrace        time.Duration `ini:"kick_grace"`
	KickWindow       time.Duration `ini:"kick_window"`
	UnauthPingWindow time.Duration `ini:"unauth_ping_window"`
}

// PacingConf holds the fixed delays between steps.
type PacingConf struct {
	Settle            time.Duration `ini:"settle"`
	Reconnect         time.Duration `ini:"reconnect"`
	HeartbeatInterval time.Duration `ini:"heartbeat_interval"`
}

// StressConf shapes the stress group.
type StressConf struct {
	Total          int           `ini:"total"`
	Batch          int           `ini:"batch"`
	ReconnectPause time.Duration `ini:"reconnect_pause"`
	BatchPause     time.Duration `ini:"batch_pause"`
}

// KickConf selects how the duplicate login eviction is judged.
type KickConf struct {
	Policy string `ini:"policy"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// RunConf controls process exit behavior.
type RunConf struct {
	StrictExit bool `ini:"strict_exit"`
}

// Config is the unified harness configuration.
type Config struct {
	TargetConf  `ini:"target"`
	TimeoutConf `ini:"timeouts"`
	PacingConf  `ini:"pacing"`
	StressConf  `ini:"stress"`
	KickConf    `ini:"kick"`
	LogConf     `ini:"log"`
	RunConf     `ini:"run"`
}

// Default returns the values the harness runs with when no file is given.
func Default() *Config {
	return &Config{
		TargetConf: TargetConf{
			Host:             gateprobe.DefaultHost,
			Port:             gateprobe.DefaultPort,
			Path:             gateprobe.DefaultPath,
			HandshakeTimeout: 5 * time.Second,
		},
		TimeoutConf: TimeoutConf{
			Reply:            5 * time.Second,
			JoinRoom:         3 * time.Second,
			KickGrace:        500 * time.Millisecond,
			KickWindow:       2 * time.Second,
			UnauthPingWindow: 2 * time.Second,
		},
		PacingConf: PacingConf{
			Settle:            300 * time.Millisecond,
			Reconnect:         300 * time.Millisecond,
			HeartbeatInterval: 200 * time.Millisecond,
		},
		StressConf: StressConf{
			Total:          20,
			Batch:          5,
			ReconnectPause: 100 * time.Millisecond,
			BatchPause:     200 * time.Millisecond,
		},
		KickConf: KickConf{Policy: "either"},
		LogConf:  LogConf{Level: "info"},
	}
}

// Load maps an ini file on top of Default. An empty fileName yields the defaults.
// GATEPROBE_HOST and GATEPROBE_PORT override the file. Load does not validate,
// callers apply their flag overrides first and then call Validate.
func Load(fileName string) (*Config, error) {
	cfg := Default()
	if fileName != "" {
		iniFile, err := ini.Load(fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", fileName, err)
		}
		if err := iniFile.MapTo(cfg); err != nil {
			return nil, fmt.Errorf("failed to map config %s: %w", fileName, err)
		}
	}
	overrideFromEnv(&cfg.Host, "GATEPROBE_HOST")
	overrideFromEnvInt(&cfg.Port, "GATEPROBE_PORT")
	return cfg, nil
}

// Validate rejects values the runner cannot work with.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("target host is empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("target port %d out of range", c.Port)
	}
	if c.Total < 0 {
		return fmt.Errorf("stress total %d is negative", c.Total)
	}
	if c.Batch <= 0 {
		return fmt.Errorf("stress batch %d must be positive", c.Batch)
	}
	switch c.Policy {
	case "either", "notice", "close":
	default:
		return fmt.Errorf("unknown kick policy %q", c.Policy)
	}
	return nil
}

// Endpoint renders the WebSocket URI of the target gate.
func (c *Config) Endpoint() string {
	path := c.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "ws://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port)) + path
}

func overrideFromEnv(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
