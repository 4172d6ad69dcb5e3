package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global zerolog logger with a console writer on stderr.
// An unknown level falls back to info.
func Init(level string) error {
	return InitWriter(os.Stderr, level)
}

// InitWriter is Init with an explicit output.
func InitWriter(out io.Writer, level string) error {
	levelStr := strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		fmt.Fprintf(out, "Unknown log level '%s', defaulting to 'info'\n", levelStr)
		lvl = zerolog.InfoLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	log.Debug().Msgf("logger initialized with level: %s", lvl.String())
	return nil
}

// WithComponent returns a child of the global logger tagged with the component name.
func WithComponent(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}

// Section logs a banner line separating test groups.
func Section(l zerolog.Logger, title string) {
	l.Info().Str("section", title).Msg(strings.Repeat("=", 20))
}
