package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// stdout carries formatted headers, so logs go to stderr.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger()
}

// SetOutput redirects the logger, keeping its level and context.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to
// info and ok is false.
func ParseLevel(level string) (zerologLevel zerolog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "fatal":
		return zerolog.FatalLevel, true
	case "panic":
		return zerolog.PanicLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func SetLevel(level string) {
	zerologLevel, ok := ParseLevel(level)
	zerolog.SetGlobalLevel(zerologLevel)
	if !ok {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}
