package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// log formats
const (
	LogFormatPlain = "plain"
	LogFormatJSON  = "json"
)

// NewLogger returns a zerolog backed logger writing to w at the given level
func NewLogger(w io.Writer, level string, format string) (log.Logger, error) {
	var logWriter io.Writer
	switch strings.ToLower(format) {
	case LogFormatPlain, "":
		logWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case LogFormatJSON:
		logWriter = w
	default:
		return nil, fmt.Errorf("unknown log format %s", format)
	}

	logLvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", level, err)
	}

	return log.NewCustomLogger(zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger()), nil
}
