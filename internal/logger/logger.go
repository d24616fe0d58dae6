// Package logger builds the zap logger shared by the API and its services.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "interview-iq"

// New returns a stdout logger at info level, or debug when debug is set.
// Output is human-readable console lines unless jsonOutput asks for one JSON
// object per line.
func New(jsonOutput, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.OutputPaths = []string{"stdout"}

	cfg.Encoding = "console"
	if jsonOutput {
		cfg.Encoding = "json"
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	// errors carry their wrapped chain; no stack traces
	cfg.EncoderConfig.StacktraceKey = ""

	return cfg.Build(zap.Fields(zap.String("service", serviceName)))
}

// TruncateForLog keeps the first limit runes of the trimmed input and marks
// the cut with "...".
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
