package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/balkashynov/wellbeing/internal/config"
)

// New builds a production zap logger from the logging config
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = level > zapcore.DebugLevel
	zcfg.OutputPaths = []string{cfg.Output}
	zcfg.ErrorOutputPaths = []string{cfg.Output}

	return zcfg.Build()
}

// ForTerminalUI returns a logger that never writes to the terminal the
// dashboard is drawing on. File outputs are kept.
func ForTerminalUI(cfg config.LoggingConfig) (*zap.Logger, error) {
	if writesToTerminal(cfg.Output) {
		return zap.NewNop(), nil
	}
	return New(cfg)
}

func writesToTerminal(output string) bool {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "stderr", "stdout", "":
		return true
	}
	return false
}
