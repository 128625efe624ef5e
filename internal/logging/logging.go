// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/huddle/internal/config"
)

// Sinks understood by New besides file paths.
const (
	Stderr = "stderr"
	Stdout = "stdout"
)

// New returns a logger for cfg. Output goes to cfg.Path when set, otherwise
// to fallback. An empty destination yields a no-op logger, which the TUI uses
// so log lines never tear the alt screen.
//
// Files get JSON lines; terminal sinks get the development console encoder.
func New(cfg config.LogConfig, fallback string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	dest := cfg.Path
	if dest == "" {
		dest = fallback
	}
	if dest == "" {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if dest == Stderr || dest == Stdout {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.Sampling = nil
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{dest}
	zc.ErrorOutputPaths = []string{Stderr}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("huddle"), nil
}
