package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level string

	// FilePath switches output to JSON lines in that file. Empty means console output on stderr.
	FilePath string
}

func DefaultConfig() Config {
	return Config{Level: "info"}
}

func newZap(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var zcfg zap.Config
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zcfg = zap.NewProductionConfig()
		zcfg.OutputPaths = []string{cfg.FilePath}
		zcfg.EncoderConfig.TimeKey = "timestamp"
		zcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{"stderr"}
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
