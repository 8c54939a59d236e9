package logger

import (
	"fmt"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Sync() error
}

func New(cfg config.Logger) (Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if cfg.Level != "" {
		l, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse level error: %w", err)
		}

		level = l
	}

	output := cfg.Output
	if len(output) == 0 {
		output = []string{"stdout"}
	}

	errOutput := cfg.ErrOutput
	if len(errOutput) == 0 {
		errOutput = []string{"stderr"}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	zcfg.OutputPaths = output
	zcfg.ErrorOutputPaths = errOutput
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger error: %w", err)
	}

	return l.Sugar(), nil
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return zap.NewNop().Sugar()
}
