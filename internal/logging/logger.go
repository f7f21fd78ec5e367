package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger so components can be handed one named child each.
type Logger struct {
	*zap.Logger
}

// Config selects the level, the encoder preset and where lines go.
type Config struct {
	Level       string // zap level name; empty means info
	Development bool   // colored console lines instead of JSON
	OutputPaths []string
}

// New builds a logger from one of zap's presets.
func New(cfg Config) (*Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableStacktrace = !cfg.Development

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zapCfg.Level = level
	}
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewFromSettings builds a logger from the level and mode carried in app
// configuration. A bad level falls back to info and is reported once.
func NewFromSettings(level string, development bool) *Logger {
	logger, err := New(Config{Level: level, Development: development})
	if err == nil {
		return logger
	}
	fallback, ferr := New(Config{Development: development})
	if ferr != nil {
		return NewNop()
	}
	fallback.Warn("Falling back to info level", zap.Error(err))
	return fallback
}

// NewNop creates a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

// Named returns a child logger with the name segment appended.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name)}
}
