package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quiz-data-generator/internal/config"
)

// New builds the process logger writing to w. Production uses the JSON
// encoder, any other environment the console encoder. Callers pass stderr
// so stdout carries only the status line.
func New(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var (
		enc  zapcore.Encoder
		opts = []zap.Option{zap.AddCaller()}
	)

	if cfg.Env == "production" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core, opts...), nil
}
