package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured logs to stderr so command output stays on stdout.
type Logger struct {
	*zap.SugaredLogger
}

// verbose switches to debug level with the human readable console encoder
func NewLogger(verbose bool) *Logger {
	var encoder zapcore.Encoder
	level := zapcore.InfoLevel
	if verbose {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
		level = zapcore.DebugLevel
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return New(core)
}

// wraps an arbitrary core, tests pass an observer core here
func New(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
