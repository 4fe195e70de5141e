package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements Logger on top of a zap sugared logger writing to
// stderr. Stdout stays reserved for command output.
type ZapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger constructs ZapLogger. Debug entries are emitted only when
// verbose is set.
func NewZapLogger(verbose bool) *ZapLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return &ZapLogger{s: zap.New(core).Sugar()}
}

func (z *ZapLogger) Debug(msg string, kv ...interface{}) {
	z.s.Debugw(msg, kv...)
}

func (z *ZapLogger) Info(msg string, kv ...interface{}) {
	z.s.Infow(msg, kv...)
}

func (z *ZapLogger) Warn(msg string, kv ...interface{}) {
	z.s.Warnw(msg, kv...)
}

func (z *ZapLogger) Error(msg string, kv ...interface{}) {
	z.s.Errorw(msg, kv...)
}

// Sync flushes buffered entries. Callers usually defer it and ignore the
// error, which is expected for terminal sinks.
func (z *ZapLogger) Sync() error {
	return z.s.Sync()
}
