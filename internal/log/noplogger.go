package log

// NopLogger discards every entry. It keeps tests quiet where entries are not
// asserted on.
type NopLogger struct{}

// NewNopLogger constructs NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Debug(string, ...interface{}) {}

func (*NopLogger) Info(string, ...interface{}) {}

func (*NopLogger) Warn(string, ...interface{}) {}

func (*NopLogger) Error(string, ...interface{}) {}
