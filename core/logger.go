package core

// Logger is any service that can record application events.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger discards everything. Useful as a test default.
type NopLogger struct{}

var _ Logger = (*NopLogger)(nil)

func (NopLogger) Enable(bool)                  {}
func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
