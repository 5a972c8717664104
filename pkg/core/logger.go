package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// SilentLogger discards all log output
type SilentLogger struct{}

// Printf implements the Logger interface
func (SilentLogger) Printf(format string, args ...interface{}) {}
