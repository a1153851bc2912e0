package option

import "github.com/sirupsen/logrus"

// Logger is the one-shot-warning/diagnostic sink the core calls into.
// The logging sink itself is an external collaborator (§1); this keeps
// the core's own code free of fmt.Println while letting a host wire in
// whatever sink it wants.
type Logger interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
}

// NopLogger discards everything. Useful for tests and for hosts that
// don't care about diagnostics.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...any) {}
func (NopLogger) Infof(string, ...any) {}

// logrusLogger is the Logger NewLogrusLogger returns, backed by
// sirupsen/logrus the way lazydocker wires logrus for its own
// diagnostics. A Root uses NopLogger until SetLogger installs another.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps an existing *logrus.Logger (or logrus.StandardLogger()
// if l is nil) as a Logger.
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Infof(format string, args ...any) { l.entry.Infof(format, args...) }
