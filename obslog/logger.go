package obslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the narrow logging surface the solver core depends on.
// Progress lines are routed to stdout and prefixed "-- "; Errorf lines are
// routed to stderr and prefixed "ERROR -- ", matching spec §7's
// user-visible behavior contract exactly.
type Logger interface {
	Progress(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// zapLogger adapts a *zap.SugaredLogger to the Logger interface. It is
// built with a console encoder carrying no timestamp/level/caller framing
// so the emitted line is exactly "-- <message>" or "ERROR -- <message>",
// with nothing else zap would normally prepend.
type zapLogger struct {
	out *zap.SugaredLogger
	err *zap.SugaredLogger
}

// New builds a Logger backed by two zap cores: one writing bare lines to
// stdout for Progress, one writing bare lines to stderr for Errorf.
func New() Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	enc := zapcore.NewConsoleEncoder(encCfg)

	outCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	errCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stderr), zapcore.ErrorLevel)

	return &zapLogger{
		out: zap.New(outCore).Sugar(),
		err: zap.New(errCore).Sugar(),
	}
}

func (l *zapLogger) Progress(format string, args ...interface{}) {
	l.out.Infof("-- "+format, args...)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.err.Errorf("ERROR -- "+format, args...)
}

// nopLogger discards everything; used by tests and by callers that want
// the solver to run silently.
type nopLogger struct{}

func (nopLogger) Progress(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}

// Nop returns a Logger that discards all output.
func Nop() Logger { return nopLogger{} }
