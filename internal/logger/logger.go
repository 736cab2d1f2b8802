// Package logger provides verbose diagnostic output on top of zap.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger reports decisions made while explaining, matching and generating.
// Debug output is only written when verbose mode is enabled; warnings are
// always written.
type Logger struct {
	enabled bool
	out     io.Writer
	zl      *zap.Logger
}

// New creates a logger writing to stderr.
func New(enabled bool) *Logger {
	l := &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
	l.build()
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{out: io.Discard, zl: zap.NewNop()}
}

func (l *Logger) build() {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	level := zapcore.WarnLevel
	if l.enabled {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(l.out),
		level,
	)
	l.zl = zap.New(core).Named("regexplain")
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
	l.build()
}

// Log writes a formatted debug message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	l.zl.Debug(fmt.Sprintf(format, args...))
}

// Section writes a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	l.zl.Debug("=== " + name + " ===")
}

// Warn writes a warning with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

// Enabled returns whether verbose mode is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Zap exposes the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}
