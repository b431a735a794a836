package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by every relax subsystem.
const (
	FieldComponent = "component"
	FieldSession   = "session"
	FieldEndpoint  = "endpoint"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
// A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options. Output goes to
// stderr unless a Writer is supplied, leaving stdout to commands and the TUI.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// With returns a derived logger carrying a single extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Interface(key, value).Logger()}
	return &derived
}

// Component tags entries with the subsystem that wrote them.
func (l *Logger) Component(name string) *Logger {
	return l.With(FieldComponent, name)
}

// Session tags entries with a breathing session ID so one exercise can be
// followed across the session, the dashboard and the CLI.
func (l *Logger) Session(id string) *Logger {
	return l.With(FieldSession, id)
}

// Endpoint tags entries with the API path a request was sent to.
func (l *Logger) Endpoint(path string) *Logger {
	return l.With(FieldEndpoint, path)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
