package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter implements Logger on top of rs/zerolog.
type ZerologAdapter struct {
	logger    zerolog.Logger
	component string
}

// NewZerolog creates an adapter writing structured JSON to the given writer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger creates an adapter with human-readable console output.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
	return NewZerolog(consoleWriter, level)
}

// WithComponent returns a copy of the adapter tagging every event with a
// component field.
func (z *ZerologAdapter) WithComponent(component string) *ZerologAdapter {
	return &ZerologAdapter{logger: z.logger, component: component}
}

func (z *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), msg, fields)
}

func (z *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), msg, fields)
}

func (z *ZerologAdapter) Warning(msg string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), msg, fields)
}

func (z *ZerologAdapter) Error(msg string, err error, fields map[string]interface{}) {
	z.emit(z.logger.Error().Err(err), msg, fields)
}

func (z *ZerologAdapter) emit(event *zerolog.Event, msg string, fields map[string]interface{}) {
	if z.component != "" {
		event = event.Str("component", z.component)
	}
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
