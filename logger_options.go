package httplog

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerOptions struct {
	output     io.Writer
	colorize   *bool
	timeLayout string
	zapOptions []zap.Option
}

func defaultLoggerOptions() *loggerOptions {
	return &loggerOptions{
		output:     os.Stdout,
		timeLayout: DefaultTimeLayout,
	}
}

type Option func(*loggerOptions)

func buildLoggerOptions(opts ...Option) *loggerOptions {
	options := defaultLoggerOptions()
	for _, fn := range opts {
		fn(options)
	}
	return options
}

// shouldColorize reports whether level colors should be written. Unless
// forced with WithColor, colors are only used for terminals and never when
// NO_COLOR is set.
func (o *loggerOptions) shouldColorize() bool {
	if o.colorize != nil {
		return *o.colorize
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := o.output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o *loggerOptions) writeSyncer() zapcore.WriteSyncer {
	// Lock so concurrent requests never interleave within a line.
	return zapcore.Lock(zapcore.AddSync(o.output))
}

// WithOutput sets the sink log lines are written to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(options *loggerOptions) {
		options.output = w
	}
}

// WithColor forces level colors on or off.
func WithColor(enabled bool) Option {
	return func(options *loggerOptions) {
		options.colorize = &enabled
	}
}

func WithTimeLayout(layout string) Option {
	return func(options *loggerOptions) {
		options.timeLayout = layout
	}
}

// WithZapOptions passes extra options to the underlying zap logger, e.g. zap.WithClock.
func WithZapOptions(opts ...zap.Option) Option {
	return func(options *loggerOptions) {
		options.zapOptions = append(options.zapOptions, opts...)
	}
}
