package log

import (
	"io"
)

// Option modifies the configuration of a [Logger].
type Option func(*config)

// WithOutput sets the destination of log records. A nil writer discards
// them.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}

		c.output = w
	}
}

// WithLevel sets the minimum level of records written.
func WithLevel(level Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithFormat sets the encoding of records.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithTimeLayout sets the layout of record timestamps.
//
// The layout may name one of the layouts of the [time] package, ignoring
// case and punctuation ("RFC3339Nano", "kitchen"), or be passed verbatim to
// [time.Time.Format]. A blank layout or "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(c *config) {
		c.formatTime = timeFormatter(layout)
	}
}

// WithCaller includes the source file and line of the logging call.
func WithCaller(enable bool) Option {
	return func(c *config) {
		c.caller = enable
	}
}

// WithPretty selects the colorized handlers in place of the plain slog
// handlers.
func WithPretty(enable bool) Option {
	return func(c *config) {
		c.pretty = enable
	}
}
