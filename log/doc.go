// Package log provides leveled, structured logging for the ars packages,
// built on [log/slog].
//
// A [Logger] is immutable: options are applied when it is made, and
// reconfiguring returns a new Logger. It is therefore safe to share one
// between goroutines, such as the lexers started for each source of a
// command.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("grammar loaded", slog.String("name", "pasm"))
//	logger.Error("lex failed", slog.Any("error", err))
//
// # Options
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a Logger with further options applied.
//
// # Attributes
//
// [Logger.With] returns a Logger adding attributes to every record:
//
//	logger = logger.With(slog.String("source", "main.pasm"))
//	logger.Trace("token") // includes source=main.pasm
//
// # Levels
//
// From least to most severe: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. The lexer, parser, and visitor emit their
// per-token and per-node records at trace level.
//
// # Zero Value
//
// The zero Logger discards every record, so a component may hold a Logger
// field and log unconditionally.
//
// # Package Logger
//
// The functions [Info], [DebugContext], and so on write to the package
// default Logger, which [Config] reconfigures. Functions without a context
// use [DefaultContextProvider].
//
// # Output
//
// Records are written as [FormatText] (default) or [FormatJSON]. With
// [WithPretty], levels and values are colorized with lipgloss when the
// output is a terminal; elsewhere the output is plain.
//
// [WithTimeLayout] accepts the name of a [time] layout constant such as
// "Kitchen", a literal layout, or "none" to omit timestamps.
package log
