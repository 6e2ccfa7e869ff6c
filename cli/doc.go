// Package cli contains the command line interface for ars.
//
// # Usage
//
//	ars [flags] <command> [args]
//
// Commands:
//
//   - lex:     tokenize source files with the built-in pasm grammar or a
//     grammar file, optionally filtered by an expression
//   - parse:   parse a pasm program and print its syntax tree
//   - emit:    parse a pasm program and print it in canonical form
//   - repl:    start an interactive tokenizer
//   - init:    write a configuration file holding the current flag values
//   - version: print the version
//
// # Configuration
//
// Global flags may be set in a YAML file in the user configuration
// directory (for example ~/.config/ars/config.yaml). Keys are flag names,
// with hyphens or underscores, or nested mappings whose keys are joined
// with hyphens:
//
//	log-level: debug
//	log:
//	  format: json
//	  pretty: false
//
// A JSON file of the same base name (config.json) is also read. Flags on
// the command line take precedence.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorize output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (see [profile.Modes])
//   - --pprof-dir: profile output directory (default: the pprof
//     subdirectory of the user cache directory)
//
// # Examples
//
//	ars lex --where 'kind == ident' main.pasm
//	ars --log-level=trace parse --format yaml main.pasm
//	ars --pprof-mode=cpu lex -g grammar.yaml big.src > /dev/null
package cli
