// Package cmd implements the ars subcommands.
//
// Each command is a [kong] command struct whose Run method receives the
// context prepared by package cli. Commands write their results to the
// writer installed with [WithOutput], or standard output by default.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
