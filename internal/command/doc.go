// Package command assembles the argument vector of every pipeline stage.
//
// Each stage command is its executable followed by, in this order: the user's
// pass-through options, options derived from high-level driver flags, and the
// defaults declared in configuration. Raw option strings are split with shell
// word rules; nothing is ever dropped, overridden or deduplicated.
package command
