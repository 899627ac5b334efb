// Package app contains the driver's run lifecycle: load the configuration
// registry, resolve the backend, assemble the stage commands, gate them and hand
// them to the pipeline executor. It is decoupled from the CLI so it can be
// driven directly from tests.
package app
