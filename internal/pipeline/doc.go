// Package pipeline drives the assembled stage commands: it checks that every
// executable can be found, then prints (dry run) or runs the enabled stages one
// after another, stopping at the first failure.
//
// Stages never run concurrently; each consumes the previous stage's artifacts
// from the output directory.
package pipeline
