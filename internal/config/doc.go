// Package config defines the format-agnostic configuration registry of the
// driver: which toolchain executables serve a backend pattern, which default
// options each stage receives, and where each language keeps its standard
// include directory.
//
// The Registry preserves registration order. Backend resolution is
// first-match-wins over that order, so loaders must register patterns
// deterministically. Concrete loaders (HCL) live in separate packages.
package config
