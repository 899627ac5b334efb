// Package backend parses target-arch-vendor triplets and resolves them against
// the wildcarded backend patterns of the configuration registry.
package backend
