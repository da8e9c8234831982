// Package cli parses command-line arguments into a config.Config and maps
// usage errors to exit codes.
package cli
