// Package cli renders benchmark events for the command line.
//
// # Naming Conventions
//
//   - *Reporter types implement [bench.Reporter] and write one output format.
//   - Format* functions return a formatted string without performing I/O.
//   - Display* functions write formatted output to an [io.Writer].
package cli
