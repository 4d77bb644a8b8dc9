// Package tui implements the interactive benchmark dashboard on bubbletea.
//
// The benchmark runs in a command goroutine and reports through a
// bench.Reporter that forwards every event to the program as a message, so
// all rendering state is owned by the bubbletea update loop.
package tui
