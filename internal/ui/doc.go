// Package ui holds the color themes shared by the line-oriented reports and
// the dashboard. Result lines themselves are never colored; themes only
// style headings, warnings and the TUI.
package ui
