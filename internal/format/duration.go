// Package format holds the pure string formatting helpers shared by the CLI
// and TUI presenters.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// SecondsPrecision is the number of fractional digits printed for trial
// times. Nine digits keeps the full nanosecond resolution of time.Duration.
const SecondsPrecision = 9

// FormatSeconds renders d as fractional seconds with SecondsPrecision digits.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', SecondsPrecision, 64)
}

// FormatSpeedup renders a speedup ratio such as "3.42x", or "-" when the
// ratio is unknown.
func FormatSpeedup(ratio float64) string {
	if ratio <= 0 {
		return "-"
	}
	return strconv.FormatFloat(ratio, 'f', 2, 64) + "x"
}
