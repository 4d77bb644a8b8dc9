package format

import (
	"fmt"
	"strings"
	"time"
)

// TrialProgress tracks how many trials of a benchmark matrix have completed
// and estimates the remaining time from the average trial rate.
type TrialProgress struct {
	total     int
	done      int
	startTime time.Time
	now       func() time.Time
}

// NewTrialProgress creates a tracker for total trials.
func NewTrialProgress(total int) *TrialProgress {
	return &TrialProgress{total: total, startTime: time.Now(), now: time.Now}
}

// Advance records one completed trial and returns the completed fraction
// together with the estimated time remaining.
func (p *TrialProgress) Advance() (float64, time.Duration) {
	if p.done < p.total {
		p.done++
	}
	return p.Fraction(), p.ETA()
}

// Done returns the number of completed trials.
func (p *TrialProgress) Done() int { return p.done }

// Total returns the number of trials in the matrix.
func (p *TrialProgress) Total() int { return p.total }

// Fraction returns the completed fraction in [0, 1].
func (p *TrialProgress) Fraction() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(p.done) / float64(p.total)
}

// ETA extrapolates the remaining time. It returns 0 until one trial has
// completed.
func (p *TrialProgress) ETA() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	perTrial := elapsed / time.Duration(p.done)
	return perTrial * time.Duration(p.total-p.done)
}

// FormatETA formats an ETA for display.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "--"
	}
	if eta < time.Second {
		return "< 1s"
	}
	return eta.Round(time.Second).String()
}

// ProgressBar renders a textual progress bar of the given width.
func ProgressBar(progress float64, width int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(width))
	var builder strings.Builder
	builder.Grow(width * 3)
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA combines a progress bar, percentage and ETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%s %5.1f%% ETA %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
