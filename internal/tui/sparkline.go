package tui

import "strings"

// sparkBlocks are the eight block heights used by RenderSparkline.
const sparkBlocks = "▁▂▃▄▅▆▇█"

// RingBuffer keeps the most recent samples of a metric up to a fixed
// capacity.
type RingBuffer struct {
	buf  []float64
	next int
	n    int
}

// NewRingBuffer creates a ring buffer with the given capacity (at least 1).
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{buf: make([]float64, max(capacity, 1))}
}

// Push adds a sample, dropping the oldest when full.
func (r *RingBuffer) Push(v float64) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	r.n = min(r.n+1, len(r.buf))
}

// Len returns the number of stored samples.
func (r *RingBuffer) Len() int { return r.n }

// Cap returns the capacity.
func (r *RingBuffer) Cap() int { return len(r.buf) }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if r.n == 0 {
		return 0
	}
	return r.buf[(r.next-1+len(r.buf))%len(r.buf)]
}

// Slice returns the samples oldest first, or nil when empty.
func (r *RingBuffer) Slice() []float64 {
	if r.n == 0 {
		return nil
	}
	out := make([]float64, 0, r.n)
	first := (r.next - r.n + len(r.buf)) % len(r.buf)
	for i := 0; i < r.n; i++ {
		out = append(out, r.buf[(first+i)%len(r.buf)])
	}
	return out
}

// Resize changes the capacity and keeps the newest samples that fit.
func (r *RingBuffer) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(r.buf) {
		return
	}
	kept := r.Slice()
	if len(kept) > capacity {
		kept = kept[len(kept)-capacity:]
	}
	r.buf = make([]float64, capacity)
	r.next, r.n = 0, 0
	for _, v := range kept {
		r.Push(v)
	}
}

// Reset drops all samples.
func (r *RingBuffer) Reset() {
	r.next, r.n = 0, 0
}

// RenderSparkline maps percentages in [0, 100] to block characters.
// Out-of-range values are clamped.
func RenderSparkline(values []float64) string {
	blocks := []rune(sparkBlocks)
	var b strings.Builder
	for _, v := range values {
		v = min(max(v, 0), 100)
		b.WriteRune(blocks[int(v/100*float64(len(blocks)-1))])
	}
	return b.String()
}
