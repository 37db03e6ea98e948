package main

import (
	"fmt"
	"math"
	"strings"
)

// Histogram counts generated values in equal-width buckets over [0, bound),
// plus one overflow bucket for values at or above bound. The generator does
// not cap its output at bound, so the overflow bucket is expected to fill.
type Histogram struct {
	bound    float64
	width    float64
	data     []int64
	overflow int64
}

func NewHistogram(bound float64, bins int) *Histogram {
	if bins < 1 {
		bins = 1
	}

	return &Histogram{
		bound: bound,
		width: bound / float64(bins),
		data:  make([]int64, bins),
	}
}

func (h *Histogram) Add(v float64) {
	switch {
	case math.IsNaN(v):
		return
	case v >= h.bound:
		h.overflow++
	case v < 0:
		// outputs are never negative; keep the count honest anyway
		h.data[0]++
	default:
		i := int(v / h.width)
		if i >= len(h.data) {
			i = len(h.data) - 1
		}
		h.data[i]++
	}
}

func (h *Histogram) Reset() {
	for i := range h.data {
		h.data[i] = 0
	}
	h.overflow = 0
}

// Counts returns a copy of the in-range bucket counts.
func (h *Histogram) Counts() []int64 {
	return append([]int64(nil), h.data...)
}

func (h *Histogram) Overflow() int64 {
	return h.overflow
}

func (h *Histogram) Total() int64 {
	total := h.overflow
	for _, n := range h.data {
		total += n
	}
	return total
}

func (h *Histogram) String() string {
	cols := make([]string, 0, len(h.data)+1)
	for _, n := range h.data {
		cols = append(cols, fmt.Sprintf("%8d", n))
	}
	cols = append(cols, fmt.Sprintf("%8d", h.overflow))
	return strings.Join(cols, ",")
}

// Headers labels each String() column with its bucket's lower edge. Both use
// the same column width so the two lines stack.
func (h *Histogram) Headers() string {
	cols := make([]string, 0, len(h.data)+1)
	for i := range h.data {
		cols = append(cols, fmt.Sprintf("%8.6g", float64(i)*h.width))
	}
	cols = append(cols, fmt.Sprintf("%8s", ">="+fmt.Sprintf("%.6g", h.bound)))
	return strings.Join(cols, ",")
}
