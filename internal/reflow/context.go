package reflow

import "math"

// Font size limits of the panel, in pixels.
const (
	MinFontSize     = 8
	MaxFontSize     = 44
	DefaultFontSize = 18
)

// WrapContext is everything the character budget depends on.
type WrapContext struct {
	WidthPx    int
	FontSizePx int
}

// Budget is how many runes fit on a display line: the width divided by
// half the font size, both in whole pixels. It is never less than 1.
func (c WrapContext) Budget() int {
	advance := c.FontSizePx / 2
	if advance < 1 {
		return 1
	}
	b := c.WidthPx / advance
	if b < 1 {
		return 1
	}
	return b
}

// FontRange is the inclusive range of accepted font sizes.
type FontRange struct {
	Min int
	Max int
}

// DefaultFontRange returns the panel's built-in limits.
func DefaultFontRange() FontRange {
	return FontRange{Min: MinFontSize, Max: MaxFontSize}
}

// Contains reports whether size lies inside the range.
func (r FontRange) Contains(size int) bool {
	return size >= r.Min && size <= r.Max
}

// StepFontSize applies delta to cur. A result outside r is rejected and cur
// is returned unchanged with ok false.
func StepFontSize(cur, delta int, r FontRange) (size int, ok bool) {
	next := cur + delta
	if !r.Contains(next) {
		return cur, false
	}
	return next, true
}

// WidthPx rounds a host width measurement to whole pixels. Negative and
// NaN inputs become 0.
func WidthPx(w float64) int {
	if math.IsNaN(w) || w <= 0 {
		return 0
	}
	if w > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(w))
}
