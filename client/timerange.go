package client

// MobileBreakpoint is the viewport width (px) below which the chart opens on
// the 7-day window.
const MobileBreakpoint = 768

// DefaultWindowDays is the window selected on a desktop-sized initial mount.
const DefaultWindowDays = 90

// TrailingWindow returns the last min(len(series), days) elements in original
// order. The filter is purely positional over the fetched series, not date
// arithmetic: days absent from the series (no zero-fill upstream) shift the
// window accordingly. That is observable behavior and must stay.
func TrailingWindow[T any](series []T, days int) []T {
	if days <= 0 {
		return series[:0]
	}
	if days >= len(series) {
		return series
	}
	return series[len(series)-days:]
}

// DaysForViewport picks the initial window for a viewport width: 7 days below
// the mobile breakpoint, the full 90 otherwise.
func DaysForViewport(width int) int {
	if width < MobileBreakpoint {
		return 7
	}
	return DefaultWindowDays
}
