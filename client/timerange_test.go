package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailingWindow(t *testing.T) {
	series := []VisitorPoint{
		{Date: "Jun 1"}, {Date: "Jun 2"}, {Date: "Jun 3"}, {Date: "Jun 5"}, {Date: "Jun 9"},
	}

	got := TrailingWindow(series, 3)
	assert.Equal(t, []VisitorPoint{{Date: "Jun 3"}, {Date: "Jun 5"}, {Date: "Jun 9"}}, got)

	assert.Len(t, TrailingWindow(series, 5), 5)
	assert.Len(t, TrailingWindow(series, 90), 5, "window larger than the series returns everything")
	assert.Empty(t, TrailingWindow(series, 0))
	assert.Empty(t, TrailingWindow(series, -1))
}

func TestTrailingWindowIsPositionalNotDateBased(t *testing.T) {
	// sparse series: missing days shift the window instead of zero-filling
	series := []VisitorPoint{
		{Date: "Jun 1", Visitors: 1},
		{Date: "Jun 8", Visitors: 2},
		{Date: "Jun 30", Visitors: 3},
	}
	got := TrailingWindow(series, 2)
	assert.Equal(t, "Jun 8", got[0].Date)
	assert.Equal(t, "Jun 30", got[1].Date)
}

func TestTrailingWindowPreservesOrder(t *testing.T) {
	series := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{3, 4, 5, 6}, TrailingWindow(series, 4))
}

func TestDaysForViewport(t *testing.T) {
	assert.Equal(t, 7, DaysForViewport(375))
	assert.Equal(t, 7, DaysForViewport(767))
	assert.Equal(t, 90, DaysForViewport(768))
	assert.Equal(t, 90, DaysForViewport(1920))
}
