package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirulhakim/themajlis/internal/models"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"14:30", 870},
		{"02:30 PM", 870},
		{"02:30PM", 870},
		{"02:30 pm", 870},
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"00:00", 0},
		{"9:05", 545},
		{"23:59", 1439},
		{"", 0},
		{"noon", 0},
		{"25 past 3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeToMinutes(tt.input))
		})
	}
}

func TestIsUpcomingAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		date    string
		timeStr string
		want    bool
	}{
		{"one minute ahead", "2025-06-01", "10:01", true},
		{"one minute past", "2025-06-01", "09:59", false},
		{"exact start instant is no longer upcoming", "2025-06-01", "10:00", false},
		{"no time means end of day", "2025-06-01", "", true},
		{"unparseable time falls back to end of day", "2025-06-01", "after maghrib", true},
		{"yesterday", "2025-05-31", "", false},
		{"tomorrow morning", "2025-06-02", "05:00", true},
		{"empty date never upcoming", "", "10:01", false},
		{"malformed date never upcoming", "soon", "", false},
		{"12-hour time ahead", "2025-06-01", "10:01 AM", true},
		{"12-hour time past", "2025-06-01", "09:59 AM", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpcomingAt(tt.date, tt.timeStr, now))
		})
	}
}

func TestIsUpcomingAtEndOfDayBoundary(t *testing.T) {
	date := "2025-06-01"
	justBefore := time.Date(2025, 6, 1, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, IsUpcomingAt(date, "", justBefore))
	assert.False(t, IsUpcomingAt(date, "", nextDay))
}

func TestUpcomingAtMultiDay(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)

	multiDay := models.Majlis{StartDate: "2025-06-01", EndDate: "2025-06-03", Time: "09:00"}
	assert.True(t, UpcomingAt(multiDay, now), "multi-day majlis stays upcoming until its last day ends")

	endedMultiDay := models.Majlis{StartDate: "2025-05-28", EndDate: "2025-06-01"}
	assert.False(t, UpcomingAt(endedMultiDay, now))

	singleDay := models.Majlis{StartDate: "2025-06-02", EndDate: "2025-06-02", Time: "09:00"}
	assert.False(t, UpcomingAt(singleDay, now), "single-day majlis cuts off at its start time")
}
