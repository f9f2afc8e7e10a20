package listing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amirulhakim/themajlis/internal/models"
)

var (
	// time24Pattern matches the canonical "HH:MM" storage form.
	time24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	// time12Pattern is a fallback for legacy "HH:MM AM/PM" values.
	time12Pattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
)

// ParseTimeToMinutes converts a time-of-day string to minutes since midnight.
// Accepts "HH:MM" 24-hour form or "HH:MM AM/PM". Empty or unparseable input
// is treated as midnight and returns 0.
func ParseTimeToMinutes(timeStr string) int {
	if timeStr == "" {
		return 0
	}

	if m := time24Pattern.FindStringSubmatch(timeStr); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}

	if m := time12Pattern.FindStringSubmatch(timeStr); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		period := strings.ToUpper(m[3])

		if period == "PM" && hours != 12 {
			hours += 12
		} else if period == "AM" && hours == 12 {
			hours = 0
		}
		return hours*60 + minutes
	}

	return 0
}

// parseDate parses a "YYYY-MM-DD" calendar date in local time. The zero time
// and false are returned when the value is empty or malformed.
func parseDate(dateStr string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsUpcomingAt reports whether a majlis on the given date, at the optional
// time of day, is still ahead of now. An event with a parseable time is
// upcoming strictly until its start instant; one without (or with an
// unrecognized time string) stays upcoming until the end of its calendar day.
// An empty or malformed date is never upcoming.
func IsUpcomingAt(dateStr, timeStr string, now time.Time) bool {
	day, ok := parseDate(dateStr)
	if !ok {
		return false
	}

	var instant time.Time
	if timeStr != "" && (time24Pattern.MatchString(timeStr) || time12Pattern.MatchString(timeStr)) {
		minutes := ParseTimeToMinutes(timeStr)
		instant = day.Add(time.Duration(minutes) * time.Minute)
	} else {
		instant = endOfDay(day)
	}

	return now.Before(instant)
}

// IsUpcoming is IsUpcomingAt against the wall clock.
func IsUpcoming(dateStr, timeStr string) bool {
	return IsUpcomingAt(dateStr, timeStr, time.Now())
}

// UpcomingAt classifies a majlis record. A multi-day majlis stays upcoming
// until the end of its last day; the time of day only sets the cutoff when
// the event is a single day.
func UpcomingAt(m models.Majlis, now time.Time) bool {
	if m.EndDate != "" && m.EndDate > m.StartDate {
		end, ok := parseDate(m.EndDate)
		if ok {
			return now.Before(endOfDay(end))
		}
	}
	return IsUpcomingAt(m.StartDate, m.Time, now)
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
