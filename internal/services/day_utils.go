package services

import (
	"strings"
	"time"
)

const CalendarDayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WindowRange returns [today-(days-1), start of tomorrow) for a rolling window
// that includes today.
func WindowRange(now time.Time, days int, location *time.Location) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	today := DateAtLocation(now, location)
	return today.AddDate(0, 0, -(days - 1)), today.AddDate(0, 0, 1)
}

// CalendarDayKey formats the civil date of value without converting zones, so
// a midnight-anchored stored date keeps its own day.
func CalendarDayKey(value time.Time) string {
	return value.Format(CalendarDayLayout)
}

func ParseCalendarDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(CalendarDayLayout, strings.TrimSpace(raw), location)
}

// civilDay maps value to midnight UTC of its own calendar date so day
// arithmetic is free of DST shifts.
func civilDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(civilDay(to).Sub(civilDay(from)).Hours() / 24)
}
