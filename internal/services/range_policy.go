package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrStartDateInvalid = errors.New("invalid start_date")
	ErrEndDateInvalid   = errors.New("invalid end_date")
)

// ParseDateRangeQuery reads optional YYYY-MM-DD bounds. Blank values come back
// nil so ResolveSummaryRange can apply its defaults.
func ParseDateRangeQuery(rawStart string, rawEnd string, location *time.Location) (*time.Time, *time.Time, error) {
	start, err := parseOptionalDay(rawStart, location)
	if err != nil {
		return nil, nil, ErrStartDateInvalid
	}
	end, err := parseOptionalDay(rawEnd, location)
	if err != nil {
		return nil, nil, ErrEndDateInvalid
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, ErrInvalidDateRange
	}
	return start, end, nil
}

func parseOptionalDay(raw string, location *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := ParseCalendarDay(raw, location)
	if err != nil {
		return nil, err
	}
	day := DateAtLocation(parsed, location)
	return &day, nil
}
