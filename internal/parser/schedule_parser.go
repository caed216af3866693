package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex  = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dmyDateRegex  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(day|days|d|week|weeks|w)$`)
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// ParseSessionDate parses the day of a coaching session.
// Supported formats:
// - "" (defaults to tomorrow), "today", "tomorrow"
// - yyyy-mm-dd (e.g., "2026-03-14")
// - dd/mm/yyyy (e.g., "14/03/2026")
// - X days / X weeks (e.g., "3 days", "2w")
// The result is midnight of that day in now's location. Past days are rejected.
func ParseSessionDate(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var day time.Time
	var err error

	switch input {
	case "", "tomorrow":
		day = today.AddDate(0, 0, 1)
	case "today":
		day = today
	default:
		day, err = parseCalendarDate(input, now.Location())
		if err != nil {
			day, err = parseRelativeDays(input, today)
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days or X weeks", input)
		}
	}

	if day.Before(today) {
		return time.Time{}, fmt.Errorf("date %s is in the past", day.Format("2006-01-02"))
	}
	return day, nil
}

// parseCalendarDate parses yyyy-mm-dd and dd/mm/yyyy
func parseCalendarDate(input string, loc *time.Location) (time.Time, error) {
	var year, month, day int

	if m := isoDateRegex.FindStringSubmatch(input); len(m) == 4 {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := dmyDateRegex.FindStringSubmatch(input); len(m) == 4 {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return date, nil
}

// parseRelativeDays parses "3 days", "1 week", "2w"
func parseRelativeDays(input string, today time.Time) (time.Time, error) {
	m := relativeRegex.FindStringSubmatch(input)
	if len(m) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch m[2] {
	case "day", "days", "d":
		if amount > 365 {
			return time.Time{}, fmt.Errorf("days must be at most 365")
		}
		return today.AddDate(0, 0, amount), nil
	default:
		if amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be at most 52")
		}
		return today.AddDate(0, 0, amount*7), nil
	}
}

// ParseSessionTime parses a time of day as hh:mm or hh:mm:ss.
// An empty input takes the current time of day, to the second.
func ParseSessionTime(input string, now time.Time) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		h, m, s := now.Clock()
		return clockOffset(h, m, s), nil
	}

	match := clockRegex.FindStringSubmatch(input)
	if len(match) != 4 {
		return 0, fmt.Errorf("invalid time %q. Use: hh:mm or hh:mm:ss", input)
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	second := 0
	if match[3] != "" {
		second, _ = strconv.Atoi(match[3])
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, fmt.Errorf("invalid time %q", input)
	}
	return clockOffset(hour, minute, second), nil
}

// ParseSchedule combines a session date and time into one instant
func ParseSchedule(dateInput, timeInput string, now time.Time) (time.Time, error) {
	day, err := ParseSessionDate(dateInput, now)
	if err != nil {
		return time.Time{}, err
	}
	offset, err := ParseSessionTime(timeInput, now)
	if err != nil {
		return time.Time{}, err
	}
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	s := int(offset % time.Minute / time.Second)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, day.Location()), nil
}

func clockOffset(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
