package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// defaultHour is used when a date is given without a time of day
const defaultHour = 9

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2}))?$`)
	dayWordRegex  = regexp.MustCompile(`^(today|tomorrow)(?:\s+(?:at\s+)?(\d{1,2}):(\d{2}))?$`)
	relativeRegex = regexp.MustCompile(`^(?:in\s+)?(\d+)\s*(min|mins|minute|minutes|hour|hours|day|days|week|weeks)$`)
)

// ParseSchedule parses when a follow-up should happen, relative to now.
// Supported formats:
// - dd/mm/yyyy, optionally followed by HH:MM (e.g. "15/12/2026 14:30")
// - yyyy-mm-ddTHH:MM (datetime-local form value)
// - today HH:MM, tomorrow, tomorrow HH:MM
// - X minutes/hours/days/weeks, optionally prefixed with "in"
func ParseSchedule(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("schedule is empty")
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", input, now.Location()); err == nil {
		return t, nil
	}

	input = strings.ToLower(input)
	if t, ok, err := parseDate(input, now); ok {
		return t, err
	}
	if t, ok, err := parseDayWord(input, now); ok {
		return t, err
	}
	if t, ok, err := parseRelative(input, now); ok {
		return t, err
	}

	return time.Time{}, fmt.Errorf("invalid schedule. Use: dd/mm/yyyy [HH:MM], today HH:MM, tomorrow [HH:MM], or in X minutes/hours/days/weeks")
}

// parseDate parses dd/mm/yyyy [HH:MM]
func parseDate(input string, now time.Time) (time.Time, bool, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, false, nil
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, true, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, true, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, true, fmt.Errorf("year must be between 2000 and 2100")
	}

	hour, minute := defaultHour, 0
	if matches[4] != "" {
		var err error
		if hour, minute, err = parseClock(matches[4], matches[5]); err != nil {
			return time.Time{}, true, err
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
	// Rejects dates like 31/02 that time.Date normalizes into the next month
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, true, fmt.Errorf("invalid date")
	}
	return t, true, nil
}

// parseDayWord parses today/tomorrow with an optional time of day
func parseDayWord(input string, now time.Time) (time.Time, bool, error) {
	matches := dayWordRegex.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, false, nil
	}

	hour, minute := defaultHour, 0
	if matches[2] != "" {
		var err error
		if hour, minute, err = parseClock(matches[2], matches[3]); err != nil {
			return time.Time{}, true, err
		}
	} else if matches[1] == "today" {
		return time.Time{}, true, fmt.Errorf("today needs a time, e.g. today 14:30")
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if matches[1] == "tomorrow" {
		day = day.AddDate(0, 0, 1)
	}
	return day, true, nil
}

// parseRelative parses "X unit" or "in X unit"
func parseRelative(input string, now time.Time) (time.Time, bool, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, false, nil
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return time.Time{}, true, fmt.Errorf("amount must be a positive number")
	}

	switch matches[2] {
	case "min", "mins", "minute", "minutes":
		if amount > 60*24*365 {
			return time.Time{}, true, fmt.Errorf("minutes must be at most one year")
		}
		return now.Add(time.Duration(amount) * time.Minute), true, nil
	case "hour", "hours":
		if amount > 8760 { // Max 1 year in hours
			return time.Time{}, true, fmt.Errorf("hours must be between 1 and 8760")
		}
		return now.Add(time.Duration(amount) * time.Hour), true, nil
	case "day", "days":
		if amount > 365 {
			return time.Time{}, true, fmt.Errorf("days must be between 1 and 365")
		}
		return now.AddDate(0, 0, amount), true, nil
	default:
		if amount > 52 {
			return time.Time{}, true, fmt.Errorf("weeks must be between 1 and 52")
		}
		return now.AddDate(0, 0, amount*7), true, nil
	}
}

func parseClock(h, m string) (int, int, error) {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("time must be between 00:00 and 23:59")
	}
	return hour, minute, nil
}
