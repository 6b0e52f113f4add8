package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DeadlineLayout is the Go layout for the stored dd/MM/yyyy deadline text.
const DeadlineLayout = "02/01/2006"

// ParseDeadline parses stored deadline text.
// The text is split on "/" and read as day, month, year in that order.
// Each part must be unsigned digits, the year within 1..9999, and the
// whole must form a real calendar date.
func ParseDeadline(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, text)
	}

	day, err := deadlinePart(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad day in %q", ErrInvalidDeadline, text)
	}
	month, err := deadlinePart(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad month in %q", ErrInvalidDeadline, text)
	}
	year, err := deadlinePart(parts[2])
	if err != nil || year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: bad year in %q", ErrInvalidDeadline, text)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalises overflow (31/02 -> 03/03), so compare back
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDeadline, text)
	}
	return date, nil
}

// NormalizeDeadline parses text and returns it in the stored dd/MM/yyyy form.
func NormalizeDeadline(text string) (string, error) {
	date, err := ParseDeadline(text)
	if err != nil {
		return "", err
	}
	return FormatDeadline(date), nil
}

// deadlinePart reads one unsigned decimal component.
func deadlinePart(s string) (int, error) {
	if s == "" || len(s) > 4 {
		return 0, errors.New("bad length")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// FormatDeadline renders a date as stored deadline text.
func FormatDeadline(date time.Time) string {
	return date.Format(DeadlineLayout)
}

// DefaultDeadline returns the deadline offered for a new task: tomorrow.
func DefaultDeadline(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}
