// Package standup reads standup notes documents: one or more days separated
// by --- lines, each with a "Date:" line and an optional attendee list.
package standup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrNoDays is returned when a document holds no dated section.
	ErrNoDays = errors.New("no dated standup entries found")
	// ErrInvalidDate is returned when a day's date cannot be parsed.
	ErrInvalidDate = errors.New("invalid standup date")
)

var (
	separatorRE = regexp.MustCompile(`(?m)^---[ \t]*\r?$`)
	dateRE      = regexp.MustCompile(`(?m)^Date:[ \t]*([^\r\n]+)`)
)

var dateLayouts = []string{"January 2, 2006", "Jan 2, 2006", "2006-01-02", "January 2 2006"}

// Day is one standup meeting.
type Day struct {
	Date    string `json:"date" yaml:"date"`
	Content string `json:"content" yaml:"content"`
}

// SplitDays splits content on --- lines and keeps the sections that carry a
// Date: line, in document order.
func SplitDays(content string) []Day {
	var days []Day
	for _, section := range separatorRE.Split(content, -1) {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		m := dateRE.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		days = append(days, Day{Date: strings.TrimSpace(m[1]), Content: section})
	}
	return days
}

// Attendees returns the names listed after an "Attendees" heading, either on
// the same line ("Attendees: A, B") or on the comma separated lines that
// follow it. A single line without commas is read as one name.
func Attendees(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		label, rest, _ := strings.Cut(line, ":")
		if !strings.EqualFold(strings.TrimSpace(label), "attendees") {
			continue
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			return splitNames(rest)
		}

		var names []string
		for _, next := range lines[i+1:] {
			next = strings.TrimSpace(next)
			if next == "" {
				if len(names) > 0 {
					break
				}
				continue
			}
			if !strings.Contains(next, ",") {
				if len(names) == 0 {
					names = append(names, next)
				}
				break
			}
			names = append(names, splitNames(next)...)
		}
		return names
	}
	return nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		name = strings.TrimPrefix(name, "and ")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseDate parses a standup date such as "January 14, 2025".
func ParseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
}

// FileStem turns a standup date into the YYYYMMDD name used for per-day files.
func FileStem(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("20060102"), nil
}
