// Package extraction holds the pure field-normalization and
// validation logic applied to AI model output before any guest record
// is created. Everything here is side-effect free and never panics;
// the empty string is the sentinel for "could not normalize".
package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order for absolute date inputs.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"02 Jan 2006",
}

var timePattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{0,2})\s*(am|pm)?`)

// NormalizeDate turns a loosely-formatted date string into YYYY-MM-DD.
// Absolute dates are parsed against the known layouts; failing that,
// the literals "today" and "tomorrow" (case-insensitive, substring
// match) resolve against the host-local calendar. Anything else
// yields "".
func NormalizeDate(input string) string {
	return normalizeDateAt(input, time.Now())
}

func normalizeDateAt(input string, now time.Time) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "today") {
		return now.Format("2006-01-02")
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	return ""
}

// NormalizeTime turns a loosely-formatted time string into 24-hour
// "HH:MM". Minutes default to 0, am/pm markers are converted, and
// anything outside hour [0,23] / minute [0,59] yields "".
func NormalizeTime(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return ""
		}
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
