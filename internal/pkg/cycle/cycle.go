package cycle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cycle is the organization's pay period: the 21st of one calendar month
// through the 20th of the next, labeled by the later month's name and year
// ("January 2026" covers Dec 21 2025 .. Jan 20 2026 inclusive).
type Cycle struct {
	Label string
	Start time.Time
	End   time.Time
}

const dateLayout = "2006-01-02"

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseLabel extracts the month and year from a "<MonthName> <Year>" label.
func ParseLabel(label string) (time.Month, int, bool) {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) != 2 {
		return 0, 0, false
	}
	month, ok := monthsByName[strings.ToLower(fields[0])]
	if !ok {
		return 0, 0, false
	}
	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return 0, 0, false
	}
	return month, year, true
}

// atNoon pins a calendar date to 12:00 local time. Comparing noon-anchored
// instants keeps date-only checks immune to timezone and DST shifts.
func atNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// For builds the pay cycle a label names. An empty or unparseable label
// yields a degenerate zero-length window anchored at the current instant,
// so membership checks simply match nothing rather than failing.
func For(label string) Cycle {
	month, year, ok := ParseLabel(label)
	if !ok {
		now := time.Now()
		return Cycle{Label: label, Start: now, End: now}
	}

	end := atNoon(year, month, 20)

	startMonth := month - 1
	startYear := year
	if month == time.January {
		startMonth = time.December
		startYear = year - 1
	}
	start := atNoon(startYear, startMonth, 21)

	return Cycle{Label: label, Start: start, End: end}
}

// LabelAt returns the label of the cycle containing t: days 1-20 belong to
// the current month's cycle, the 21st onward to the next month's.
func LabelAt(t time.Time) string {
	year, month, day := t.Date()
	if day >= 21 {
		if month == time.December {
			month = time.January
			year++
		} else {
			month++
		}
	}
	return fmt.Sprintf("%s %d", month.String(), year)
}

// Includes reports whether dateStr ("YYYY-MM-DD") falls inside the cycle,
// inclusive on both ends. Unparseable dates never match.
func (c Cycle) Includes(dateStr string) bool {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		return false
	}
	return c.Contains(d)
}

// Contains is the time.Time form of Includes; only the calendar date of t
// is significant.
func (c Cycle) Contains(t time.Time) bool {
	d := atNoon(t.Date())
	return !d.Before(c.Start) && !d.After(c.End)
}

// Days enumerates every calendar day of the cycle as "YYYY-MM-DD" strings.
func (c Cycle) Days() []string {
	return EnumerateDays(c.Start, c.End)
}

// CalendarMonth is the plain [1st, last-day] window for a label, used for
// calendar-style reports that ignore the 21st-to-20th cycle. The zero-day
// trick handles variable month lengths and leap years.
func CalendarMonth(label string) (start, end time.Time, ok bool) {
	month, year, ok := ParseLabel(label)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start = atNoon(year, month, 1)
	end = atNoon(year, month+1, 0)
	return start, end, true
}

// EnumerateDays lists every calendar day from start to end inclusive. Days
// are stepped with the local calendar rather than epoch arithmetic so the
// sequence never skips or repeats a day across DST boundaries. Each call
// returns a fresh slice; iterating twice is always safe.
func EnumerateDays(start, end time.Time) []string {
	first := atNoon(start.Date())
	last := atNoon(end.Date())

	var days []string
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		year, month, day := d.Date()
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
	}
	return days
}
