package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_JanuaryRollsBackToDecember(t *testing.T) {
	c := For("January 2026")

	assert.Equal(t, 2025, c.Start.Year())
	assert.Equal(t, time.December, c.Start.Month())
	assert.Equal(t, 21, c.Start.Day())

	assert.Equal(t, 2026, c.End.Year())
	assert.Equal(t, time.January, c.End.Month())
	assert.Equal(t, 20, c.End.Day())
}

func TestFor_MidYearWindow(t *testing.T) {
	c := For("July 2025")

	assert.Equal(t, time.June, c.Start.Month())
	assert.Equal(t, 21, c.Start.Day())
	assert.Equal(t, time.July, c.End.Month())
	assert.Equal(t, 20, c.End.Day())
}

func TestIncludes_Boundaries(t *testing.T) {
	c := For("January 2026")

	cases := []struct {
		date string
		want bool
	}{
		{"2025-12-20", false},
		{"2025-12-21", true},
		{"2025-12-31", true},
		{"2026-01-01", true},
		{"2026-01-20", true},
		{"2026-01-21", false},
		{"2026-02-05", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Includes(tc.date), "Includes(%q)", tc.date)
	}
}

func TestIncludes_TimeOfDayInsensitive(t *testing.T) {
	c := For("March 2025")

	// Any instant on an in-window date must count, midnight included.
	for _, clock := range []int{0, 1, 11, 12, 23} {
		d := time.Date(2025, time.February, 21, clock, 30, 0, 0, time.Local)
		assert.True(t, c.Contains(d), "hour %d", clock)
	}
}

func TestFor_BadLabelIsDegenerate(t *testing.T) {
	for _, label := range []string{"", "Sometime 2026", "January", "January two"} {
		c := For(label)
		assert.Equal(t, c.Start, c.End, "label %q", label)
		assert.False(t, c.Includes("2026-01-05"), "label %q", label)
	}
}

func TestLabelAt(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-01-05", "January 2026"},
		{"2026-01-20", "January 2026"},
		{"2026-01-21", "February 2026"},
		{"2025-12-21", "January 2026"},
		{"2025-12-20", "December 2025"},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, LabelAt(d), "LabelAt(%s)", tc.date)
	}
}

func TestCalendarMonth(t *testing.T) {
	start, end, ok := CalendarMonth("February 2024")
	require.True(t, ok)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 29, end.Day()) // leap year

	_, end, ok = CalendarMonth("February 2025")
	require.True(t, ok)
	assert.Equal(t, 28, end.Day())

	_, _, ok = CalendarMonth("nonsense")
	assert.False(t, ok)
}

func TestEnumerateDays(t *testing.T) {
	start := time.Date(2026, time.February, 26, 12, 0, 0, 0, time.Local)
	end := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

	days := EnumerateDays(start, end)
	require.Len(t, days, 5)
	assert.Equal(t, "2026-02-26", days[0])
	assert.Equal(t, "2026-02-28", days[2])
	assert.Equal(t, "2026-03-01", days[3])
	assert.Equal(t, "2026-03-02", days[4])

	// Restartable: a second enumeration yields the identical sequence.
	assert.Equal(t, days, EnumerateDays(start, end))
}

func TestEnumerateDays_WholeCycleLength(t *testing.T) {
	c := For("January 2026")
	days := c.Days()

	require.NotEmpty(t, days)
	assert.Equal(t, "2025-12-21", days[0])
	assert.Equal(t, "2026-01-20", days[len(days)-1])
	assert.Len(t, days, 31) // Dec 21..31 is 11 days, Jan 1..20 is 20
}
