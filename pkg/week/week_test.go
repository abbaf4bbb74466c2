package week_test

import (
	"testing"
	"time"

	"goals-project-backend/pkg/week"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestContainingReferenceVectors(t *testing.T) {
	cases := []struct {
		name       string
		in         time.Time
		start, end string
		weekNumber int
		year       int
	}{
		{"new year wednesday", date(2025, time.January, 1), "2024-12-30", "2025-01-05", 1, 2024},
		{"new year thursday", date(2026, time.January, 1), "2025-12-29", "2026-01-04", 1, 2025},
		{"53 week year", date(2026, time.December, 31), "2026-12-28", "2027-01-03", 53, 2026},
		{"new year friday belongs to previous iso year", date(2021, time.January, 1), "2020-12-28", "2021-01-03", 53, 2020},
		{"leap day", date(2024, time.February, 29), "2024-02-26", "2024-03-03", 9, 2024},
		{"sunday closes the week", date(2024, time.December, 29), "2024-12-23", "2024-12-29", 52, 2024},
		{"monday opens the week", date(2024, time.December, 30), "2024-12-30", "2025-01-05", 1, 2024},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := week.Containing(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.start, info.StartDate())
			assert.Equal(t, tc.end, info.EndDate())
			assert.Equal(t, tc.weekNumber, info.WeekNumber)
			assert.Equal(t, tc.year, info.Year)
		})
	}
}

func TestContainingProperties(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	for d := time.Date(2019, time.January, 1, 9, 30, 0, 0, loc); d.Year() < 2032; d = d.AddDate(0, 0, 1) {
		info, err := week.Containing(d)
		require.NoError(t, err)

		if info.WeekStart.Weekday() != time.Monday {
			t.Fatalf("%s: week start %s is not a Monday", d, info.WeekStart)
		}
		if h, m, s := info.WeekStart.Clock(); h != 0 || m != 0 || s != 0 {
			t.Fatalf("%s: week start %s is not midnight", d, info.WeekStart)
		}
		if info.EndDate() != info.WeekStart.AddDate(0, 0, 6).Format(week.DateLayout) {
			t.Fatalf("%s: week end %s is not six days after %s", d, info.EndDate(), info.StartDate())
		}
		if d.Before(info.WeekStart) || d.After(info.WeekEnd) || !info.Contains(d) {
			t.Fatalf("%s: not contained in %s..%s", d, info.StartDate(), info.EndDate())
		}
		if _, isoWeek := d.ISOWeek(); isoWeek != info.WeekNumber {
			t.Fatalf("%s: week number %d, iso %d", d, info.WeekNumber, isoWeek)
		}

		again, err := week.Containing(info.WeekStart)
		require.NoError(t, err)
		if !again.WeekStart.Equal(info.WeekStart) || again.WeekNumber != info.WeekNumber || again.Year != info.Year {
			t.Fatalf("%s: not idempotent: %+v vs %+v", d, again, info)
		}
	}
}

func TestContainingAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// Clocks move forward on Sunday 2025-03-30.
	info, err := week.Containing(time.Date(2025, time.March, 30, 23, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-24", info.StartDate())
	assert.Equal(t, "2025-03-30", info.EndDate())
	assert.True(t, info.Contains(time.Date(2025, time.March, 30, 23, 59, 0, 0, loc)))
	assert.False(t, info.Contains(time.Date(2025, time.March, 31, 0, 0, 0, 0, loc)))
	assert.False(t, time.Date(2025, time.March, 30, 23, 59, 59, 0, loc).After(info.WeekEnd))
	assert.True(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, loc).After(info.WeekEnd))
}

func TestWeekEndCoversAllOfSunday(t *testing.T) {
	sunday := time.Date(2025, time.January, 5, 15, 0, 0, 0, time.UTC)
	info, err := week.Containing(sunday)
	require.NoError(t, err)

	assert.Equal(t, "2024-12-30", info.StartDate())
	assert.Equal(t, "2025-01-05", info.EndDate())
	assert.False(t, sunday.After(info.WeekEnd))
	assert.True(t, info.WeekEnd.Equal(time.Date(2025, time.January, 5, 23, 59, 59, 999999999, time.UTC)))
	assert.Equal(t, "30 dic - 5 ene 2025", info.Label())
}

func TestContainingRejectsZeroTime(t *testing.T) {
	_, err := week.Containing(time.Time{})
	assert.ErrorIs(t, err, week.ErrInvalidDate)
}

func TestParseDate(t *testing.T) {
	loc := time.UTC

	got, err := week.ParseDate("2025-01-01", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), got)

	got, err = week.ParseDate("2025-01-01T23:30:00+02:00", loc)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got.Format(week.DateLayout))

	for _, bad := range []string{"", "   ", "2025-13-01", "yesterday", "01/02/2025"} {
		_, err := week.ParseDate(bad, loc)
		assert.ErrorIs(t, err, week.ErrInvalidDate, "input %q", bad)
	}
}

func TestCalculator(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	// 2025-01-05 02:00 UTC is still Saturday evening in Mexico City.
	now := func() time.Time { return time.Date(2025, time.January, 5, 2, 0, 0, 0, time.UTC) }
	calc := week.NewCalculator(loc, now)

	current := calc.Current()
	assert.Equal(t, "2024-12-30", current.StartDate())
	assert.Equal(t, loc, current.WeekStart.Location())

	next := calc.Next()
	assert.Equal(t, "2025-01-06", next.StartDate())
	assert.Equal(t, "2025-01-12", next.EndDate())
	assert.Equal(t, 2, next.WeekNumber)
	assert.Equal(t, 2025, next.Year)

	info, err := calc.ForDate("")
	require.NoError(t, err)
	assert.Equal(t, current, info)

	info, err = calc.ForDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13", info.StartDate())

	_, err = calc.ForDate("not-a-date")
	assert.ErrorIs(t, err, week.ErrInvalidDate)
}

func TestFormatting(t *testing.T) {
	info, err := week.Containing(date(2025, time.January, 1))
	require.NoError(t, err)

	assert.Equal(t, "30 dic - 5 ene 2025", info.Label())
	assert.Equal(t, info.Label(), week.FormatRange(info.WeekStart, info.WeekEnd))
	assert.Equal(t, "1 de enero, 2025", week.FormatDate(date(2025, time.January, 1)))
	assert.Equal(t, "9 jun - 15 jun 2025", week.FormatRange(date(2025, time.June, 9), date(2025, time.June, 15)))
}
