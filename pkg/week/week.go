// Package week computes the Monday-anchored ISO week used to scope weekly goals,
// rankings and reviews.
package week

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a reference date is missing or cannot be parsed.
var ErrInvalidDate = errors.New("week: invalid date")

// DateLayout is the calendar-date format used for week_start / week_end columns.
const DateLayout = "2006-01-02"

// Info describes one Monday..Sunday week. WeekEnd is the last instant of Sunday.
type Info struct {
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	WeekNumber int       `json:"week_number"`
	Year       int       `json:"year"`
}

// StartDate returns WeekStart as YYYY-MM-DD.
func (i Info) StartDate() string {
	return i.WeekStart.Format(DateLayout)
}

// EndDate returns WeekEnd as YYYY-MM-DD.
func (i Info) EndDate() string {
	return i.WeekEnd.Format(DateLayout)
}

// Contains reports whether t falls on one of the seven days of the week.
func (i Info) Contains(t time.Time) bool {
	t = t.In(i.WeekStart.Location())
	next := i.WeekStart.AddDate(0, 0, 7)
	return !t.Before(i.WeekStart) && t.Before(next)
}

// Label renders the week range for display.
func (i Info) Label() string {
	return FormatRange(i.WeekStart, i.WeekEnd)
}

// Containing returns the week containing t, evaluated in t's own location.
func Containing(t time.Time) (Info, error) {
	if t.IsZero() {
		return Info{}, ErrInvalidDate
	}

	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	// time.Weekday is Sunday=0; shift so Monday=0.
	offset := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)

	_, isoWeek := start.ISOWeek()

	return Info{
		WeekStart:  start,
		WeekEnd:    end,
		WeekNumber: isoWeek,
		Year:       start.Year(),
	}, nil
}

// ParseDate accepts YYYY-MM-DD (interpreted in loc) or an RFC 3339 timestamp.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, ErrInvalidDate
}

// Calculator binds week computations to a location and a clock.
type Calculator struct {
	loc *time.Location
	now func() time.Time
}

// NewCalculator returns a Calculator for loc. A nil now uses time.Now.
func NewCalculator(loc *time.Location, now func() time.Time) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Calculator{loc: loc, now: now}
}

// Now returns the current instant in the calculator's location.
func (c *Calculator) Now() time.Time {
	return c.now().In(c.loc)
}

// Containing returns the week containing t after converting it to the calculator's location.
func (c *Calculator) Containing(t time.Time) (Info, error) {
	if t.IsZero() {
		return Info{}, ErrInvalidDate
	}
	return Containing(t.In(c.loc))
}

// Current returns the week containing now.
func (c *Calculator) Current() Info {
	info, _ := c.Containing(c.Now())
	return info
}

// Next returns the week after the current one.
func (c *Calculator) Next() Info {
	info, _ := c.Containing(c.Current().WeekStart.AddDate(0, 0, 7))
	return info
}

// ForDate resolves an optional date string. Empty input means the current week.
func (c *Calculator) ForDate(s string) (Info, error) {
	if strings.TrimSpace(s) == "" {
		return c.Current(), nil
	}
	t, err := ParseDate(s, c.loc)
	if err != nil {
		return Info{}, err
	}
	return c.Containing(t)
}
