package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock offset from local midnight, in the range
// [0, 24h).
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from hour, minute and second components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, NewValidationError("time of day", fmt.Sprintf("%02d:%02d:%02d out of range", hour, minute, second))
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	return TimeOfDay(d), nil
}

// MustTimeOfDay is NewTimeOfDay for constants; it panics on invalid input.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, 0)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay accepts "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return 0, NewValidationError("time of day", fmt.Sprintf("%q is not HH:MM or HH:MM:SS", s))
}

// Clock returns the hour, minute and second of t.
func (t TimeOfDay) Clock() (hour, minute, second int) {
	d := time.Duration(t)
	hour = int(d / time.Hour)
	minute = int(d % time.Hour / time.Minute)
	second = int(d % time.Minute / time.Second)
	return
}

func (t TimeOfDay) String() string {
	h, m, s := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// MarshalText encodes t as HH:MM:SS.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes HH:MM or HH:MM:SS.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// on places t on the given local calendar date. Wall times that do not
// exist because of a DST gap are normalised forward by time.Date.
func (t TimeOfDay) on(year int, month time.Month, day int, loc *time.Location) time.Time {
	h, m, s := t.Clock()
	return time.Date(year, month, day, h, m, s, 0, loc)
}

// Calendar projects instants into a brand's IANA time zone. Every
// timezone-dependent computation (budget windows and dayparting) goes
// through it.
type Calendar struct {
	loc *time.Location
}

// NewCalendar loads the named IANA zone.
func NewCalendar(timezone string) (Calendar, error) {
	if strings.TrimSpace(timezone) == "" {
		return Calendar{}, NewValidationError("timezone", "must not be empty")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Calendar{}, NewValidationError("timezone", fmt.Sprintf("unknown zone %q", timezone))
	}
	return Calendar{loc: loc}, nil
}

// Location returns the calendar's zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Local returns t in the calendar's zone.
func (c Calendar) Local(t time.Time) time.Time {
	return t.In(c.Location())
}

// DayWindow returns [local midnight, next local midnight) for the local
// date of t. The window is 23 or 25 hours long on DST transition days.
func (c Calendar) DayWindow(t time.Time) (start, end time.Time) {
	y, m, d := c.Local(t).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, c.Location())
	end = time.Date(y, m, d+1, 0, 0, 0, 0, c.Location())
	return start, end
}

// MonthWindow returns [first of the local month, first of the next local
// month) for the local date of t.
func (c Calendar) MonthWindow(t time.Time) (start, end time.Time) {
	y, m, _ := c.Local(t).Date()
	start = time.Date(y, m, 1, 0, 0, 0, 0, c.Location())
	end = time.Date(y, m+1, 1, 0, 0, 0, 0, c.Location())
	return start, end
}

// DaypartWindow returns the allowed window for d placed on the local date of
// t. When the window crosses midnight the end moves to the next local day.
func (c Calendar) DaypartWindow(t time.Time, d Daypart) (start, end time.Time) {
	y, m, day := c.Local(t).Date()
	return c.daypartOn(y, m, day, d)
}

func (c Calendar) daypartOn(y int, m time.Month, day int, d Daypart) (start, end time.Time) {
	start = d.Start.on(y, m, day, c.Location())
	end = d.End.on(y, m, day, c.Location())
	if start.After(end) {
		end = d.End.on(y, m, day+1, c.Location())
	}
	return start, end
}

// InDaypart reports whether t falls inside [start, end) of the allowed
// window. For windows crossing midnight the window that opened on the
// previous local day is checked too, so 00:30 is inside 22:00-02:00.
func (c Calendar) InDaypart(t time.Time, d Daypart) bool {
	local := c.Local(t)
	y, m, day := local.Date()

	start, end := c.daypartOn(y, m, day, d)
	if !local.Before(start) && local.Before(end) {
		return true
	}
	if !d.CrossesMidnight() {
		return false
	}
	start, end = c.daypartOn(y, m, day-1, d)
	return !local.Before(start) && local.Before(end)
}
