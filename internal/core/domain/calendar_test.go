package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCalendar(t *testing.T, tz string) Calendar {
	t.Helper()
	cal, err := NewCalendar(tz)
	require.NoError(t, err)
	return cal
}

func TestNewCalendarRejectsUnknownZone(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = NewCalendar("")
	assert.True(t, IsValidation(err))
}

func TestDayWindowUsesLocalDate(t *testing.T) {
	cal := mustCalendar(t, "America/Edmonton")

	// 2024-03-05 03:00 UTC is still 2024-03-04 20:00 in Edmonton (MST, UTC-7).
	asOf := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)
	start, end := cal.DayWindow(asOf)

	assert.Equal(t, time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC), end.UTC())
}

func TestDayWindowOnDSTChange(t *testing.T) {
	cal := mustCalendar(t, "America/Edmonton")

	// Clocks spring forward on 2024-03-10, so the local day is 23 hours.
	start, end := cal.DayWindow(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, 23*time.Hour, end.Sub(start))

	// And fall back on 2024-11-03: 25 hours.
	start, end = cal.DayWindow(time.Date(2024, 11, 3, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, 25*time.Hour, end.Sub(start))
}

func TestMonthWindow(t *testing.T) {
	cal := mustCalendar(t, "Asia/Tokyo")

	// 2024-01-31 20:00 UTC is already February 1st in Tokyo.
	start, end := cal.MonthWindow(time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, cal.Location()), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, cal.Location()), end)

	start, end = cal.MonthWindow(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, cal.Location()), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, cal.Location()), end)
}

func TestInDaypart(t *testing.T) {
	cal := mustCalendar(t, "America/Edmonton")
	at := func(hour, minute int) time.Time {
		return time.Date(2024, 6, 12, hour, minute, 0, 0, cal.Location())
	}

	tests := []struct {
		name    string
		daypart Daypart
		now     time.Time
		want    bool
	}{
		{"inside business hours", Daypart{MustTimeOfDay(8, 0), MustTimeOfDay(20, 0)}, at(10, 0), true},
		{"start is inclusive", Daypart{MustTimeOfDay(8, 0), MustTimeOfDay(20, 0)}, at(8, 0), true},
		{"end is exclusive", Daypart{MustTimeOfDay(8, 0), MustTimeOfDay(20, 0)}, at(20, 0), false},
		{"before window", Daypart{MustTimeOfDay(8, 0), MustTimeOfDay(20, 0)}, at(7, 59), false},
		{"after short night window", Daypart{MustTimeOfDay(0, 0), MustTimeOfDay(1, 0)}, at(10, 0), false},
		{"crossing midnight, evening part", Daypart{MustTimeOfDay(22, 0), MustTimeOfDay(2, 0)}, at(23, 30), true},
		{"crossing midnight, morning part", Daypart{MustTimeOfDay(22, 0), MustTimeOfDay(2, 0)}, at(0, 30), true},
		{"crossing midnight, outside", Daypart{MustTimeOfDay(22, 0), MustTimeOfDay(2, 0)}, at(12, 0), false},
		{"crossing midnight, end exclusive", Daypart{MustTimeOfDay(22, 0), MustTimeOfDay(2, 0)}, at(2, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.InDaypart(tt.now.UTC(), tt.daypart))
		})
	}
}

func TestDaypartWindowCrossingMidnight(t *testing.T) {
	cal := mustCalendar(t, "UTC")
	now := time.Date(2024, 6, 12, 23, 0, 0, 0, time.UTC)

	start, end := cal.DaypartWindow(now, Daypart{MustTimeOfDay(22, 0), MustTimeOfDay(2, 0)})
	assert.Equal(t, time.Date(2024, 6, 12, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 13, 2, 0, 0, 0, time.UTC), end)
}

func TestParseTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", v.String())

	v, err = ParseTimeOfDay("23:59:59")
	require.NoError(t, err)
	h, m, s := v.Clock()
	assert.Equal(t, []int{23, 59, 59}, []int{h, m, s})

	_, err = ParseTimeOfDay("25:00")
	assert.True(t, IsValidation(err))
}
