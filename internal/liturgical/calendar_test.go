package liturgical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-08-28", DateKey(date(2026, time.August, 28)))
	assert.Equal(t, "2026-01-05", DateKey(date(2026, time.January, 5)))
}

func TestMonthDay(t *testing.T) {
	assert.Equal(t, "08-28", MonthDay("2026-08-28"))
	assert.Equal(t, "01-05", MonthDay("2026-01-05"))
	assert.Equal(t, "bad", MonthDay("bad"))
}

func TestSeason(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"christmas day", date(2026, time.December, 25), SeasonChristmas},
		{"early january", date(2026, time.January, 6), SeasonChristmas},
		{"end of christmas window", date(2026, time.January, 9), SeasonChristmas},
		{"after christmas window", date(2026, time.January, 10), SeasonOrdinaryTime},
		{"late march", date(2026, time.March, 25), SeasonLent},
		{"before lent window", date(2026, time.March, 21), SeasonOrdinaryTime},
		{"april", date(2026, time.April, 10), SeasonEaster},
		{"late may within easter", date(2026, time.May, 23), SeasonEaster},
		{"after easter window", date(2026, time.May, 24), SeasonOrdinaryTime},
		{"early december", date(2026, time.December, 10), SeasonAdvent},
		{"midsummer", date(2026, time.July, 15), SeasonOrdinaryTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Season(tt.date))
		})
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, ColorPurple, Color(date(2026, time.December, 10)))
	assert.Equal(t, ColorPurple, Color(date(2026, time.March, 25)))
	assert.Equal(t, ColorWhite, Color(date(2026, time.December, 25)))
	assert.Equal(t, ColorWhite, Color(date(2026, time.April, 10)))
	assert.Equal(t, ColorGreen, Color(date(2026, time.July, 15)))
}

func TestMysteryTypeFor(t *testing.T) {
	tests := []struct {
		day  time.Time
		want entities.MysteryType
	}{
		{date(2026, time.August, 23), entities.MysteryTypeGlorious},  // Sunday
		{date(2026, time.August, 24), entities.MysteryTypeJoyful},    // Monday
		{date(2026, time.August, 25), entities.MysteryTypeSorrowful}, // Tuesday
		{date(2026, time.August, 26), entities.MysteryTypeGlorious},  // Wednesday
		{date(2026, time.August, 27), entities.MysteryTypeLuminous},  // Thursday
		{date(2026, time.August, 28), entities.MysteryTypeSorrowful}, // Friday
		{date(2026, time.August, 29), entities.MysteryTypeJoyful},    // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.day.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MysteryTypeFor(tt.day))
		})
	}
}
