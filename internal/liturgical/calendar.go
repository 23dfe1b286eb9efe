// Package liturgical derives calendar attributes (season, color, weekday,
// rosary mystery type) from a date.
//
// The season windows are a fixed-date approximation: Easter moves every year
// and a real lectionary computation is out of scope, so Lent/Easter use the
// same fixed windows the bundled dataset was built around. Outside every
// window the season is Ordinary Time.
package liturgical

import (
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Liturgical seasons.
const (
	SeasonAdvent       = "Advent"
	SeasonChristmas    = "Christmas"
	SeasonLent         = "Lent"
	SeasonEaster       = "Easter"
	SeasonOrdinaryTime = "Ordinary Time"
)

// Liturgical colors.
const (
	ColorPurple = "purple"
	ColorWhite  = "white"
	ColorGreen  = "green"
)

// DateKey formats a date as the YYYY-MM-DD key used throughout the store.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthDay reduces a YYYY-MM-DD date key to its year-independent MM-DD part.
func MonthDay(dateKey string) string {
	if len(dateKey) < 10 {
		return dateKey
	}
	return dateKey[5:10]
}

// Season returns the liturgical season for a date via fixed-date windows.
func Season(t time.Time) string {
	month := int(t.Month())
	day := t.Day()

	switch {
	case (month == 12 && day >= 25) || (month == 1 && day <= 9):
		return SeasonChristmas
	case month == 3 && day >= 22:
		return SeasonLent
	case month == 4 || (month == 5 && day <= 23):
		return SeasonEaster
	case month == 12:
		return SeasonAdvent
	default:
		return SeasonOrdinaryTime
	}
}

// Color returns the vestment color associated with the date's season.
func Color(t time.Time) string {
	switch Season(t) {
	case SeasonAdvent, SeasonLent:
		return ColorPurple
	case SeasonChristmas, SeasonEaster:
		return ColorWhite
	default:
		return ColorGreen
	}
}

// mysteryByWeekday maps Sunday..Saturday to the mystery type traditionally
// prayed on that day.
var mysteryByWeekday = [7]entities.MysteryType{
	entities.MysteryTypeGlorious,  // Sunday
	entities.MysteryTypeJoyful,    // Monday
	entities.MysteryTypeSorrowful, // Tuesday
	entities.MysteryTypeGlorious,  // Wednesday
	entities.MysteryTypeLuminous,  // Thursday
	entities.MysteryTypeSorrowful, // Friday
	entities.MysteryTypeJoyful,    // Saturday
}

// MysteryTypeFor returns the rosary mystery type for a date's weekday.
func MysteryTypeFor(t time.Time) entities.MysteryType {
	return mysteryByWeekday[int(t.Weekday())]
}
