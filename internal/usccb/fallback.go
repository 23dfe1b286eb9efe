package usccb

import (
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/liturgical"
)

// FallbackReading builds the static reading served when the external source
// is unreachable. Date, weekday, season and color are real for the requested
// date; the passages are fixed defaults.
func FallbackReading(date time.Time) *entities.Reading {
	return &entities.Reading{
		Date:    liturgical.DateKey(date),
		Weekday: date.Weekday().String(),
		Season:  liturgical.Season(date),
		Color:   liturgical.Color(date),
		FirstReading: entities.BibleReading{
			Citation: "Isaiah 40:1-5, 9-11",
			Text:     "Comfort, give comfort to my people, says your God. Speak tenderly to Jerusalem, and proclaim to her that her service is at an end, her guilt is expiated.",
			Book:     "Isaiah",
			Chapter:  40,
			Verses:   "1-5, 9-11",
		},
		Psalm: entities.PsalmReading{
			Citation: "Psalm 85:9-14",
			Number:   85,
			Text:     "I will hear what God proclaims; the LORD - for he proclaims peace. Near indeed is his salvation to those who fear him.",
			Antiphon: "Lord, let us see your kindness, and grant us your salvation.",
		},
		Gospel: entities.BibleReading{
			Citation: "John 1:19-28",
			Text:     `This is the testimony of John. When the Jews from Jerusalem sent priests and Levites to ask him, "Who are you?" he admitted and did not deny it, but admitted, "I am not the Christ."`,
			Book:     "John",
			Chapter:  1,
			Verses:   "19-28",
		},
	}
}
