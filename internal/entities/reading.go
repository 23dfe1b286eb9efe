package entities

import (
	"time"
)

// BibleReading is one scripture passage within a day's readings.
type BibleReading struct {
	Citation string `gorm:"size:128" json:"citation"`
	Text     string `gorm:"type:text" json:"text"`
	Book     string `gorm:"size:64" json:"book,omitempty"`
	Chapter  int    `json:"chapter,omitempty"`
	Verses   string `gorm:"size:64" json:"verses,omitempty"`
}

// PsalmReading is the responsorial psalm with its antiphon.
type PsalmReading struct {
	Citation string `gorm:"size:128" json:"citation"`
	Number   int    `json:"number,omitempty"`
	Text     string `gorm:"type:text" json:"text"`
	Antiphon string `gorm:"size:512" json:"antiphon,omitempty"`
}

// Reading holds the Mass readings for one calendar date. The date string
// (YYYY-MM-DD) is the primary key: one reading per date. Weekday, season and
// color are derived from the date, not authoritative on their own.
type Reading struct {
	Date    string `gorm:"primaryKey;size:10" json:"date"`
	Weekday string `gorm:"size:10" json:"weekday"`
	Season  string `gorm:"index;size:20" json:"season"`
	Color   string `gorm:"size:10" json:"color"`

	FirstReading BibleReading `gorm:"embedded;embeddedPrefix:first_" json:"first_reading"`
	Psalm        PsalmReading `gorm:"embedded;embeddedPrefix:psalm_" json:"psalm"`
	Gospel       BibleReading `gorm:"embedded;embeddedPrefix:gospel_" json:"gospel"`

	Saint string `gorm:"size:128" json:"saint,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reading) TableName() string {
	return "readings"
}
