package entities

import (
	"time"
)

type PrayerLength string

const (
	PrayerLengthShort  PrayerLength = "short"
	PrayerLengthMedium PrayerLength = "medium"
	PrayerLengthLong   PrayerLength = "long"
)

// Prayer is a single devotional text. Seeded prayers use stable slug ids
// ("our-father"); user-added prayers get generated "custom-" ids. The id is
// immutable once created; favorite, times_prayed and updated_at are the only
// fields mutated in normal use.
type Prayer struct {
	ID          string       `gorm:"primaryKey;size:64" json:"id"`
	Title       string       `gorm:"size:256" json:"title"`
	Text        string       `gorm:"type:text" json:"text"`
	Description string       `gorm:"size:512" json:"description,omitempty"`
	Category    string       `gorm:"index;size:50" json:"category"`
	Language    string       `gorm:"size:50" json:"language"`
	Length      PrayerLength `gorm:"size:10" json:"length"`
	Tags        []string     `gorm:"serializer:json" json:"tags"`

	Favorite     bool       `gorm:"index;default:false" json:"favorite"`
	TimesPrayed  int        `gorm:"default:0" json:"times_prayed"`
	LastPrayedAt *time.Time `json:"last_prayed_at,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Prayer) TableName() string {
	return "prayers"
}
