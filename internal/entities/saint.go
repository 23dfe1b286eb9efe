package entities

import (
	"time"
)

// Saint is a saint's biography keyed by a stable slug id. FeastDay is an
// MM-DD string without a year: feast days recur annually, so lookups match
// the month-day part of any queried date.
type Saint struct {
	ID          string   `gorm:"primaryKey;size:64" json:"id"`
	Name        string   `gorm:"index;size:256" json:"name"`
	FeastDay    string   `gorm:"index;size:5" json:"feast_day"`
	Description string   `gorm:"type:text" json:"description"`
	Patronage   []string `gorm:"serializer:json" json:"patronage"`
	Prayer      string   `gorm:"type:text" json:"prayer,omitempty"`
	Popularity  int      `gorm:"default:0" json:"popularity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Saint) TableName() string {
	return "saints"
}
