package entities

import (
	"time"
)

type MysteryType string

const (
	MysteryTypeJoyful    MysteryType = "joyful"
	MysteryTypeSorrowful MysteryType = "sorrowful"
	MysteryTypeGlorious  MysteryType = "glorious"
	MysteryTypeLuminous  MysteryType = "luminous"
)

// RosaryMystery is one of the twenty scriptural meditations. A complete
// dataset has exactly five mysteries per type, numbered 1-5.
type RosaryMystery struct {
	ID          string      `gorm:"primaryKey;size:32" json:"id"`
	MysteryType MysteryType `gorm:"index;size:16" json:"mystery_type"`
	Number      int         `json:"number"`
	Title       string      `gorm:"size:128" json:"title"`
	Scripture   string      `gorm:"size:64" json:"scripture"`
	Reflection  string      `gorm:"type:text" json:"reflection"`
	Fruit       string      `gorm:"size:64" json:"fruit"`

	CreatedAt time.Time `json:"created_at"`
}

func (RosaryMystery) TableName() string {
	return "rosary_mysteries"
}
