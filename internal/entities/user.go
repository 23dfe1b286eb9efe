package entities

import (
	"time"
)

// Favorite records a user marking an item (prayer, saint, reading) as a
// favorite. Prayers additionally carry their own favorite flag; this table
// keeps the cross-type history.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemType  string    `gorm:"index;size:20" json:"item_type"`
	ItemID    string    `gorm:"index;size:64" json:"item_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}

// Note is a free-form user annotation attached to an item.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemType  string    `gorm:"index;size:20" json:"item_type"`
	ItemID    string    `gorm:"index;size:64" json:"item_id"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Note) TableName() string {
	return "user_notes"
}
