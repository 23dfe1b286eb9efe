package entities

import (
	"time"
)

// Setting is a flat key/value record with last-write-wins semantics per key.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "app_settings"
}

// Known setting keys
const (
	// Seed loader state
	SettingKeyInitialized = "initialized"
	SettingKeyLastUpdated = "last_updated"

	// Readings prefetch state
	SettingKeyReadingsSyncLastAt     = "readings_sync_last_at"
	SettingKeyReadingsSyncLastStatus = "readings_sync_last_status"
	SettingKeyReadingsSyncPaused     = "readings_sync_paused"
)
