package services

import (
	"context"
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// PrayerStore is the prayer catalog surface the service consumes.
type PrayerStore interface {
	GetAll() ([]entities.Prayer, error)
	GetByID(id string) (*entities.Prayer, error)
	GetByCategory(category string) ([]entities.Prayer, error)
	GetFavorites() ([]entities.Prayer, error)
	Search(query string) ([]entities.Prayer, error)
	ToggleFavorite(id string) error
	RecordPrayer(id string) error
	GetPopular(limit int) ([]entities.Prayer, error)
	Create(prayer *entities.Prayer) error
	Count() (int64, error)
	CountFavorites() (int64, error)
	CountByCategory() (map[string]int, error)
	Categories() ([]string, error)
}

// ReadingStore caches fetched daily readings by date.
type ReadingStore interface {
	GetByDate(date string) (*entities.Reading, error)
	Put(reading *entities.Reading) error
	Count() (int64, error)
}

// SaintStore is the saint catalog surface the service consumes.
type SaintStore interface {
	GetAll() ([]entities.Saint, error)
	GetByID(id string) (*entities.Saint, error)
	GetByFeastDay(monthDay string) (*entities.Saint, error)
	GetByMonth(month int) ([]entities.Saint, error)
	Count() (int64, error)
}

// RosaryStore is the rosary mystery surface the service consumes.
type RosaryStore interface {
	GetByType(mysteryType entities.MysteryType) ([]entities.RosaryMystery, error)
	GetAll() ([]entities.RosaryMystery, error)
	Count() (int64, error)
}

// NoteStore handles user notes and favorite marks.
type NoteStore interface {
	AddNote(itemType, itemID, text string) (*entities.Note, error)
	GetNotesForItem(itemType, itemID string) ([]entities.Note, error)
	DeleteNote(id uint) error
	AddFavorite(itemType, itemID string) (*entities.Favorite, error)
	GetFavorites(itemType string) ([]entities.Favorite, error)
}

// ReadingFetcher retrieves readings from an external source. Implementations
// must always return a usable reading, falling back internally on failure.
type ReadingFetcher interface {
	GetDailyReading(ctx context.Context, date time.Time) *entities.Reading
}
