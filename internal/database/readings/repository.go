// Package readings provides database operations for date-keyed daily readings.
package readings

import (
	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Repository handles all readings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new readings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByDate retrieves the reading for a normalized YYYY-MM-DD date. Returns
// gorm.ErrRecordNotFound when no reading is stored for that date.
func (r *Repository) GetByDate(date string) (*entities.Reading, error) {
	var reading entities.Reading
	err := r.db.First(&reading, "date = ?", date).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// Put inserts or overwrites the reading for its date. One reading per date.
func (r *Repository) Put(reading *entities.Reading) error {
	var existing entities.Reading
	result := r.db.First(&existing, "date = ?", reading.Date)

	if result.Error == gorm.ErrRecordNotFound {
		return r.db.Create(reading).Error
	} else if result.Error != nil {
		return result.Error
	}

	reading.CreatedAt = existing.CreatedAt
	return r.db.Save(reading).Error
}

// Count returns the number of stored readings.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Reading{}).Count(&count).Error
	return count, err
}
