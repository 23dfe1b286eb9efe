// Package saints provides database operations for saint biographies.
//
// Feast days are MM-DD strings without a year: they recur annually, so every
// lookup matches on the month-day part of the queried date only.
package saints

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Repository handles all saint database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new saints repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every saint in insertion order.
func (r *Repository) GetAll() ([]entities.Saint, error) {
	var saints []entities.Saint
	err := r.db.Order("rowid").Find(&saints).Error
	return saints, err
}

// GetByID retrieves a saint by id.
func (r *Repository) GetByID(id string) (*entities.Saint, error) {
	var saint entities.Saint
	err := r.db.First(&saint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &saint, nil
}

// GetByFeastDay retrieves the saint commemorated on an MM-DD feast day.
// Returns gorm.ErrRecordNotFound when no saint is seeded for that day.
func (r *Repository) GetByFeastDay(monthDay string) (*entities.Saint, error) {
	var saint entities.Saint
	err := r.db.First(&saint, "feast_day = ?", monthDay).Error
	if err != nil {
		return nil, err
	}
	return &saint, nil
}

// GetByMonth returns all saints with a feast day in the given month (1-12).
func (r *Repository) GetByMonth(month int) ([]entities.Saint, error) {
	var saints []entities.Saint
	prefix := fmt.Sprintf("%02d-", month)
	err := r.db.Where("feast_day LIKE ?", prefix+"%").Order("feast_day").Find(&saints).Error
	return saints, err
}

// Count returns the total number of saints.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Saint{}).Count(&count).Error
	return count, err
}
