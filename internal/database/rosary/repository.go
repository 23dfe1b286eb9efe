// Package rosary provides database operations for the rosary mystery set.
package rosary

import (
	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Repository handles all rosary mystery database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new rosary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByType returns the five mysteries of a type, ordered by their number.
func (r *Repository) GetByType(mysteryType entities.MysteryType) ([]entities.RosaryMystery, error) {
	var mysteries []entities.RosaryMystery
	err := r.db.Where("mystery_type = ?", mysteryType).Order("number").Find(&mysteries).Error
	return mysteries, err
}

// GetAll returns the complete mystery set grouped by type then number.
func (r *Repository) GetAll() ([]entities.RosaryMystery, error) {
	var mysteries []entities.RosaryMystery
	err := r.db.Order("mystery_type, number").Find(&mysteries).Error
	return mysteries, err
}

// Count returns the number of stored mysteries.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.RosaryMystery{}).Count(&count).Error
	return count, err
}
