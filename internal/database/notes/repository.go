// Package notes provides database operations for user notes and favorite
// marks attached to catalog items.
package notes

import (
	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Repository handles user note and favorite-mark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddNote attaches a note to an item.
func (r *Repository) AddNote(itemType, itemID, text string) (*entities.Note, error) {
	note := &entities.Note{
		ItemType: itemType,
		ItemID:   itemID,
		Note:     text,
	}
	if err := r.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// GetNotesForItem returns all notes for an item, oldest first.
func (r *Repository) GetNotesForItem(itemType, itemID string) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Where("item_type = ? AND item_id = ?", itemType, itemID).
		Order("created_at ASC, id ASC").
		Find(&notes).Error
	return notes, err
}

// DeleteNote removes a note by id.
func (r *Repository) DeleteNote(id uint) error {
	return r.db.Delete(&entities.Note{}, id).Error
}

// AddFavorite records a favorite mark for an item. Repeated marks for the
// same item are kept as history.
func (r *Repository) AddFavorite(itemType, itemID string) (*entities.Favorite, error) {
	favorite := &entities.Favorite{
		ItemType: itemType,
		ItemID:   itemID,
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

// GetFavorites returns all favorite marks of an item type, newest first.
func (r *Repository) GetFavorites(itemType string) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.Where("item_type = ?", itemType).
		Order("created_at DESC, id DESC").
		Find(&favorites).Error
	return favorites, err
}
