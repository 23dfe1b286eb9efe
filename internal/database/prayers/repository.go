// Package prayers provides database operations for the prayer catalog.
//
// List queries are ordered by rowid, which in sqlite is the insertion order
// of the table, so results are stable across repeated reads.
package prayers

import (
	"time"

	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Repository handles all prayer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new prayers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every prayer in insertion order.
func (r *Repository) GetAll() ([]entities.Prayer, error) {
	var prayers []entities.Prayer
	err := r.db.Order("rowid").Find(&prayers).Error
	return prayers, err
}

// GetByID retrieves a prayer by its id. Returns gorm.ErrRecordNotFound when
// the id is unknown.
func (r *Repository) GetByID(id string) (*entities.Prayer, error) {
	var prayer entities.Prayer
	err := r.db.First(&prayer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &prayer, nil
}

// GetByCategory returns all prayers of a category.
func (r *Repository) GetByCategory(category string) ([]entities.Prayer, error) {
	var prayers []entities.Prayer
	err := r.db.Where("category = ?", category).Order("rowid").Find(&prayers).Error
	return prayers, err
}

// GetFavorites returns all prayers marked as favorite.
func (r *Repository) GetFavorites() ([]entities.Prayer, error) {
	var prayers []entities.Prayer
	err := r.db.Where("favorite = ?", true).Order("rowid").Find(&prayers).Error
	return prayers, err
}

// Search performs a case-insensitive substring match over title, text,
// description and tags. A prayer matches when any field matches. The tags
// column holds the JSON-serialized tag list, so the LIKE covers every tag.
func (r *Repository) Search(query string) ([]entities.Prayer, error) {
	var prayers []entities.Prayer
	pattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(text) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern).
		Order("rowid").
		Find(&prayers).Error
	return prayers, err
}

// ToggleFavorite flips the favorite flag and touches updated_at. The flip is
// a single statement so concurrent toggles each take effect; a read-then-write
// here would let two toggles observe the same value and lose one flip.
// Unknown ids are a no-op, not an error: callers re-read to observe the
// outcome.
func (r *Repository) ToggleFavorite(id string) error {
	return r.db.Model(&entities.Prayer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"favorite":   gorm.Expr("NOT favorite"),
			"updated_at": time.Now(),
		}).Error
}

// RecordPrayer increments the times_prayed counter and stamps last_prayed_at.
// Unknown ids are a no-op.
func (r *Repository) RecordPrayer(id string) error {
	now := time.Now()
	return r.db.Model(&entities.Prayer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"times_prayed":   gorm.Expr("times_prayed + 1"),
			"last_prayed_at": now,
			"updated_at":     now,
		}).Error
}

// GetPopular returns up to limit prayers ordered by times_prayed descending,
// ties broken by insertion order.
func (r *Repository) GetPopular(limit int) ([]entities.Prayer, error) {
	var prayers []entities.Prayer
	query := r.db.Order("times_prayed DESC, rowid ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&prayers).Error
	return prayers, err
}

// Create inserts a new prayer. The id must be unique.
func (r *Repository) Create(prayer *entities.Prayer) error {
	return r.db.Create(prayer).Error
}

// Count returns the total number of prayers.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Prayer{}).Count(&count).Error
	return count, err
}

// CountFavorites returns the number of favorite prayers.
func (r *Repository) CountFavorites() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Prayer{}).Where("favorite = ?", true).Count(&count).Error
	return count, err
}

// CountByCategory returns a category histogram over all prayers.
func (r *Repository) CountByCategory() (map[string]int, error) {
	var rows []struct {
		Category string
		Count    int
	}
	err := r.db.Model(&entities.Prayer{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

// Categories returns the distinct prayer categories in insertion order.
func (r *Repository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&entities.Prayer{}).
		Group("category").
		Order("MIN(rowid)").
		Pluck("category", &categories).Error
	return categories, err
}
