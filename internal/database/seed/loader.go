// Package seed bootstraps the database with the bundled devotional dataset.
//
// Loading happens exactly once per database: the whole insert runs inside a
// single transaction together with setting the "initialized" flag, so a
// crashed first run leaves the store fully unseeded and the next launch
// retries safely.
package seed

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

// Loader populates an empty database with the bundled dataset.
type Loader struct {
	db *gorm.DB
}

func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Run seeds the database if it has not been seeded yet. Calling it again is a
// no-op.
func (l *Loader) Run() error {
	seeded, err := l.isSeeded()
	if err != nil {
		return fmt.Errorf("failed to read seed state: %w", err)
	}
	if seeded {
		return nil
	}

	err = l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bundledPrayers).Error; err != nil {
			return fmt.Errorf("failed to seed prayers: %w", err)
		}
		if err := tx.Create(&bundledMysteries).Error; err != nil {
			return fmt.Errorf("failed to seed rosary mysteries: %w", err)
		}
		if err := tx.Create(&bundledSaints).Error; err != nil {
			return fmt.Errorf("failed to seed saints: %w", err)
		}

		now := time.Now().UTC().Format(time.RFC3339)
		settings := []entities.Setting{
			{Key: entities.SettingKeyInitialized, Value: "true"},
			{Key: entities.SettingKeyLastUpdated, Value: now},
		}
		if err := tx.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to record seed state: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded database with %d prayers, %d mysteries, %d saints",
		len(bundledPrayers), len(bundledMysteries), len(bundledSaints))
	return nil
}

func (l *Loader) isSeeded() (bool, error) {
	var setting entities.Setting
	err := l.db.Where("key = ?", entities.SettingKeyInitialized).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return setting.Value == "true", nil
}
