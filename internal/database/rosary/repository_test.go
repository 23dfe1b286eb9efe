package rosary

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/database/seed"
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, seed.NewLoader(db.DB).Run())

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func TestGetByTypeReturnsFiveOrderedMysteries(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	mysteries, err := repo.GetByType(entities.MysteryTypeJoyful)
	require.NoError(t, err)
	require.Len(t, mysteries, 5)

	assert.Equal(t, "The Annunciation", mysteries[0].Title)
	assert.Equal(t, "The Finding in the Temple", mysteries[4].Title)
	for i, mystery := range mysteries {
		assert.Equal(t, i+1, mystery.Number)
		assert.Equal(t, entities.MysteryTypeJoyful, mystery.MysteryType)
	}
}

func TestGetAll(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	mysteries, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, mysteries, 20)
}
