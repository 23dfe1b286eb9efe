package readings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func sampleReading(date string) *entities.Reading {
	return &entities.Reading{
		Date:    date,
		Weekday: "Friday",
		Season:  "Ordinary Time",
		Color:   "green",
		FirstReading: entities.BibleReading{
			Citation: "Isaiah 40:1-5",
			Text:     "Comfort, give comfort to my people.",
			Book:     "Isaiah",
			Chapter:  40,
			Verses:   "1-5",
		},
		Psalm: entities.PsalmReading{
			Citation: "Psalm 85:9-14",
			Number:   85,
			Text:     "I will hear what God proclaims.",
		},
		Gospel: entities.BibleReading{
			Citation: "John 1:19-28",
			Text:     "This is the testimony of John.",
			Book:     "John",
			Chapter:  1,
			Verses:   "19-28",
		},
	}
}

func TestGetByDateMissing(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	reading, err := repo.GetByDate("2026-01-01")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, reading)
}

func TestPutAndGetByDate(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	require.NoError(t, repo.Put(sampleReading("2026-08-28")))

	reading, err := repo.GetByDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "Isaiah 40:1-5", reading.FirstReading.Citation)
	assert.Equal(t, 85, reading.Psalm.Number)
	assert.Equal(t, "John 1:19-28", reading.Gospel.Citation)
}

func TestPutOverwritesExistingDate(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	require.NoError(t, repo.Put(sampleReading("2026-08-28")))

	updated := sampleReading("2026-08-28")
	updated.Gospel.Citation = "Matthew 5:1-12"
	require.NoError(t, repo.Put(updated))

	reading, err := repo.GetByDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "Matthew 5:1-12", reading.Gospel.Citation)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
