package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/database/notes"
	"github.com/kiplangat-dev/catholicprayer/internal/database/prayers"
	"github.com/kiplangat-dev/catholicprayer/internal/database/readings"
	"github.com/kiplangat-dev/catholicprayer/internal/database/rosary"
	"github.com/kiplangat-dev/catholicprayer/internal/database/saints"
	"github.com/kiplangat-dev/catholicprayer/internal/database/seed"
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/usccb"
)

// stubFetcher returns the static fallback and counts invocations.
type stubFetcher struct {
	calls int
}

func (f *stubFetcher) GetDailyReading(_ context.Context, date time.Time) *entities.Reading {
	f.calls++
	return usccb.FallbackReading(date)
}

func setupTestService(t *testing.T) (*QueryService, *stubFetcher, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, seed.NewLoader(db.DB).Run())

	fetcher := &stubFetcher{}
	service := NewQueryService(
		prayers.NewRepository(db.DB),
		readings.NewRepository(db.DB),
		saints.NewRepository(db.DB),
		rosary.NewRepository(db.DB),
		notes.NewRepository(db.DB),
		fetcher,
	)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return service, fetcher, cleanup
}

func TestGetAllPrayers(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	prayers := service.GetAllPrayers()
	assert.Len(t, prayers, 21)
}

func TestGetPrayerByIDUnknown(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	assert.Nil(t, service.GetPrayerByID("no-such-prayer"))
}

func TestSearchPrayersEmptyQueryReturnsAll(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	assert.Len(t, service.SearchPrayers(""), 21)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	toggled := service.ToggleFavorite("nicene-creed")
	require.NotNil(t, toggled)
	assert.True(t, toggled.Favorite)

	back := service.ToggleFavorite("nicene-creed")
	require.NotNil(t, back)
	assert.False(t, back.Favorite)
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	assert.Nil(t, service.ToggleFavorite("no-such-prayer"))
}

func TestAddPrayerGeneratesUniqueIDs(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	first := service.AddPrayer("Evening Thanks", "Thank you, Lord, for this day.", "", "custom", "", nil)
	second := service.AddPrayer("Morning Thanks", "Thank you, Lord, for this morning.", "", "custom", "", nil)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.True(t, strings.HasPrefix(first.ID, "custom-"))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "english", first.Language)
	assert.Equal(t, entities.PrayerLengthShort, first.Length)

	assert.Len(t, service.GetAllPrayers(), 23)
}

func TestGetDailyReadingCachesFetchedReading(t *testing.T) {
	service, fetcher, cleanup := setupTestService(t)
	defer cleanup()

	date := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

	first := service.GetDailyReading(context.Background(), date)
	require.NotNil(t, first)
	assert.Equal(t, "2026-01-05", first.Date)
	assert.Equal(t, 1, fetcher.calls)

	// St. John Neumann's feast day annotates the cached reading.
	assert.Equal(t, "St. John Neumann", first.Saint)

	second := service.GetDailyReading(context.Background(), date)
	require.NotNil(t, second)
	assert.Equal(t, 1, fetcher.calls, "second read should hit the store")
	assert.Equal(t, first.FirstReading.Citation, second.FirstReading.Citation)
}

func TestGetSaintOfTheDay(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	neumann := service.GetSaintOfTheDay(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, neumann)
	assert.Equal(t, "john-neumann", neumann.ID)

	// A day with no seeded saint gets the generic record.
	generic := service.GetSaintOfTheDay(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, generic)
	assert.Equal(t, "all-saints", generic.ID)
	assert.Equal(t, "06-15", generic.FeastDay)
}

func TestGetSaintsByMonthValidation(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	assert.Len(t, service.GetSaintsByMonth(1), 4)
	assert.Empty(t, service.GetSaintsByMonth(0))
	assert.Empty(t, service.GetSaintsByMonth(13))
}

func TestGetAllRosaryMysteries(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	mysteries := service.GetAllRosaryMysteries()
	assert.Len(t, mysteries, 20)
}

func TestGetDailyRosary(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	// 2026-08-28 is a Friday: sorrowful mysteries.
	rosary := service.GetDailyRosary(time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-08-28", rosary.Date)
	assert.Equal(t, entities.MysteryTypeSorrowful, rosary.MysteryType)
	require.Len(t, rosary.Mysteries, 5)
	assert.Equal(t, "The Agony in the Garden", rosary.Mysteries[0].Title)
}

func TestGetStats(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	service.RecordPrayer("our-father")

	stats := service.GetStats()
	assert.Equal(t, int64(21), stats.TotalPrayers)
	assert.Equal(t, int64(10), stats.TotalSaints)
	assert.Equal(t, int64(20), stats.TotalMysteries)
	assert.NotZero(t, stats.FavoritePrayers)
	assert.NotEmpty(t, stats.PrayersByCategory)
}

func TestNotesAndFavoriteMarks(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	note := service.AddNote("prayer", "our-father", "Morning devotion.")
	require.NotNil(t, note)

	notes := service.GetNotes("prayer", "our-father")
	require.Len(t, notes, 1)
	assert.Equal(t, "Morning devotion.", notes[0].Note)

	service.DeleteNote(note.ID)
	assert.Empty(t, service.GetNotes("prayer", "our-father"))

	mark := service.MarkFavorite("saint", "patrick")
	require.NotNil(t, mark)
	assert.Len(t, service.GetFavoriteMarks("saint"), 1)
}

// failingPrayerStore errors on every operation.
type failingPrayerStore struct{}

var errStore = errors.New("store unavailable")

func (failingPrayerStore) GetAll() ([]entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) GetByID(string) (*entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) GetByCategory(string) ([]entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) GetFavorites() ([]entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) Search(string) ([]entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) ToggleFavorite(string) error { return errStore }
func (failingPrayerStore) RecordPrayer(string) error { return errStore }
func (failingPrayerStore) GetPopular(int) ([]entities.Prayer, error) { return nil, errStore }
func (failingPrayerStore) Create(*entities.Prayer) error { return errStore }
func (failingPrayerStore) Count() (int64, error) { return 0, errStore }
func (failingPrayerStore) CountFavorites() (int64, error) { return 0, errStore }
func (failingPrayerStore) CountByCategory() (map[string]int, error) { return nil, errStore }
func (failingPrayerStore) Categories() ([]string, error) { return nil, errStore }

func TestDegradesToEmptyResultsOnStoreFailure(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	service.prayers = failingPrayerStore{}

	assert.Empty(t, service.GetAllPrayers())
	assert.Empty(t, service.SearchPrayers("mary"))
	assert.Empty(t, service.GetFavoritePrayers())
	assert.Empty(t, service.GetCategories())
	assert.Nil(t, service.GetPrayerByID("our-father"))
	assert.Nil(t, service.ToggleFavorite("our-father"))
	assert.Nil(t, service.AddPrayer("Title", "Text", "", "custom", "", nil))

	stats := service.GetStats()
	assert.Zero(t, stats.TotalPrayers)
	assert.Equal(t, int64(10), stats.TotalSaints)
}
