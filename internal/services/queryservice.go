// Package services implements the read/write facade the presentation layers
// talk to.
//
// Every method degrades instead of failing: storage errors are logged and the
// caller gets an empty slice, nil, or a sensible default. The facade is the
// only layer allowed to absorb errors; the repositories underneath stay
// explicit.
package services

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/liturgical"
)

// DefaultPopularLimit bounds popular-prayer listings when the caller does not
// ask for a specific count.
const DefaultPopularLimit = 10

// QueryService exposes the catalog, readings, saints, rosary and user-data
// operations behind a never-failing API.
type QueryService struct {
	prayers  PrayerStore
	readings ReadingStore
	saints   SaintStore
	rosary   RosaryStore
	notes    NoteStore
	fetcher  ReadingFetcher

	// now is swappable so date-dependent behavior is testable.
	now func() time.Time

	customSeq atomic.Int64
}

// NewQueryService wires the service to its stores and the external fetcher.
func NewQueryService(
	prayers PrayerStore,
	readings ReadingStore,
	saints SaintStore,
	rosary RosaryStore,
	notes NoteStore,
	fetcher ReadingFetcher,
) *QueryService {
	return &QueryService{
		prayers:  prayers,
		readings: readings,
		saints:   saints,
		rosary:   rosary,
		notes:    notes,
		fetcher:  fetcher,
		now:      time.Now,
	}
}

// GetAllPrayers returns the full prayer catalog in insertion order.
func (s *QueryService) GetAllPrayers() []entities.Prayer {
	prayers, err := s.prayers.GetAll()
	if err != nil {
		log.Printf("query: list prayers: %v", err)
		return []entities.Prayer{}
	}
	return prayers
}

// GetPrayerByID returns a prayer, or nil when the id is unknown.
func (s *QueryService) GetPrayerByID(id string) *entities.Prayer {
	prayer, err := s.prayers.GetByID(id)
	if err != nil {
		return nil
	}
	return prayer
}

// GetPrayersByCategory returns the prayers of one category. An unknown
// category yields an empty slice.
func (s *QueryService) GetPrayersByCategory(category string) []entities.Prayer {
	prayers, err := s.prayers.GetByCategory(category)
	if err != nil {
		log.Printf("query: prayers by category %q: %v", category, err)
		return []entities.Prayer{}
	}
	return prayers
}

// GetFavoritePrayers returns all prayers currently marked favorite.
func (s *QueryService) GetFavoritePrayers() []entities.Prayer {
	prayers, err := s.prayers.GetFavorites()
	if err != nil {
		log.Printf("query: favorite prayers: %v", err)
		return []entities.Prayer{}
	}
	return prayers
}

// SearchPrayers matches query case-insensitively against title, text,
// description and tags. An empty query returns the whole catalog.
func (s *QueryService) SearchPrayers(query string) []entities.Prayer {
	if query == "" {
		return s.GetAllPrayers()
	}
	prayers, err := s.prayers.Search(query)
	if err != nil {
		log.Printf("query: search prayers %q: %v", query, err)
		return []entities.Prayer{}
	}
	return prayers
}

// ToggleFavorite flips a prayer's favorite flag and returns the updated
// prayer. Unknown ids are a no-op returning nil.
func (s *QueryService) ToggleFavorite(id string) *entities.Prayer {
	if err := s.prayers.ToggleFavorite(id); err != nil {
		log.Printf("query: toggle favorite %q: %v", id, err)
		return nil
	}
	return s.GetPrayerByID(id)
}

// RecordPrayer bumps a prayer's usage counter and prayed-at timestamp.
func (s *QueryService) RecordPrayer(id string) {
	if err := s.prayers.RecordPrayer(id); err != nil {
		log.Printf("query: record prayer %q: %v", id, err)
	}
}

// GetPopularPrayers returns the most-prayed prayers. A non-positive limit
// falls back to DefaultPopularLimit.
func (s *QueryService) GetPopularPrayers(limit int) []entities.Prayer {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	prayers, err := s.prayers.GetPopular(limit)
	if err != nil {
		log.Printf("query: popular prayers: %v", err)
		return []entities.Prayer{}
	}
	return prayers
}

// AddPrayer stores a user-authored prayer under a generated id and returns
// it, or nil when the write fails.
func (s *QueryService) AddPrayer(title, text, description, category, language string, tags []string) *entities.Prayer {
	if language == "" {
		language = "english"
	}
	now := s.now()
	prayer := &entities.Prayer{
		ID:          s.nextCustomID(),
		Title:       title,
		Text:        text,
		Description: description,
		Category:    category,
		Language:    language,
		Length:      lengthOf(text),
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.prayers.Create(prayer); err != nil {
		log.Printf("query: add prayer %q: %v", title, err)
		return nil
	}
	return prayer
}

// GetCategories returns the distinct prayer categories in catalog order.
func (s *QueryService) GetCategories() []string {
	categories, err := s.prayers.Categories()
	if err != nil {
		log.Printf("query: categories: %v", err)
		return []string{}
	}
	return categories
}

// nextCustomID generates ids for user-authored prayers. The millisecond
// timestamp keeps them roughly sortable; the sequence suffix keeps rapid
// inserts distinct.
func (s *QueryService) nextCustomID() string {
	return fmt.Sprintf("custom-%d-%d", s.now().UnixMilli(), s.customSeq.Add(1))
}

func lengthOf(text string) entities.PrayerLength {
	switch n := len(text); {
	case n < 200:
		return entities.PrayerLengthShort
	case n < 600:
		return entities.PrayerLengthMedium
	default:
		return entities.PrayerLengthLong
	}
}

// GetDailyReading returns the readings for a date, serving the stored copy
// when one exists and otherwise fetching, annotating with the day's saint,
// and caching. It never returns nil.
func (s *QueryService) GetDailyReading(ctx context.Context, date time.Time) *entities.Reading {
	key := liturgical.DateKey(date)
	if stored, err := s.readings.GetByDate(key); err == nil {
		return stored
	}

	reading := s.fetcher.GetDailyReading(ctx, date)
	if saint := s.GetSaintOfTheDay(date); saint != nil {
		reading.Saint = saint.Name
	}
	if err := s.readings.Put(reading); err != nil {
		log.Printf("query: cache reading %s: %v", key, err)
	}
	return reading
}

// GetTodaysReading returns the readings for the current date.
func (s *QueryService) GetTodaysReading(ctx context.Context) *entities.Reading {
	return s.GetDailyReading(ctx, s.now())
}

// GetAllSaints returns the saint catalog.
func (s *QueryService) GetAllSaints() []entities.Saint {
	saints, err := s.saints.GetAll()
	if err != nil {
		log.Printf("query: list saints: %v", err)
		return []entities.Saint{}
	}
	return saints
}

// GetSaintByID returns a saint, or nil when the id is unknown.
func (s *QueryService) GetSaintByID(id string) *entities.Saint {
	saint, err := s.saints.GetByID(id)
	if err != nil {
		return nil
	}
	return saint
}

// GetSaintOfTheDay returns the saint commemorated on the date's feast day.
// Days without a seeded saint get a generic All Saints record so callers
// always have something to show.
func (s *QueryService) GetSaintOfTheDay(date time.Time) *entities.Saint {
	monthDay := liturgical.MonthDay(liturgical.DateKey(date))
	saint, err := s.saints.GetByFeastDay(monthDay)
	if err == nil {
		return saint
	}
	return &entities.Saint{
		ID:          "all-saints",
		Name:        "All Saints",
		FeastDay:    monthDay,
		Description: "Today we honor all the saints, known and unknown, who lived lives of heroic virtue.",
		Patronage:   []string{"All the faithful"},
		Prayer:      "All you holy men and women, pray for us.",
	}
}

// GetSaintsByMonth returns the saints with feast days in a month (1-12).
func (s *QueryService) GetSaintsByMonth(month int) []entities.Saint {
	if month < 1 || month > 12 {
		return []entities.Saint{}
	}
	saints, err := s.saints.GetByMonth(month)
	if err != nil {
		log.Printf("query: saints for month %d: %v", month, err)
		return []entities.Saint{}
	}
	return saints
}

// DailyRosary pairs the mystery type prayed on a weekday with its five
// mysteries.
type DailyRosary struct {
	Date        string                  `json:"date"`
	MysteryType entities.MysteryType    `json:"mysteryType"`
	Mysteries   []entities.RosaryMystery `json:"mysteries"`
}

// GetRosaryMysteries returns the five mysteries of a type in prayer order.
func (s *QueryService) GetRosaryMysteries(mysteryType entities.MysteryType) []entities.RosaryMystery {
	mysteries, err := s.rosary.GetByType(mysteryType)
	if err != nil {
		log.Printf("query: mysteries %q: %v", mysteryType, err)
		return []entities.RosaryMystery{}
	}
	return mysteries
}

// GetAllRosaryMysteries returns the complete mystery set grouped by type,
// each type in prayer order.
func (s *QueryService) GetAllRosaryMysteries() []entities.RosaryMystery {
	mysteries, err := s.rosary.GetAll()
	if err != nil {
		log.Printf("query: all mysteries: %v", err)
		return []entities.RosaryMystery{}
	}
	return mysteries
}

// GetDailyRosary returns the mystery set traditionally prayed on the date's
// weekday.
func (s *QueryService) GetDailyRosary(date time.Time) DailyRosary {
	mysteryType := liturgical.MysteryTypeFor(date)
	return DailyRosary{
		Date:        liturgical.DateKey(date),
		MysteryType: mysteryType,
		Mysteries:   s.GetRosaryMysteries(mysteryType),
	}
}

// GetTodaysRosary returns the mystery set for the current date.
func (s *QueryService) GetTodaysRosary() DailyRosary {
	return s.GetDailyRosary(s.now())
}

// AddNote attaches a user note to a catalog item, returning nil on failure.
func (s *QueryService) AddNote(itemType, itemID, text string) *entities.Note {
	note, err := s.notes.AddNote(itemType, itemID, text)
	if err != nil {
		log.Printf("query: add note for %s/%s: %v", itemType, itemID, err)
		return nil
	}
	return note
}

// GetNotes returns the notes attached to an item, oldest first.
func (s *QueryService) GetNotes(itemType, itemID string) []entities.Note {
	notes, err := s.notes.GetNotesForItem(itemType, itemID)
	if err != nil {
		log.Printf("query: notes for %s/%s: %v", itemType, itemID, err)
		return []entities.Note{}
	}
	return notes
}

// DeleteNote removes a note by id.
func (s *QueryService) DeleteNote(id uint) {
	if err := s.notes.DeleteNote(id); err != nil {
		log.Printf("query: delete note %d: %v", id, err)
	}
}

// MarkFavorite records a favorite mark against an item, returning nil on
// failure.
func (s *QueryService) MarkFavorite(itemType, itemID string) *entities.Favorite {
	favorite, err := s.notes.AddFavorite(itemType, itemID)
	if err != nil {
		log.Printf("query: mark favorite %s/%s: %v", itemType, itemID, err)
		return nil
	}
	return favorite
}

// GetFavoriteMarks returns the favorite marks of an item type, newest first.
func (s *QueryService) GetFavoriteMarks(itemType string) []entities.Favorite {
	favorites, err := s.notes.GetFavorites(itemType)
	if err != nil {
		log.Printf("query: favorite marks %q: %v", itemType, err)
		return []entities.Favorite{}
	}
	return favorites
}

// Stats summarizes the stored content.
type Stats struct {
	TotalPrayers      int64          `json:"totalPrayers"`
	FavoritePrayers   int64          `json:"favoritePrayers"`
	TotalSaints       int64          `json:"totalSaints"`
	TotalMysteries    int64          `json:"totalMysteries"`
	CachedReadings    int64          `json:"cachedReadings"`
	PrayersByCategory map[string]int `json:"prayersByCategory"`
}

// GetStats counts the stored content. Individual count failures zero that
// figure rather than failing the whole summary.
func (s *QueryService) GetStats() Stats {
	stats := Stats{PrayersByCategory: map[string]int{}}

	if n, err := s.prayers.Count(); err == nil {
		stats.TotalPrayers = n
	}
	if n, err := s.prayers.CountFavorites(); err == nil {
		stats.FavoritePrayers = n
	}
	if n, err := s.saints.Count(); err == nil {
		stats.TotalSaints = n
	}
	if n, err := s.rosary.Count(); err == nil {
		stats.TotalMysteries = n
	}
	if n, err := s.readings.Count(); err == nil {
		stats.CachedReadings = n
	}
	if counts, err := s.prayers.CountByCategory(); err == nil {
		stats.PrayersByCategory = counts
	}
	return stats
}
