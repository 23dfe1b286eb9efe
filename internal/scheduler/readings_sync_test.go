package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiplangat-dev/catholicprayer/internal/config"
	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/database/notes"
	"github.com/kiplangat-dev/catholicprayer/internal/database/prayers"
	"github.com/kiplangat-dev/catholicprayer/internal/database/readings"
	"github.com/kiplangat-dev/catholicprayer/internal/database/rosary"
	"github.com/kiplangat-dev/catholicprayer/internal/database/saints"
	"github.com/kiplangat-dev/catholicprayer/internal/database/seed"
	"github.com/kiplangat-dev/catholicprayer/internal/database/settings"
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/services"
	"github.com/kiplangat-dev/catholicprayer/internal/usccb"
)

type staticFetcher struct{}

func (staticFetcher) GetDailyReading(_ context.Context, date time.Time) *entities.Reading {
	return usccb.FallbackReading(date)
}

func setupScheduler(t *testing.T, cfg config.ReadingsSync) (*ReadingsSyncScheduler, *readings.Repository, *settings.Repository, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, seed.NewLoader(db.DB).Run())

	readingsRepo := readings.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	service := services.NewQueryService(
		prayers.NewRepository(db.DB),
		readingsRepo,
		saints.NewRepository(db.DB),
		rosary.NewRepository(db.DB),
		notes.NewRepository(db.DB),
		staticFetcher{},
	)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewReadingsSyncScheduler(service, settingsRepo, cfg), readingsRepo, settingsRepo, cleanup
}

func TestSchedulerDisabledDoesNotStart(t *testing.T) {
	scheduler, _, _, cleanup := setupScheduler(t, config.ReadingsSync{Enabled: false})
	defer cleanup()

	require.NoError(t, scheduler.Start(context.Background()))
	assert.False(t, scheduler.IsRunning())
	assert.Nil(t, scheduler.GetNextRunTime())
}

func TestSchedulerStartAndStop(t *testing.T) {
	scheduler, _, _, cleanup := setupScheduler(t, config.ReadingsSync{
		Enabled:  true,
		Schedule: "0 5 * * *",
	})
	defer cleanup()

	require.NoError(t, scheduler.Start(context.Background()))
	assert.True(t, scheduler.IsRunning())
	require.NotNil(t, scheduler.GetNextRunTime())

	scheduler.Stop()
	assert.False(t, scheduler.IsRunning())
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	scheduler, _, _, cleanup := setupScheduler(t, config.ReadingsSync{
		Enabled:  true,
		Schedule: "not a schedule",
	})
	defer cleanup()

	assert.Error(t, scheduler.Start(context.Background()))
	assert.False(t, scheduler.IsRunning())
}

func TestSchedulerPausedViaSettingSkipsSync(t *testing.T) {
	scheduler, readingsRepo, settingsRepo, cleanup := setupScheduler(t, config.ReadingsSync{
		Enabled:  true,
		Schedule: "0 5 * * *",
	})
	defer cleanup()

	require.NoError(t, settingsRepo.SetSetting(entities.SettingKeyReadingsSyncPaused, "true"))

	scheduler.runSync()

	count, err := readingsRepo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NotEqual(t, "success", settingsRepo.GetValue(entities.SettingKeyReadingsSyncLastStatus))
}

func TestSchedulerRunNowCachesReading(t *testing.T) {
	scheduler, readingsRepo, settingsRepo, cleanup := setupScheduler(t, config.ReadingsSync{
		Enabled:  true,
		Schedule: "0 5 * * *",
	})
	defer cleanup()

	scheduler.RunNow()

	require.Eventually(t, func() bool {
		count, err := readingsRepo.Count()
		return err == nil && count == 1 && !scheduler.IsSyncing()
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, "success", settingsRepo.GetValue(entities.SettingKeyReadingsSyncLastStatus))
	assert.NotNil(t, settingsRepo.GetTime(entities.SettingKeyReadingsSyncLastAt))
}
