package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"TimeTrackGo/config"
	"TimeTrackGo/models"
	"TimeTrackGo/services"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh SQLite database in a temp directory with the same
// schema and error translation the MySQL setup uses.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Logger = zap.NewNop().Sugar()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("openTestDB: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("openTestDB: %v", err)
	}
	// Serialize writers so concurrent starts race on the unique index, not
	// on the SQLite file lock.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.MigrateDB(db); err != nil {
		t.Fatalf("openTestDB migrate: %v", err)
	}
	return db
}

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Scopes []string
	Event  services.ChangeEvent
}

func (n *recordingNotifier) Publish(_ context.Context, scopes []string, event services.ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, publishedEvent{Scopes: scopes, Event: event})
}

func (n *recordingNotifier) Subscribe(context.Context, string) (<-chan services.ChangeEvent, error) {
	return nil, nil
}

func (n *recordingNotifier) published() []publishedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]publishedEvent(nil), n.events...)
}

// testEnv bundles the services under test over one database.
type testEnv struct {
	db       *gorm.DB
	reg      services.Registries
	notifier *recordingNotifier
	timers   *services.TimerService
	entries  *services.EntryService
	billing  *services.BillingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)
	reg := services.NewGormRegistries(db)
	notifier := &recordingNotifier{}
	return &testEnv{
		db:       db,
		reg:      reg,
		notifier: notifier,
		timers:   services.NewTimerService(db, reg, notifier),
		entries:  services.NewEntryService(db, reg, notifier),
		billing:  services.NewBillingService(db, reg),
	}
}

func (env *testEnv) seed(t *testing.T, records ...interface{}) {
	t.Helper()
	for _, record := range records {
		if err := env.db.Create(record).Error; err != nil {
			t.Fatalf("seed %T: %v", record, err)
		}
	}
}

// closedEntry builds a closed entry spanning the given hours.
func closedEntry(id, userID string, assoc models.Association, hours float64) models.TimeEntry {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return models.TimeEntry{
		ID:           id,
		UserID:       userID,
		StartTime:    start,
		EndTime:      &end,
		Description:  "seeded " + id,
		Association:  assoc,
		Finalized:    true,
		CreatedAt:    start,
		LastModified: end,
	}
}
