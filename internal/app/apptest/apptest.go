// Package apptest boots the full API against a private in-memory database.
package apptest

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskforge.com/taskforge/internal/app"
	config "taskforge.com/taskforge/internal/configs"
	"taskforge.com/taskforge/internal/sessions"
)

// Now is the fixed instant served by the test clock, a Wednesday.
var Now = time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)

type Server struct {
	*httptest.Server
	DB    *gorm.DB
	Clock *Clock
}

// Clock is a settable clock for tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Config returns settings tuned for tests: memory sessions, no CSRF, a generous
// rate limit.
func Config() config.Config {
	return config.Config{
		AppURL:                 "127.0.0.1:0",
		AppName:                "TaskForge API",
		AppVersion:             "test",
		AppEnv:                 "testing",
		Location:               time.UTC,
		RateLimit:              10000,
		SessionDriver:          "memory",
		SessionCookie:          "taskforge_session",
		SessionTTL:             2 * time.Hour,
		SessionRememberTTL:     30 * 24 * time.Hour,
		ShutdownTimeoutSeconds: 1,
	}
}

// OpenDB opens a migrated database private to the calling test.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := config.Open(dsn)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// NewServer starts the API with cfg. It is closed when the test ends.
func NewServer(t testing.TB, cfg config.Config) *Server {
	t.Helper()

	db := OpenDB(t)
	clock := &Clock{now: Now}

	e := app.New(cfg, db, sessions.NewMemoryStore(), app.Options{
		Clock:    clock.Now,
		HashCost: bcrypt.MinCost,
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return &Server{Server: srv, DB: db, Clock: clock}
}
