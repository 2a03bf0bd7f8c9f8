package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
)

const (
	defaultTestDSN       = "host=localhost port=5432 user=postgres password=postgres dbname=eventful_test sslmode=disable"
	testDBLockID   int64 = 731205114
)

// NewTestDB connects to TEST_DATABASE_DSN, applies the migrations and
// truncates every table. It skips the test when Postgres is unreachable.
func NewTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 16, MaxIdleConns: 4})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	if err := db.Master.PingContext(ctx); err != nil {
		_ = db.Master.Close()
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	t.Cleanup(func() { _ = db.Master.Close() })

	lockTestDB(t, db.Master)
	applyMigrations(t, db.Master)
	truncateAll(t, db.Master)

	return db
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("locate testutil source")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.Up(db, migrationsDir(t)); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
}

func truncateAll(t *testing.T, db *sql.DB) {
	t.Helper()
	if _, err := db.Exec(`TRUNCATE admissions, payments, events, users CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// InsertUser creates a user and returns its id.
func InsertUser(t *testing.T, db *dbpg.DB, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Master.Exec(
		`INSERT INTO users (id, username, email) VALUES ($1, $2, $3)`,
		id, name+"-"+id[:8], name+"-"+id[:8]+"@example.com",
	)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

// InsertEvent creates an active event. A nil capacity is unbounded.
func InsertEvent(t *testing.T, db *dbpg.DB, creatorID string, priceMinor int64, capacity *int) string {
	t.Helper()
	id := uuid.NewString()
	var capArg any
	if capacity != nil {
		capArg = *capacity
	}
	_, err := db.Master.Exec(
		`INSERT INTO events (id, creator_id, title, event_date, price_minor, capacity)
		 VALUES ($1, $2, $3, now() + interval '7 days', $4, $5)`,
		id, creatorID, "Test event", priceMinor, capArg,
	)
	if err != nil {
		t.Fatalf("insert event: %v", err)
	}
	return id
}

func lockTestDB(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Conn(ctx)
	if err != nil {
		t.Fatalf("acquire lock conn: %v", err)
	}
	if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, testDBLockID); err != nil {
		_ = conn.Close()
		t.Fatalf("acquire test lock: %v", err)
	}

	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, testDBLockID)
		_ = conn.Close()
	})
}
