package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/osoc-staffing/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens a file-backed sqlite database in a per-test temp dir,
// migrates the schema and points the global connection at it. WAL plus
// immediate transaction locking gives the same single-writer
// serialization the postgres row locks provide in production, so the
// concurrency tests exercise the real transaction boundaries.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate",
		filepath.Join(t.TempDir(), "staffing.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	return db
}
