package testutil

import (
	"testing"

	"github.com/qazfinance/academy/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database with the full schema migrated.
// Each call gets its own database; the connection pool is pinned to one
// connection because every sqlite :memory: connection is a separate store.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("opening sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Unit{},
		&model.Lesson{},
		&model.Question{},
		&model.Choice{},
		&model.Enrollment{},
		&model.LessonAttempt{},
		&model.LessonProgress{},
	)
	if err != nil {
		tb.Fatalf("migrating schema: %v", err)
	}

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}
