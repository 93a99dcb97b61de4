package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the single database file. SQLite serializes writes
// internally, so no application-level locking sits on top of it.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	// Tek writer; bağlantı havuzunu büyütmenin anlamı yok.
	sqlDB.SetMaxOpenConns(1)

	return database, nil
}
