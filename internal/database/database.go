package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" driver the dialector names below
	_ "modernc.org/sqlite"
)

// Connect opens the record store. Postgres DSNs get the pgx-backed driver,
// anything else (a file path or ":memory:") is treated as SQLite.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		log.Println("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		log.Println("using SQLite database:", dsn)
		dialector := gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn})
		return gorm.Open(dialector, cfg)
	}
}
