package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"passvault/internal/model"
)

// InitDB opens the database by DSN and runs migrations. A postgres URI
// selects the postgres driver; anything else is treated as a SQLite file
// path (modernc driver, no cgo), which is the default for local runs.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "passvault.sqlite"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Entry{}); err != nil {
		return nil, err
	}
	return db, nil
}
