// database/bootstrap.go
package database

import (
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fazenda/entities"
)

// SlowQuery is the threshold above which statements are logged at warn.
const SlowQuery = 200 * time.Millisecond

// Open connects to dsn. A postgres:// or postgresql:// URL selects
// postgres, anything else is a sqlite file path.
func Open(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: NewGormLogger(log, SlowQuery)}

	if IsPostgres(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(dsn)), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// foreign keys are off by default in sqlite; the DSN pragma turns them
	// on per connection, so make sure it took effect
	var fk int
	if err := db.Raw(`PRAGMA foreign_keys`).Scan(&fk).Error; err != nil {
		return nil, fmt.Errorf("check foreign_keys: %w", err)
	}
	if fk != 1 {
		return nil, fmt.Errorf("sqlite foreign keys are disabled for %s", dsn)
	}
	return db, nil
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Owner{},
		&entities.Property{},
		&entities.User{},
		&entities.Session{},
		&entities.Animal{},
		&entities.Lot{},
		&entities.Crop{},
		&entities.Cultivation{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
