package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"deskbooking-backend/config"
	"deskbooking-backend/internal/model"
)

// Init opens the database, applies the connection pool settings and runs
// migrations, including the DDL gorm tags cannot express.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(openDialector(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// openDialector picks the gorm driver from the DSN shape: sqlite for
// file paths and file: URIs, postgres otherwise.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") || dsn == ":memory:" {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}

// Migrate runs AutoMigrate for all models and applies the slot-index DDL.
// Exported so tests can run the full schema against in-memory sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Area{},
		&model.Room{},
		&model.Desk{},
		&model.User{},
		&model.UserPermission{},
		&model.Reservation{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	if err := applySlotIndexDDL(db); err != nil {
		return fmt.Errorf("failed to apply slot index DDL: %w", err)
	}
	return nil
}

// applySlotIndexDDL creates the partial unique index backing the
// no-double-booking guarantee: at most one non-cancelled reservation per
// (desk, date). Cancelled rows are kept for auditing but release the
// slot, so the predicate excludes them. Partial indexes are not
// expressible through gorm struct tags, hence raw DDL; the statement is
// valid on both sqlite and postgres.
func applySlotIndexDDL(db *gorm.DB) error {
	ddl := "CREATE UNIQUE INDEX IF NOT EXISTS udx_reservations_slot " +
		"ON reservations (desk_id, date) WHERE status <> 'cancelled'"
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("DDL failed on %q: %w", ddl, err)
	}
	return nil
}
