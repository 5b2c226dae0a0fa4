package db

import (
	"fmt"

	"transferhub/backend/internal/models/gorm"

	"gorm.io/driver/postgres"
	gormlib "gorm.io/gorm"
)

// InitSchema opens a GORM connection and migrates the catalog and ledger
// tables. Repositories keep using the sqlx pool; GORM is only the migration
// vehicle here.
func InitSchema(dsn string) error {
	orm, err := gormlib.Open(postgres.Open(dsn), &gormlib.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := orm.AutoMigrate(&gorm.Route{}, &gorm.FleetItem{}, &gorm.Booking{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
