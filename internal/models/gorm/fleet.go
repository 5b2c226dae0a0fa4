package gorm

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// FleetItem is the migration model for the fleet table.
type FleetItem struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name            string         `gorm:"column:name;type:text;not null"`
	Category        string         `gorm:"column:category;type:text;not null;index"`
	Seats           int            `gorm:"column:seats;type:integer;not null"`
	Features        pq.StringArray `gorm:"column:features;type:text[]"`
	PriceMultiplier float64        `gorm:"column:price_multiplier;type:numeric(5,2);default:1.0"`
	ImageURL        sql.NullString `gorm:"column:image_url;type:text"`
	Active          bool           `gorm:"column:active;default:true"`
	CreatedAt       time.Time      `gorm:"column:created_at;default:now()"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;default:now()"`
}

// TableName specifies the table name for GORM
func (FleetItem) TableName() string {
	return "fleet"
}
