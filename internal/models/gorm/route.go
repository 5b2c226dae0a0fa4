package gorm

import (
	"database/sql"
	"time"
)

// Route is the migration model for the routes table.
type Route struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	FromLocation    string          `gorm:"column:from_location;type:text;not null;index:idx_routes_locations"`
	ToLocation      string          `gorm:"column:to_location;type:text;not null;index:idx_routes_locations"`
	BasePrice       float64         `gorm:"column:base_price;type:numeric(10,2);not null"`
	DistanceKm      sql.NullFloat64 `gorm:"column:distance_km;type:numeric(10,2)"`
	DurationMinutes sql.NullInt64   `gorm:"column:duration_minutes;type:integer"`
	Active          bool            `gorm:"column:active;default:true"`
	CreatedAt       time.Time       `gorm:"column:created_at;default:now()"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;default:now()"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}
