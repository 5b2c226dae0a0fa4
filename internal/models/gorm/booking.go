package gorm

import (
	"database/sql"
	"time"
)

// Booking is the migration model for the bookings table.
type Booking struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName  string         `gorm:"column:customer_name;type:text;not null"`
	CustomerPhone string         `gorm:"column:customer_phone;type:text;not null"`
	CustomerEmail sql.NullString `gorm:"column:customer_email;type:text"`
	FromLocation  string         `gorm:"column:from_location;type:text;not null"`
	ToLocation    string         `gorm:"column:to_location;type:text;not null"`
	PickupDate    time.Time      `gorm:"column:pickup_date;type:date;not null"`
	PickupTime    string         `gorm:"column:pickup_time;type:time;not null"`
	FlightNumber  sql.NullString `gorm:"column:flight_number;type:text"`
	Passengers    int            `gorm:"column:passengers;type:integer;default:1"`
	FleetID       sql.NullInt64  `gorm:"column:fleet_id;type:bigint;index"`
	RouteID       sql.NullInt64  `gorm:"column:route_id;type:bigint;index"`
	TotalPrice    float64        `gorm:"column:total_price;type:numeric(10,2);not null;default:0"`
	Status        string         `gorm:"column:status;type:text;not null;default:pending;index"`
	Notes         sql.NullString `gorm:"column:notes;type:text"`
	CreatedAt     time.Time      `gorm:"column:created_at;default:now();index"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;default:now()"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
