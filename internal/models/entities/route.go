package entities

import "time"

type Route struct {
	ID              int64     `db:"id"`
	FromLocation    string    `db:"from_location"`
	ToLocation      string    `db:"to_location"`
	BasePrice       float64   `db:"base_price"`
	DistanceKm      *float64  `db:"distance_km"`
	DurationMinutes *int      `db:"duration_minutes"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
