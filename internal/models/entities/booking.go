package entities

import "time"

type Booking struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	CustomerEmail *string   `db:"customer_email"`
	FromLocation  string    `db:"from_location"`
	ToLocation    string    `db:"to_location"`
	PickupDate    time.Time `db:"pickup_date"`
	PickupTime    string    `db:"pickup_time"`
	FlightNumber  *string   `db:"flight_number"`
	Passengers    int       `db:"passengers"`
	FleetID       *int64    `db:"fleet_id"`
	RouteID       *int64    `db:"route_id"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	Notes         *string   `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// BookingWithRefs is a booking row joined with its fleet item and route.
// Join columns are pointers because both joins are outer.
type BookingWithRefs struct {
	Booking
	FleetName     *string  `db:"fleet_name"`
	FleetCategory *string  `db:"fleet_category"`
	RouteFrom     *string  `db:"route_from"`
	RouteTo       *string  `db:"route_to"`
	RoutePrice    *float64 `db:"route_price"`
}
