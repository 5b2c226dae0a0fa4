package dtos

import "encoding/json"

// Create and update payloads. Optional and patchable fields are pointers so
// an absent key can be told apart from a zero value.

// NullableString tells apart an absent key, an explicit null and a string
// value. Set is true whenever the key was present in the payload.
type NullableString struct {
	Set   bool
	Value *string
}

func (s *NullableString) UnmarshalJSON(data []byte) error {
	s.Set = true
	return json.Unmarshal(data, &s.Value)
}

type CreateRouteRequest struct {
	FromLocation    *string  `json:"from_location"`
	ToLocation      *string  `json:"to_location"`
	BasePrice       *float64 `json:"base_price"`
	DistanceKm      *float64 `json:"distance_km"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          *bool    `json:"active"`
}

type UpdateRouteRequest struct {
	ID              int64    `json:"id"`
	FromLocation    *string  `json:"from_location"`
	ToLocation      *string  `json:"to_location"`
	BasePrice       *float64 `json:"base_price"`
	DistanceKm      *float64 `json:"distance_km"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          *bool    `json:"active"`
}

type CreateFleetRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Seats           *int     `json:"seats"`
	Features        []string `json:"features"`
	PriceMultiplier *float64 `json:"price_multiplier"`
	Active          *bool    `json:"active"`
	ImageBase64     string   `json:"image_base64"`
	ImageType       string   `json:"image_type"`
}

type UpdateFleetRequest struct {
	ID              int64     `json:"id"`
	Name            *string   `json:"name"`
	Category        *string   `json:"category"`
	Seats           *int      `json:"seats"`
	Features        *[]string `json:"features"`
	PriceMultiplier *float64  `json:"price_multiplier"`
	Active          *bool     `json:"active"`
	ImageBase64     string    `json:"image_base64"`
	ImageType       string    `json:"image_type"`
}

type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	FromLocation  string  `json:"from_location"`
	ToLocation    string  `json:"to_location"`
	PickupDate    string  `json:"pickup_date"`
	PickupTime    string  `json:"pickup_time"`
	FlightNumber  *string `json:"flight_number"`
	Passengers    *int    `json:"passengers"`
	FleetID       *int64  `json:"fleet_id"`
	Notes         *string `json:"notes"`
}

// UpdateBookingRequest patches the two mutable booking fields. An explicit
// null clears the column, so both use the presence-tracking type.
type UpdateBookingRequest struct {
	ID     int64          `json:"id"`
	Status NullableString `json:"status"`
	Notes  NullableString `json:"notes"`
}
