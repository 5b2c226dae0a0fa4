package dtos

import (
	"time"

	"transferhub/backend/internal/models/entities"
)

type RouteResponse struct {
	ID              int64    `json:"id"`
	FromLocation    string   `json:"from_location"`
	ToLocation      string   `json:"to_location"`
	BasePrice       float64  `json:"base_price"`
	DistanceKm      *float64 `json:"distance_km"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          bool     `json:"active"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type FleetItemResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Seats           int      `json:"seats"`
	Features        []string `json:"features"`
	PriceMultiplier float64  `json:"price_multiplier"`
	ImageURL        *string  `json:"image_url"`
	Active          bool     `json:"active"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	// from_location, to_location and base_price carry the joined route
	// columns; null for an unrouted booking.
	FromLocation *string `json:"from_location"`
	ToLocation   *string `json:"to_location"`
	PickupDate   string  `json:"pickup_date"`
	PickupTime   string  `json:"pickup_time"`
	FlightNumber *string `json:"flight_number"`
	Passengers   int     `json:"passengers"`
	FleetID      *int64  `json:"fleet_id"`
	RouteID      *int64  `json:"route_id"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`

	FleetName     *string  `json:"fleet_name"`
	FleetCategory *string  `json:"fleet_category"`
	RoutePrice    *float64 `json:"base_price"`
}

type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type FleetListResponse struct {
	Fleet []FleetItemResponse `json:"fleet"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type CreateRouteResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type CreateFleetResponse struct {
	Success  bool    `json:"success"`
	ID       int64   `json:"id"`
	ImageURL *string `json:"image_url"`
}

type UpdateFleetResponse struct {
	Success  bool    `json:"success"`
	ImageURL *string `json:"image_url"`
}

type CreateBookingResponse struct {
	Success    bool    `json:"success"`
	BookingID  int64   `json:"booking_id"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func NewRouteResponse(r entities.Route) RouteResponse {
	return RouteResponse{
		ID:              r.ID,
		FromLocation:    r.FromLocation,
		ToLocation:      r.ToLocation,
		BasePrice:       r.BasePrice,
		DistanceKm:      r.DistanceKm,
		DurationMinutes: r.DurationMinutes,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func NewFleetItemResponse(f entities.FleetItem) FleetItemResponse {
	features := []string(f.Features)
	if features == nil {
		features = []string{}
	}
	return FleetItemResponse{
		ID:              f.ID,
		Name:            f.Name,
		Category:        f.Category,
		Seats:           f.Seats,
		Features:        features,
		PriceMultiplier: f.PriceMultiplier,
		ImageURL:        f.ImageURL,
		Active:          f.Active,
		CreatedAt:       f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       f.UpdatedAt.Format(time.RFC3339),
	}
}

func NewBookingResponse(b entities.BookingWithRefs) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		FromLocation:  b.RouteFrom,
		ToLocation:    b.RouteTo,
		PickupDate:    b.PickupDate.Format("2006-01-02"),
		PickupTime:    b.PickupTime,
		FlightNumber:  b.FlightNumber,
		Passengers:    b.Passengers,
		FleetID:       b.FleetID,
		RouteID:       b.RouteID,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
		FleetName:     b.FleetName,
		FleetCategory: b.FleetCategory,
		RoutePrice:    b.RoutePrice,
	}
}
