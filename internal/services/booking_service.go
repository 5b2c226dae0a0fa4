package services

import (
	"context"
	"fmt"
	"time"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/db/repositories"
	"transferhub/backend/internal/metrics"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
)

// RoutePricer resolves the first active route for a location pair.
type RoutePricer interface {
	FindForPricing(ctx context.Context, from, to string) (*entities.Route, error)
}

// MultiplierFinder resolves the price multiplier of an active fleet item.
type MultiplierFinder interface {
	FindMultiplier(ctx context.Context, id int64) (*float64, error)
}

// BookingStore is the persistence surface the ledger needs.
type BookingStore interface {
	List(ctx context.Context, status string) ([]entities.BookingWithRefs, error)
	Insert(ctx context.Context, booking *entities.Booking) error
	Update(ctx context.Context, id int64, patch repositories.BookingPatch) error
}

type BookingService struct {
	bookings BookingStore
	routes   RoutePricer
	fleet    MultiplierFinder
	metrics  *metrics.Registry
}

func NewBookingService(bookings BookingStore, routes RoutePricer, fleet MultiplierFinder, reg *metrics.Registry) *BookingService {
	return &BookingService{
		bookings: bookings,
		routes:   routes,
		fleet:    fleet,
		metrics:  reg,
	}
}

func (s *BookingService) List(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
	bookings, err := s.bookings.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Create prices and inserts a new booking. An unresolvable route prices at
// zero and an unresolvable fleet item keeps the multiplier at 1.0; neither
// is an error.
func (s *BookingService) Create(ctx context.Context, req dtos.CreateBookingRequest) (*entities.Booking, error) {
	required := []struct {
		name  string
		value string
	}{
		{"customer_name", req.CustomerName},
		{"customer_phone", req.CustomerPhone},
		{"from_location", req.FromLocation},
		{"to_location", req.ToLocation},
		{"pickup_date", req.PickupDate},
		{"pickup_time", req.PickupTime},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, common.ValidationError("Missing required field: %s", field.name)
		}
	}

	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return nil, common.ValidationError("Invalid pickup_date: expected YYYY-MM-DD")
	}
	if err := validatePickupTime(req.PickupTime); err != nil {
		return nil, common.ValidationError("Invalid pickup_time: expected HH:MM")
	}

	route, err := s.routes.FindForPricing(ctx, req.FromLocation, req.ToLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve route: %w", err)
	}

	var routeID *int64
	basePrice := 0.0
	if route != nil {
		routeID = &route.ID
		basePrice = route.BasePrice
	}

	multiplier := 1.0
	if req.FleetID != nil {
		found, err := s.fleet.FindMultiplier(ctx, *req.FleetID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve fleet item: %w", err)
		}
		if found != nil {
			multiplier = *found
		}
	}

	passengers := 1
	if req.Passengers != nil {
		passengers = *req.Passengers
	}

	booking := &entities.Booking{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		PickupDate:    pickupDate,
		PickupTime:    req.PickupTime,
		FlightNumber:  req.FlightNumber,
		Passengers:    passengers,
		FleetID:       req.FleetID,
		RouteID:       routeID,
		TotalPrice:    basePrice * multiplier,
		Status:        "pending",
		Notes:         req.Notes,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCreatedTotal.Inc()
	}
	return booking, nil
}

// Update patches status and notes; everything else is immutable after
// creation.
func (s *BookingService) Update(ctx context.Context, req dtos.UpdateBookingRequest) error {
	if req.ID == 0 {
		return common.ValidationError("Missing booking id")
	}

	patch := repositories.BookingPatch{
		Status:    req.Status.Value,
		StatusSet: req.Status.Set,
		Notes:     req.Notes.Value,
		NotesSet:  req.Notes.Set,
	}
	if patch.Empty() {
		return common.ValidationError("No fields to update")
	}

	if err := s.bookings.Update(ctx, req.ID, patch); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

func validatePickupTime(value string) error {
	if _, err := time.Parse("15:04", value); err == nil {
		return nil
	}
	_, err := time.Parse("15:04:05", value)
	return err
}
