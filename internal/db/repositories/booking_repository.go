package repositories

import (
	"context"

	"transferhub/backend/internal/constants"
	"transferhub/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db}
}

// List returns bookings joined with their fleet item and route, newest
// first. An empty status returns every booking.
func (r *BookingRepository) List(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
	bookings := []entities.BookingWithRefs{}
	if status != "" {
		err := r.db.SelectContext(ctx, &bookings, constants.ListBookingsByStatus, status)
		return bookings, err
	}
	err := r.db.SelectContext(ctx, &bookings, constants.ListBookings)
	return bookings, err
}

func (r *BookingRepository) Insert(ctx context.Context, booking *entities.Booking) error {
	return r.db.QueryRowxContext(ctx, constants.InsertBooking,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.CustomerEmail,
		booking.FromLocation,
		booking.ToLocation,
		booking.PickupDate,
		booking.PickupTime,
		booking.FlightNumber,
		booking.Passengers,
		booking.FleetID,
		booking.RouteID,
		booking.TotalPrice,
		booking.Status,
		booking.Notes,
	).Scan(&booking.ID, &booking.CreatedAt)
}

func (r *BookingRepository) Update(ctx context.Context, id int64, patch BookingPatch) error {
	query, args := patch.builder().Build("bookings", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
