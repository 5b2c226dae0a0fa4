package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
)

// BookingLedger is the service surface the booking handlers depend on.
type BookingLedger interface {
	List(ctx context.Context, status string) ([]entities.BookingWithRefs, error)
	Create(ctx context.Context, req dtos.CreateBookingRequest) (*entities.Booking, error)
	Update(ctx context.Context, req dtos.UpdateBookingRequest) error
}

// ListBookingsHandler handles GET /bookings with an optional status filter.
func ListBookingsHandler(svc BookingLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		bookings, err := svc.List(r.Context(), status)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := dtos.BookingListResponse{Bookings: make([]dtos.BookingResponse, 0, len(bookings))}
		for _, booking := range bookings {
			resp.Bookings = append(resp.Bookings, dtos.NewBookingResponse(booking))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// CreateBookingHandler handles POST /bookings, pricing the booking against
// the route and fleet catalogs.
func CreateBookingHandler(svc BookingLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, common.ValidationError("Invalid JSON body"))
			return
		}

		booking, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, dtos.CreateBookingResponse{
			Success:    true,
			BookingID:  booking.ID,
			TotalPrice: booking.TotalPrice,
			CreatedAt:  booking.CreatedAt.Format(time.RFC3339),
		})
	}
}

// UpdateBookingHandler handles PUT /bookings; only status and notes are
// mutable.
func UpdateBookingHandler(svc BookingLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, common.ValidationError("Invalid JSON body"))
			return
		}

		if err := svc.Update(r.Context(), req); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
	}
}
