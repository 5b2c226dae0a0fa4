package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
)

// Mock BookingLedger
type mockBookingLedger struct {
	listFunc   func(ctx context.Context, status string) ([]entities.BookingWithRefs, error)
	createFunc func(ctx context.Context, req dtos.CreateBookingRequest) (*entities.Booking, error)
	updateFunc func(ctx context.Context, req dtos.UpdateBookingRequest) error
}

func (m *mockBookingLedger) List(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
	return m.listFunc(ctx, status)
}

func (m *mockBookingLedger) Create(ctx context.Context, req dtos.CreateBookingRequest) (*entities.Booking, error) {
	return m.createFunc(ctx, req)
}

func (m *mockBookingLedger) Update(ctx context.Context, req dtos.UpdateBookingRequest) error {
	return m.updateFunc(ctx, req)
}

func TestCreateBookingHandler_ReturnsComputedPrice(t *testing.T) {
	routeID := int64(7)
	mockService := &mockBookingLedger{
		createFunc: func(ctx context.Context, req dtos.CreateBookingRequest) (*entities.Booking, error) {
			return &entities.Booking{
				ID:         42,
				RouteID:    &routeID,
				TotalPrice: 100.0,
				Status:     "pending",
				CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	handler := CreateBookingHandler(mockService)

	payload := []byte(`{"customer_name":"X","customer_phone":"555","from_location":"A","to_location":"B","pickup_date":"2024-01-01","pickup_time":"10:00"}`)
	req := httptest.NewRequest("POST", "/bookings", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var body dtos.CreateBookingResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.BookingID != 42 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.TotalPrice != 100.0 {
		t.Fatalf("expected total_price 100.0, got %v", body.TotalPrice)
	}
	if body.CreatedAt != "2024-06-01T12:00:00Z" {
		t.Fatalf("unexpected created_at: %q", body.CreatedAt)
	}
}

func TestUpdateBookingHandler_NoFieldsToUpdate(t *testing.T) {
	mockService := &mockBookingLedger{
		updateFunc: func(ctx context.Context, req dtos.UpdateBookingRequest) error {
			return common.ValidationError("No fields to update")
		},
	}

	handler := UpdateBookingHandler(mockService)

	req := httptest.NewRequest("PUT", "/bookings", bytes.NewReader([]byte(`{"id":5}`)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "No fields to update" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestListBookingsHandler_StatusFilter(t *testing.T) {
	var gotStatus string
	mockService := &mockBookingLedger{
		listFunc: func(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
			gotStatus = status
			return []entities.BookingWithRefs{}, nil
		},
	}

	handler := ListBookingsHandler(mockService)

	req := httptest.NewRequest("GET", "/bookings?status=confirmed", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotStatus != "confirmed" {
		t.Fatalf("expected status filter confirmed, got %q", gotStatus)
	}
}

func TestListBookingsHandler_EnrichmentFieldsNullable(t *testing.T) {
	mockService := &mockBookingLedger{
		listFunc: func(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
			return []entities.BookingWithRefs{
				{
					Booking: entities.Booking{
						ID:            1,
						CustomerName:  "X",
						CustomerPhone: "555",
						FromLocation:  "A",
						ToLocation:    "B",
						PickupDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
						PickupTime:    "10:00:00",
						Passengers:    1,
						Status:        "pending",
					},
				},
			}, nil
		},
	}

	handler := ListBookingsHandler(mockService)

	req := httptest.NewRequest("GET", "/bookings", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var body map[string][]map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	bookings := body["bookings"]
	if len(bookings) != 1 {
		t.Fatalf("expected one booking, got %d", len(bookings))
	}
	if bookings[0]["fleet_name"] != nil {
		t.Fatalf("expected null fleet_name, got %v", bookings[0]["fleet_name"])
	}
	if bookings[0]["pickup_date"] != "2024-01-01" {
		t.Fatalf("unexpected pickup_date: %v", bookings[0]["pickup_date"])
	}
	if bookings[0]["pickup_time"] != "10:00:00" {
		t.Fatalf("unexpected pickup_time: %v", bookings[0]["pickup_time"])
	}
	if bookings[0]["from_location"] != nil || bookings[0]["to_location"] != nil {
		t.Fatalf("expected null route locations for unrouted booking, got %v / %v",
			bookings[0]["from_location"], bookings[0]["to_location"])
	}
	if bookings[0]["base_price"] != nil {
		t.Fatalf("expected null base_price for unrouted booking, got %v", bookings[0]["base_price"])
	}
	if _, ok := bookings[0]["route_from_location"]; ok {
		t.Fatal("unexpected route_from_location key")
	}
}

func TestListBookingsHandler_RoutedBookingCarriesRouteLocations(t *testing.T) {
	routeID := int64(7)
	from, to := "Airport", "Downtown"
	price := 80.0
	mockService := &mockBookingLedger{
		listFunc: func(ctx context.Context, status string) ([]entities.BookingWithRefs, error) {
			return []entities.BookingWithRefs{
				{
					Booking: entities.Booking{
						ID:            2,
						CustomerName:  "Y",
						CustomerPhone: "556",
						FromLocation:  "Airport Terminal 2",
						ToLocation:    "Downtown Hotel",
						PickupDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
						PickupTime:    "09:30:00",
						Passengers:    2,
						RouteID:       &routeID,
						TotalPrice:    80.0,
						Status:        "pending",
					},
					RouteFrom:  &from,
					RouteTo:    &to,
					RoutePrice: &price,
				},
			}, nil
		},
	}

	handler := ListBookingsHandler(mockService)

	req := httptest.NewRequest("GET", "/bookings", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var body map[string][]map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	bookings := body["bookings"]
	if len(bookings) != 1 {
		t.Fatalf("expected one booking, got %d", len(bookings))
	}
	if bookings[0]["from_location"] != "Airport" || bookings[0]["to_location"] != "Downtown" {
		t.Fatalf("expected route locations in response, got %v / %v",
			bookings[0]["from_location"], bookings[0]["to_location"])
	}
	if bookings[0]["base_price"] != 80.0 {
		t.Fatalf("unexpected base_price: %v", bookings[0]["base_price"])
	}
}
