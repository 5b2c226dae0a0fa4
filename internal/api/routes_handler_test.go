package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
	"transferhub/backend/internal/services"
)

// Mock RouteCatalog
type mockRouteCatalog struct {
	listFunc   func(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error)
	createFunc func(ctx context.Context, req dtos.CreateRouteRequest) (int64, error)
	updateFunc func(ctx context.Context, req dtos.UpdateRouteRequest) error
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockRouteCatalog) List(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error) {
	return m.listFunc(ctx, params)
}

func (m *mockRouteCatalog) Create(ctx context.Context, req dtos.CreateRouteRequest) (int64, error) {
	return m.createFunc(ctx, req)
}

func (m *mockRouteCatalog) Update(ctx context.Context, req dtos.UpdateRouteRequest) error {
	return m.updateFunc(ctx, req)
}

func (m *mockRouteCatalog) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

func TestListRoutesHandler_PassesFilters(t *testing.T) {
	var got services.ListRoutesParams
	mockService := &mockRouteCatalog{
		listFunc: func(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error) {
			got = params
			return []entities.Route{}, nil
		},
	}

	handler := ListRoutesHandler(mockService)

	req := httptest.NewRequest("GET", "/routes?from=Airport&to=Downtown", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got.From != "Airport" || got.To != "Downtown" || got.All {
		t.Fatalf("unexpected params: %+v", got)
	}

	var body dtos.RouteListResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Routes == nil {
		t.Fatal("routes must serialize as an empty array, not null")
	}
}

func TestListRoutesHandler_AllowOriginWithoutOriginHeader(t *testing.T) {
	mockService := &mockRouteCatalog{
		listFunc: func(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error) {
			return []entities.Route{}, nil
		},
	}

	handler := ListRoutesHandler(mockService)

	// no Origin header on the request
	req := httptest.NewRequest("GET", "/routes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestCreateRouteHandler_Success(t *testing.T) {
	mockService := &mockRouteCatalog{
		createFunc: func(ctx context.Context, req dtos.CreateRouteRequest) (int64, error) {
			return 5, nil
		},
	}

	handler := CreateRouteHandler(mockService)

	payload := []byte(`{"from_location":"A","to_location":"B","base_price":100}`)
	req := httptest.NewRequest("POST", "/routes", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var body dtos.CreateRouteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || body.ID != 5 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateRouteHandler_ValidationErrorMapsTo400(t *testing.T) {
	mockService := &mockRouteCatalog{
		createFunc: func(ctx context.Context, req dtos.CreateRouteRequest) (int64, error) {
			return 0, common.ValidationError("Missing required field: from_location")
		},
	}

	handler := CreateRouteHandler(mockService)

	req := httptest.NewRequest("POST", "/routes", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Missing required field: from_location" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestCreateRouteHandler_MalformedJSON(t *testing.T) {
	handler := CreateRouteHandler(&mockRouteCatalog{})

	req := httptest.NewRequest("POST", "/routes", bytes.NewReader([]byte(`{not json`)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDeleteRouteHandler_ParsesQueryID(t *testing.T) {
	var gotID int64
	mockService := &mockRouteCatalog{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}

	handler := DeleteRouteHandler(mockService)

	req := httptest.NewRequest("DELETE", "/routes?id=12", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if gotID != 12 {
		t.Fatalf("expected id 12, got %d", gotID)
	}
}

func TestDeleteRouteHandler_MissingID(t *testing.T) {
	mockService := &mockRouteCatalog{
		deleteFunc: func(ctx context.Context, id int64) error {
			if id == 0 {
				return common.ValidationError("Missing route id")
			}
			return nil
		},
	}

	handler := DeleteRouteHandler(mockService)

	req := httptest.NewRequest("DELETE", "/routes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestInternalErrorMapsTo500(t *testing.T) {
	mockService := &mockRouteCatalog{
		listFunc: func(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error) {
			return nil, context.DeadlineExceeded
		},
	}

	handler := ListRoutesHandler(mockService)

	req := httptest.NewRequest("GET", "/routes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
}
