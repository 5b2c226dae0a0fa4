package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
)

// FleetCatalog is the service surface the fleet handlers depend on.
type FleetCatalog interface {
	List(ctx context.Context, all bool) ([]entities.FleetItem, error)
	Create(ctx context.Context, req dtos.CreateFleetRequest) (int64, *string, error)
	Update(ctx context.Context, req dtos.UpdateFleetRequest) (*string, error)
	Delete(ctx context.Context, id int64) error
}

// ListFleetHandler handles GET /fleet
func ListFleetHandler(svc FleetCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := r.URL.Query().Get("all") == "true"

		items, err := svc.List(r.Context(), all)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := dtos.FleetListResponse{Fleet: make([]dtos.FleetItemResponse, 0, len(items))}
		for _, item := range items {
			resp.Fleet = append(resp.Fleet, dtos.NewFleetItemResponse(item))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// CreateFleetHandler handles POST /fleet, uploading the optional image
// before the insert.
func CreateFleetHandler(svc FleetCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateFleetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, common.ValidationError("Invalid JSON body"))
			return
		}

		id, imageURL, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, dtos.CreateFleetResponse{Success: true, ID: id, ImageURL: imageURL})
	}
}

// UpdateFleetHandler handles PUT /fleet
func UpdateFleetHandler(svc FleetCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateFleetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, common.ValidationError("Invalid JSON body"))
			return
		}

		imageURL, err := svc.Update(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dtos.UpdateFleetResponse{Success: true, ImageURL: imageURL})
	}
}

// DeleteFleetHandler handles DELETE /fleet?id=N with a soft delete.
func DeleteFleetHandler(svc FleetCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
	}
}
