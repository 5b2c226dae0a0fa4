package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
	"transferhub/backend/internal/services"
)

// RouteCatalog is the service surface the route handlers depend on.
type RouteCatalog interface {
	List(ctx context.Context, params services.ListRoutesParams) ([]entities.Route, error)
	Create(ctx context.Context, req dtos.CreateRouteRequest) (int64, error)
	Update(ctx context.Context, req dtos.UpdateRouteRequest) error
	Delete(ctx context.Context, id int64) error
}

// ListRoutesHandler handles GET /routes
//
// from+to filter to the exact active pair, all=true includes deactivated
// routes, default lists active routes only.
func ListRoutesHandler(svc RouteCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := services.ListRoutesParams{
			From: r.URL.Query().Get("from"),
			To:   r.URL.Query().Get("to"),
			All:  r.URL.Query().Get("all") == "true",
		}

		routes, err := svc.List(r.Context(), params)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := dtos.RouteListResponse{Routes: make([]dtos.RouteResponse, 0, len(routes))}
		for _, route := range routes {
			resp.Routes = append(resp.Routes, dtos.NewRouteResponse(route))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// CreateRouteHandler handles POST /routes
func CreateRouteHandler(svc RouteCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateRouteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, common.ValidationError("Invalid JSON body"))
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, dtos.CreateRouteResponse{Success: true, ID: id})
	}
}

// UpdateRouteHandler handles PUT /routes
func UpdateRouteHandler(svc RouteCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateRouteRequest
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

// DeleteRouteHandler handles DELETE /routes?id=N with a soft delete.
func DeleteRouteHandler(svc RouteCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err := svc.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dtos.SuccessResponse{Success: true})
	}
}
