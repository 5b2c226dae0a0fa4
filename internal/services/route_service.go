package services

import (
	"context"
	"fmt"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/db/repositories"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
)

// RouteStore is the persistence surface the route catalog needs.
type RouteStore interface {
	ListActive(ctx context.Context) ([]entities.Route, error)
	ListAll(ctx context.Context) ([]entities.Route, error)
	FindByLocations(ctx context.Context, from, to string) ([]entities.Route, error)
	Insert(ctx context.Context, route *entities.Route) error
	Update(ctx context.Context, id int64, patch repositories.RoutePatch) error
	SoftDelete(ctx context.Context, id int64) error
}

// ListRoutesParams carries the query filters of a route listing.
type ListRoutesParams struct {
	From string
	To   string
	All  bool
}

type RouteService struct {
	routes RouteStore
}

func NewRouteService(routes RouteStore) *RouteService {
	return &RouteService{routes: routes}
}

func (s *RouteService) List(ctx context.Context, params ListRoutesParams) ([]entities.Route, error) {
	var (
		routes []entities.Route
		err    error
	)
	switch {
	case params.From != "" && params.To != "":
		routes, err = s.routes.FindByLocations(ctx, params.From, params.To)
	case params.All:
		routes, err = s.routes.ListAll(ctx)
	default:
		routes, err = s.routes.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

func (s *RouteService) Create(ctx context.Context, req dtos.CreateRouteRequest) (int64, error) {
	if req.FromLocation == nil {
		return 0, common.ValidationError("Missing required field: from_location")
	}
	if req.ToLocation == nil {
		return 0, common.ValidationError("Missing required field: to_location")
	}
	if req.BasePrice == nil {
		return 0, common.ValidationError("Missing required field: base_price")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	route := &entities.Route{
		FromLocation:    *req.FromLocation,
		ToLocation:      *req.ToLocation,
		BasePrice:       *req.BasePrice,
		DistanceKm:      req.DistanceKm,
		DurationMinutes: req.DurationMinutes,
		Active:          active,
	}

	if err := s.routes.Insert(ctx, route); err != nil {
		return 0, fmt.Errorf("failed to insert route: %w", err)
	}
	return route.ID, nil
}

func (s *RouteService) Update(ctx context.Context, req dtos.UpdateRouteRequest) error {
	if req.ID == 0 {
		return common.ValidationError("Missing route id")
	}

	patch := repositories.RoutePatch{
		FromLocation:    req.FromLocation,
		ToLocation:      req.ToLocation,
		BasePrice:       req.BasePrice,
		DistanceKm:      req.DistanceKm,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	}
	if patch.Empty() {
		return common.ValidationError("No fields to update")
	}

	if err := s.routes.Update(ctx, req.ID, patch); err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}
	return nil
}

func (s *RouteService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return common.ValidationError("Missing route id")
	}
	if err := s.routes.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	return nil
}
