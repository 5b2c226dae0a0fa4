package repositories

import (
	"context"
	"database/sql"
	"errors"

	"transferhub/backend/internal/constants"
	"transferhub/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type RouteRepository struct {
	db *sqlx.DB
}

func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db}
}

func (r *RouteRepository) ListActive(ctx context.Context) ([]entities.Route, error) {
	routes := []entities.Route{}
	err := r.db.SelectContext(ctx, &routes, constants.ListActiveRoutes)
	return routes, err
}

func (r *RouteRepository) ListAll(ctx context.Context) ([]entities.Route, error) {
	routes := []entities.Route{}
	err := r.db.SelectContext(ctx, &routes, constants.ListAllRoutes)
	return routes, err
}

// FindByLocations returns the active routes matching the exact location pair.
func (r *RouteRepository) FindByLocations(ctx context.Context, from, to string) ([]entities.Route, error) {
	routes := []entities.Route{}
	err := r.db.SelectContext(ctx, &routes, constants.FindActiveRoutesByLocations, from, to)
	return routes, err
}

// FindForPricing returns the first active route for the pair, or nil when no
// route matches.
func (r *RouteRepository) FindForPricing(ctx context.Context, from, to string) (*entities.Route, error) {
	var route entities.Route
	err := r.db.QueryRowxContext(ctx, constants.FindRouteForPricing, from, to).
		Scan(&route.ID, &route.BasePrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *RouteRepository) Insert(ctx context.Context, route *entities.Route) error {
	return r.db.QueryRowxContext(ctx, constants.InsertRoute,
		route.FromLocation,
		route.ToLocation,
		route.BasePrice,
		route.DistanceKm,
		route.DurationMinutes,
		route.Active,
	).Scan(&route.ID)
}

func (r *RouteRepository) Update(ctx context.Context, id int64, patch RoutePatch) error {
	query, args := patch.builder().Build("routes", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// SoftDelete deactivates the route; repeated calls are no-ops.
func (r *RouteRepository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.SoftDeleteRoute, id)
	return err
}
