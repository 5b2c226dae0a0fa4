package repositories

import (
	"context"
	"database/sql"
	"errors"

	"transferhub/backend/internal/constants"
	"transferhub/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type FleetRepository struct {
	db *sqlx.DB
}

func NewFleetRepository(db *sqlx.DB) *FleetRepository {
	return &FleetRepository{db}
}

func (r *FleetRepository) ListActive(ctx context.Context) ([]entities.FleetItem, error) {
	items := []entities.FleetItem{}
	err := r.db.SelectContext(ctx, &items, constants.ListActiveFleet)
	return items, err
}

func (r *FleetRepository) ListAll(ctx context.Context) ([]entities.FleetItem, error) {
	items := []entities.FleetItem{}
	err := r.db.SelectContext(ctx, &items, constants.ListAllFleet)
	return items, err
}

// FindMultiplier returns the price multiplier of an active fleet item, or
// nil when the id does not resolve to one.
func (r *FleetRepository) FindMultiplier(ctx context.Context, id int64) (*float64, error) {
	var multiplier float64
	err := r.db.QueryRowxContext(ctx, constants.FindFleetMultiplier, id).Scan(&multiplier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &multiplier, nil
}

func (r *FleetRepository) Insert(ctx context.Context, item *entities.FleetItem) error {
	return r.db.QueryRowxContext(ctx, constants.InsertFleetItem,
		item.Name,
		item.Category,
		item.Seats,
		pq.Array(item.Features),
		item.PriceMultiplier,
		item.ImageURL,
		item.Active,
	).Scan(&item.ID)
}

func (r *FleetRepository) Update(ctx context.Context, id int64, patch FleetPatch) error {
	query, args := patch.builder().Build("fleet", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// SoftDelete deactivates the fleet item; repeated calls are no-ops.
func (r *FleetRepository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, constants.SoftDeleteFleetItem, id)
	return err
}
