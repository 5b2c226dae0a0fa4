package repositories

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// updateBuilder collects column assignments for a partial update. Column
// names only ever come from the typed patch structs below, never from
// request input; values are always bound parameters.
type updateBuilder struct {
	assignments []string
	args        []interface{}
}

func (b *updateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Build renders the UPDATE statement, stamping updated_at alongside the
// patched columns.
func (b *updateBuilder) Build(table string, id int64) (string, []interface{}) {
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = now() WHERE id = $%d",
		table, strings.Join(b.assignments, ", "), len(b.args),
	)
	return query, b.args
}

// RoutePatch holds the updatable route fields; nil means leave unchanged.
type RoutePatch struct {
	FromLocation    *string
	ToLocation      *string
	BasePrice       *float64
	DistanceKm      *float64
	DurationMinutes *int
	Active          *bool
}

func (p RoutePatch) Empty() bool {
	return p.FromLocation == nil && p.ToLocation == nil && p.BasePrice == nil &&
		p.DistanceKm == nil && p.DurationMinutes == nil && p.Active == nil
}

func (p RoutePatch) builder() *updateBuilder {
	b := &updateBuilder{}
	if p.FromLocation != nil {
		b.Set("from_location", *p.FromLocation)
	}
	if p.ToLocation != nil {
		b.Set("to_location", *p.ToLocation)
	}
	if p.BasePrice != nil {
		b.Set("base_price", *p.BasePrice)
	}
	if p.DistanceKm != nil {
		b.Set("distance_km", *p.DistanceKm)
	}
	if p.DurationMinutes != nil {
		b.Set("duration_minutes", *p.DurationMinutes)
	}
	if p.Active != nil {
		b.Set("active", *p.Active)
	}
	return b
}

// FleetPatch holds the updatable fleet fields; nil means leave unchanged.
type FleetPatch struct {
	Name            *string
	Category        *string
	Seats           *int
	Features        *[]string
	PriceMultiplier *float64
	Active          *bool
	ImageURL        *string
}

func (p FleetPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Seats == nil && p.Features == nil &&
		p.PriceMultiplier == nil && p.Active == nil && p.ImageURL == nil
}

func (p FleetPatch) builder() *updateBuilder {
	b := &updateBuilder{}
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.Category != nil {
		b.Set("category", *p.Category)
	}
	if p.Seats != nil {
		b.Set("seats", *p.Seats)
	}
	if p.Features != nil {
		b.Set("features", pq.Array(*p.Features))
	}
	if p.PriceMultiplier != nil {
		b.Set("price_multiplier", *p.PriceMultiplier)
	}
	if p.Active != nil {
		b.Set("active", *p.Active)
	}
	if p.ImageURL != nil {
		b.Set("image_url", *p.ImageURL)
	}
	return b
}

// BookingPatch holds the two booking fields that stay mutable after
// creation. The Set flags track key presence separately from the value, so
// an explicit null writes NULL instead of being skipped.
type BookingPatch struct {
	Status    *string
	StatusSet bool
	Notes     *string
	NotesSet  bool
}

func (p BookingPatch) Empty() bool {
	return !p.StatusSet && !p.NotesSet
}

func (p BookingPatch) builder() *updateBuilder {
	b := &updateBuilder{}
	if p.StatusSet {
		b.Set("status", p.Status)
	}
	if p.NotesSet {
		b.Set("notes", p.Notes)
	}
	return b
}
