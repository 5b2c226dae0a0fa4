package entities

import (
	"time"

	"github.com/lib/pq"
)

type FleetItem struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Category        string         `db:"category"`
	Seats           int            `db:"seats"`
	Features        pq.StringArray `db:"features"`
	PriceMultiplier float64        `db:"price_multiplier"`
	ImageURL        *string        `db:"image_url"`
	Active          bool           `db:"active"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}
