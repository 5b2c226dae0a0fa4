package api

import (
	"transferhub/backend/internal/db/repositories"
	"transferhub/backend/internal/metrics"
	"transferhub/backend/internal/services"
	"transferhub/backend/internal/storage"

	"github.com/jmoiron/sqlx"
)

// Dependencies wires repositories and services for the handlers.
type Dependencies struct {
	Routes   *services.RouteService
	Fleet    *services.FleetService
	Bookings *services.BookingService
}

func InitDependencies(db *sqlx.DB, images storage.ImageStore, reg *metrics.Registry) *Dependencies {
	routeRepo := repositories.NewRouteRepository(db)
	fleetRepo := repositories.NewFleetRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	return &Dependencies{
		Routes:   services.NewRouteService(routeRepo),
		Fleet:    services.NewFleetService(fleetRepo, images, reg),
		Bookings: services.NewBookingService(bookingRepo, routeRepo, fleetRepo, reg),
	}
}
