package constants

const (
	ListActiveRoutes = `
	SELECT * FROM routes WHERE active = true ORDER BY from_location, to_location
	`

	ListAllRoutes = `
	SELECT * FROM routes ORDER BY from_location, to_location
	`

	FindActiveRoutesByLocations = `
	SELECT * FROM routes WHERE from_location = $1 AND to_location = $2 AND active = true
	`

	FindRouteForPricing = `
	SELECT id, base_price FROM routes
	WHERE from_location = $1 AND to_location = $2 AND active = true
	LIMIT 1
	`

	InsertRoute = `
	INSERT INTO routes (from_location, to_location, base_price, distance_km, duration_minutes, active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`

	SoftDeleteRoute = `
	UPDATE routes SET active = false WHERE id = $1
	`

	ListActiveFleet = `
	SELECT * FROM fleet WHERE active = true ORDER BY category, name
	`

	ListAllFleet = `
	SELECT * FROM fleet ORDER BY category, name
	`

	FindFleetMultiplier = `
	SELECT price_multiplier FROM fleet WHERE id = $1 AND active = true
	`

	InsertFleetItem = `
	INSERT INTO fleet (name, category, seats, features, price_multiplier, image_url, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`

	SoftDeleteFleetItem = `
	UPDATE fleet SET active = false WHERE id = $1
	`

	ListBookings = `
	SELECT b.*, f.name AS fleet_name, f.category AS fleet_category,
	       r.from_location AS route_from, r.to_location AS route_to, r.base_price AS route_price
	FROM bookings b
	LEFT JOIN fleet f ON b.fleet_id = f.id
	LEFT JOIN routes r ON b.route_id = r.id
	ORDER BY b.created_at DESC
	`

	ListBookingsByStatus = `
	SELECT b.*, f.name AS fleet_name, f.category AS fleet_category,
	       r.from_location AS route_from, r.to_location AS route_to, r.base_price AS route_price
	FROM bookings b
	LEFT JOIN fleet f ON b.fleet_id = f.id
	LEFT JOIN routes r ON b.route_id = r.id
	WHERE b.status = $1
	ORDER BY b.created_at DESC
	`

	InsertBooking = `
	INSERT INTO bookings (customer_name, customer_phone, customer_email, from_location, to_location,
	                      pickup_date, pickup_time, flight_number, passengers, fleet_id, route_id,
	                      total_price, status, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING id, created_at
	`
)
