package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutePatch_Empty(t *testing.T) {
	assert.True(t, RoutePatch{}.Empty())

	active := false
	assert.False(t, RoutePatch{Active: &active}.Empty())
}

func TestRoutePatch_BuildsParameterizedUpdate(t *testing.T) {
	from := "Airport"
	price := 120.5
	patch := RoutePatch{FromLocation: &from, BasePrice: &price}

	query, args := patch.builder().Build("routes", 7)

	assert.Equal(t, "UPDATE routes SET from_location = $1, base_price = $2, updated_at = now() WHERE id = $3", query)
	require.Len(t, args, 3)
	assert.Equal(t, "Airport", args[0])
	assert.Equal(t, 120.5, args[1])
	assert.Equal(t, int64(7), args[2])
}

func TestFleetPatch_ImageOnly(t *testing.T) {
	url := "https://cdn.example.com/fleet/a.jpg"
	patch := FleetPatch{ImageURL: &url}

	assert.False(t, patch.Empty())

	query, args := patch.builder().Build("fleet", 3)
	assert.Equal(t, "UPDATE fleet SET image_url = $1, updated_at = now() WHERE id = $2", query)
	assert.Equal(t, url, args[0])
}

func TestBookingPatch_StatusAndNotes(t *testing.T) {
	status := "confirmed"
	notes := "called back"
	patch := BookingPatch{Status: &status, StatusSet: true, Notes: &notes, NotesSet: true}

	query, args := patch.builder().Build("bookings", 9)
	assert.Equal(t, "UPDATE bookings SET status = $1, notes = $2, updated_at = now() WHERE id = $3", query)
	require.Len(t, args, 3)
	assert.Equal(t, &status, args[0])
	assert.Equal(t, &notes, args[1])
}

func TestBookingPatch_NullNotesWritesNull(t *testing.T) {
	patch := BookingPatch{NotesSet: true}

	assert.False(t, patch.Empty())

	query, args := patch.builder().Build("bookings", 9)
	assert.Equal(t, "UPDATE bookings SET notes = $1, updated_at = now() WHERE id = $2", query)
	require.Len(t, args, 2)
	assert.Nil(t, args[0])
}

func TestBookingPatch_Empty(t *testing.T) {
	assert.True(t, BookingPatch{}.Empty())

	notes := ""
	// an explicit empty string still counts as a supplied field
	assert.False(t, BookingPatch{Notes: &notes, NotesSet: true}.Empty())
}
