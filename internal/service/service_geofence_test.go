package service

import (
	"testing"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGeofence_Check(t *testing.T) {
	g := NewGeofenceService(config.Venue{
		Latitude:     ptr(19.0760),
		Longitude:    ptr(72.8777),
		RadiusMeters: 100,
	})

	t.Run("venue center is inside", func(t *testing.T) {
		got := g.Check(19.0760, 72.8777)
		assert.True(t, got.Inside)
		assert.Equal(t, 0, got.DistanceMeters)
	})

	t.Run("about 55 m north is inside", func(t *testing.T) {
		got := g.Check(19.0765, 72.8777)
		assert.True(t, got.Inside)
		assert.InDelta(t, 56, got.DistanceMeters, 1)
	})

	t.Run("about 1.1 km north is outside", func(t *testing.T) {
		got := g.Check(19.0860, 72.8777)
		assert.False(t, got.Inside)
		assert.InDelta(t, 1112, got.DistanceMeters, 2)
	})
}

func TestGeofence_BoundaryIsInside(t *testing.T) {
	d := DistanceMeters(0, 0, 0.001, 0)
	g := NewGeofenceService(config.Venue{Latitude: ptr(0.0), Longitude: ptr(0.0), RadiusMeters: d})

	assert.True(t, g.Check(0.001, 0).Inside)

	g = NewGeofenceService(config.Venue{Latitude: ptr(0.0), Longitude: ptr(0.0), RadiusMeters: d - 0.01})
	assert.False(t, g.Check(0.001, 0).Inside)
}

func TestDistanceMeters(t *testing.T) {
	// one degree of latitude on a 6371 km sphere
	assert.InDelta(t, 111195, DistanceMeters(0, 0, 1, 0), 1)
	assert.InDelta(t, DistanceMeters(10, 20, 30, 40), DistanceMeters(30, 40, 10, 20), 1e-6)
	assert.Zero(t, DistanceMeters(-33.8, 151.2, -33.8, 151.2))
}
