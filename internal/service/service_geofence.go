// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/models"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6_371_000.0

// geofenceService is a circle of radiusMeters around the venue.
type geofenceService struct {
	lat, lng     float64
	radiusMeters float64
}

// NewGeofenceService builds the venue geofence. The config builder has
// already defaulted the coordinates.
func NewGeofenceService(cfg config.Venue) GeofenceService {
	g := &geofenceService{radiusMeters: cfg.RadiusMeters}
	if cfg.Latitude != nil {
		g.lat = *cfg.Latitude
	}
	if cfg.Longitude != nil {
		g.lng = *cfg.Longitude
	}
	return g
}

// Check reports whether (lat, lng) lies within the radius. A point exactly
// on the boundary is inside. The distance is rounded to whole meters for
// display only; the decision uses the raw value.
func (g *geofenceService) Check(lat, lng float64) models.GeofenceResult {
	d := DistanceMeters(lat, lng, g.lat, g.lng)
	return models.GeofenceResult{
		Inside:         d <= g.radiusMeters,
		DistanceMeters: int(math.Round(d)),
	}
}

// DistanceMeters is the great-circle distance between two points given in
// degrees.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	φ1 := toRadians(lat1)
	φ2 := toRadians(lat2)
	dφ := toRadians(lat2 - lat1)
	dλ := toRadians(lng2 - lng1)

	a := math.Sin(dφ/2)*math.Sin(dφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
