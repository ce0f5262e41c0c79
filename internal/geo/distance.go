// Package geo provides great-circle distance computation for proximity
// checks. The haversine formula is implemented directly because the proximity
// contract fixes the earth radius at 6,371,000 m, while orb/geo hard-codes a
// different radius.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the mean earth radius used for haversine distances.
const EarthRadiusM = 6371000.0

// DistanceM returns the great-circle distance in meters between two points.
// Points are orb.Point in (lng, lat) order.
func DistanceM(a, b orb.Point) float64 {
	lat1 := radians(a.Lat())
	lat2 := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLng := radians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// Round2 rounds a distance to two decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
