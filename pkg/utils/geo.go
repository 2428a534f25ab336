package utils

import (
	"math"

	"trip-router/internal/models/route_models"
)

const EarthRadiusKm = 6371.0

// GreatCircleKm returns the haversine distance between two coordinates given
// in degrees. Coordinates are used as-is; no range checks happen here.
func GreatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func Distance(a, b route_models.Waypoint) float64 {
	return GreatCircleKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// RoundTo2 rounds to two decimals, the precision used in responses.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
