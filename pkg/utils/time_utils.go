package utils

import (
	"fmt"
	"math"

	"trip-router/internal/models/route_models"
)

const durationGranularityMinutes = 5

// EstimateDuration converts a distance into a travel time string for the
// mode's average speed, rounded to the nearest 5 minutes.
//
//	EstimateDuration(180, "car")   -> "3 hours 0 minutes"
//	EstimateDuration(1, "walking") -> "10 minutes"
func EstimateDuration(distanceKm float64, mode route_models.TransportMode) string {
	hours := distanceKm / mode.AverageSpeedKmh()
	return FormatMinutes(RoundMinutes(hours * 60))
}

// RoundMinutes snaps minutes to the 5 minute grid. Halfway values round to the
// even step, so 12.5 minutes becomes 10.
func RoundMinutes(minutes float64) int {
	return int(math.RoundToEven(minutes/durationGranularityMinutes)) * durationGranularityMinutes
}

func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	h := minutes / 60
	m := minutes % 60
	unit := "hour"
	if h > 1 {
		unit = "hours"
	}
	return fmt.Sprintf("%d %s %d minutes", h, unit, m)
}

// FlightDuration is a coarse door-to-door estimate: 800 km/h cruise plus
// 1.5 hours of airport overhead, rounded up to whole hours.
func FlightDuration(distanceKm float64) string {
	return fmt.Sprintf("%d hours", int(math.Ceil(distanceKm/800+1.5)))
}
