package response_models

import "trip-router/internal/models/route_models"

type RouteStop struct {
	Name           string   `json:"name"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Order          int      `json:"order"`
	DistanceToNext *float64 `json:"distance_to_next,omitempty"`
	DurationToNext *string  `json:"duration_to_next,omitempty"`
}

type OptimizedRouteResponse struct {
	OptimizedRoute  []RouteStop `json:"optimized_route"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	TotalDuration   string      `json:"total_duration"`
	Mode            string      `json:"mode"`
}

func NewOptimizedRouteResponse(result *route_models.OptimizationResult) OptimizedRouteResponse {
	stops := make([]RouteStop, 0, len(result.Route))
	for _, seg := range result.Route {
		stops = append(stops, RouteStop{
			Name:           seg.Waypoint.Name,
			Lat:            seg.Waypoint.Lat,
			Lng:            seg.Waypoint.Lng,
			Order:          seg.Order,
			DistanceToNext: seg.DistanceToNextKm,
			DurationToNext: seg.DurationToNext,
		})
	}

	return OptimizedRouteResponse{
		OptimizedRoute:  stops,
		TotalDistanceKm: result.TotalDistanceKm,
		TotalDuration:   result.TotalDuration,
		Mode:            string(result.Mode),
	}
}
