package request_models

import "trip-router/internal/models/route_models"

type LocationRequest struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng  *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}

// ToWaypoint expects a bound request; Lat and Lng are non-nil after validation.
func (l LocationRequest) ToWaypoint() route_models.Waypoint {
	return route_models.Waypoint{Name: l.Name, Lat: *l.Lat, Lng: *l.Lng}
}

type OptimizeRouteRequest struct {
	Locations     []LocationRequest `json:"locations" binding:"dive"`
	Mode          string            `json:"mode"`
	StartLocation *LocationRequest  `json:"start_location"`
}

func (r OptimizeRouteRequest) ToOptimizationRequest() route_models.OptimizationRequest {
	out := route_models.OptimizationRequest{
		Locations: make([]route_models.Waypoint, 0, len(r.Locations)),
		Mode:      route_models.TransportMode(r.Mode),
	}
	for _, loc := range r.Locations {
		out.Locations = append(out.Locations, loc.ToWaypoint())
	}
	if r.StartLocation != nil {
		start := r.StartLocation.ToWaypoint()
		out.StartLocation = &start
	}
	return out
}
