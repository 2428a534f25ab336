package response_models

import (
	"trip-router/internal/models/request_models"
	"trip-router/internal/services"
)

type TransportOption struct {
	Mode        string `json:"mode"`
	Duration    string `json:"duration"`
	Cost        int    `json:"cost"`
	EcoFriendly bool   `json:"eco_friendly"`
}

type TransportationResponse struct {
	Origin                request_models.CoordinatesRequest `json:"origin"`
	Destination           request_models.CoordinatesRequest `json:"destination"`
	DistanceKm            float64                           `json:"distance_km"`
	TransportationOptions []TransportOption                 `json:"transportation_options"`
	Date                  string                            `json:"date,omitempty"`
}

func NewTransportationResponse(req request_models.TransportationRequest, menu services.TransportationMenu) TransportationResponse {
	options := make([]TransportOption, 0, len(menu.Options))
	for _, o := range menu.Options {
		options = append(options, TransportOption{
			Mode:        string(o.Mode),
			Duration:    o.Duration,
			Cost:        o.Cost,
			EcoFriendly: o.EcoFriendly,
		})
	}

	return TransportationResponse{
		Origin:                *req.Origin,
		Destination:           *req.Destination,
		DistanceKm:            menu.DistanceKm,
		TransportationOptions: options,
		Date:                  menu.Date,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
