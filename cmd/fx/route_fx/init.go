package route_fx

import (
	"go.uber.org/fx"
	"trip-router/internal/services"
)

var Module = fx.Provide(
	services.NewNearestNeighborPlanner,
	services.NewRouteService,
	services.NewTransportationService,
)
