package controllers_fx

import (
	"go.uber.org/fx"
	"trip-router/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRouteController),
	fx.Provide(controllers.NewTransportationController))
