package config_fx

import (
	"go.uber.org/fx"
	"trip-router/internal/infra"
)

var Module = fx.Provide(infra.LoadConfig)
