package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"trip-router/cmd/fx/config_fx"
	"trip-router/cmd/fx/controllers_fx"
	"trip-router/cmd/fx/logger_fx"
	"trip-router/cmd/fx/oracle_fx"
	"trip-router/cmd/fx/route_fx"
	"trip-router/internal/api/controllers"
	"trip-router/internal/infra"
	"trip-router/pkg/middleware"
	"trip-router/pkg/utils"
)

func main() {
	app := fx.New(
		logger_fx.Module,
		config_fx.Module,
		oracle_fx.Module,
		route_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	log *zap.Logger,
	routeController *controllers.RouteController,
	transportationController *controllers.TransportationController) *gin.Engine {

	gin.SetMode(cfg.GinMode)
	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, routeController, transportationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	routeController *controllers.RouteController,
	transportationController *controllers.TransportationController) {

	r.GET("/health", controllers.HealthHandler)
	r.POST("/optimize", routeController.OptimizeRouteHandler)
	r.POST("/transportation", transportationController.TransportationOptionsHandler)
}
