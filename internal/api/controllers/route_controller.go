package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trip-router/internal/models/request_models"
	"trip-router/internal/models/response_models"
	"trip-router/internal/services"
	"trip-router/pkg/utils"
)

const StrategyHeader = "X-Route-Strategy"

type RouteController struct {
	routeService services.RouteServiceInterface
	log          *zap.Logger
}

func NewRouteController(routeService services.RouteServiceInterface, log *zap.Logger) *RouteController {
	return &RouteController{
		routeService: routeService,
		log:          log,
	}
}

// POST /optimize
func (rc *RouteController) OptimizeRouteHandler(c *gin.Context) {
	var req request_models.OptimizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, rc.log, utils.BindingError(err))
		return
	}

	result, err := rc.routeService.Optimize(c.Request.Context(), req.ToOptimizationRequest())
	if err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}

	c.Header(StrategyHeader, string(result.Strategy))
	utils.RespondSuccess(c, response_models.NewOptimizedRouteResponse(result))
}
