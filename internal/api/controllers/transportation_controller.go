package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trip-router/internal/models/request_models"
	"trip-router/internal/models/response_models"
	"trip-router/internal/services"
	"trip-router/pkg/utils"
)

type TransportationController struct {
	transportationService services.TransportationServiceInterface
	log                   *zap.Logger
}

func NewTransportationController(transportationService services.TransportationServiceInterface, log *zap.Logger) *TransportationController {
	return &TransportationController{
		transportationService: transportationService,
		log:                   log,
	}
}

// POST /transportation
func (tc *TransportationController) TransportationOptionsHandler(c *gin.Context) {
	var req request_models.TransportationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, tc.log, utils.BindingError(err))
		return
	}

	menu := tc.transportationService.Menu(
		services.Coordinates{Lat: *req.Origin.Lat, Lng: *req.Origin.Lng},
		services.Coordinates{Lat: *req.Destination.Lat, Lng: *req.Destination.Lng},
		req.Date,
	)

	utils.RespondSuccess(c, response_models.NewTransportationResponse(req, menu))
}
