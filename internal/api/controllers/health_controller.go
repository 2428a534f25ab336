package controllers

import (
	"github.com/gin-gonic/gin"

	"trip-router/internal/models/response_models"
	"trip-router/pkg/utils"
)

const ServiceName = "router"

func HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, response_models.HealthResponse{Status: "healthy", Service: ServiceName})
}
