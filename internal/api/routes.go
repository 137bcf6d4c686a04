package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"realestate/server/internal/property"
)

func SetupRoutes(router *gin.Engine, service *property.Service, logger *logrus.Logger) {
	handler := NewHandler(service, logger)

	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/properties", handler.ListProperties)
		api.GET("/properties/available", handler.GetAvailableProperties)
		api.GET("/properties/city/:city", handler.GetPropertiesByCity)
		api.GET("/properties/:id", handler.GetProperty)
		api.POST("/properties", handler.CreateProperty)
		api.PUT("/properties/:id", handler.UpdateProperty)
		api.DELETE("/properties/:id", handler.DeleteProperty)
	}
}
