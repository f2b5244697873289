package routes

import (
	"ges_rdo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMedicoes = "/medicoes"
)

func addMeasurementRoutes(rg *gin.RouterGroup, measurementHandler *handlers.MeasurementHandler) {
	medicoes := rg.Group(PathMedicoes)
	{
		medicoes.POST("", measurementHandler.CreateMeasurement)
		medicoes.GET("/:id", measurementHandler.GetMeasurementByID)
		medicoes.POST("/:id/fatura", measurementHandler.InvoiceMeasurement)
	}
}
