package routes

import (
	"ges_rdo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRDOs     = "/rdos"
	PathUsuarios = "/usuarios"
)

func addRDORoutes(rg *gin.RouterGroup, rdoHandler *handlers.RDOHandler, timesheetHandler *handlers.TimesheetHandler) {
	rdos := rg.Group(PathRDOs)
	{
		rdos.POST("", rdoHandler.CreateRDO)
		rdos.GET("/:id", rdoHandler.GetRDOByID)
		rdos.PUT("/:id", rdoHandler.UpdateRDO)
		rdos.DELETE("/:id", rdoHandler.DeleteRDO)
	}

	usuarios := rg.Group(PathUsuarios)
	{
		usuarios.GET("/:usuario_id/rdos", rdoHandler.ListRDOsByUser)
		// Ficha técnica mensal e por período (resumo ADM incluso).
		usuarios.GET("/:usuario_id/ficha", timesheetHandler.GetRangeTimesheet)
		usuarios.GET("/:usuario_id/ficha/:competencia", timesheetHandler.GetMonthlyTimesheet)
	}
}
