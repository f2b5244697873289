package routes

import (
	"ges_rdo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjetos = "/projetos"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projetos := rg.Group(PathProjetos)
	{
		projetos.POST("", projectHandler.CreateProject)
		projetos.GET("", projectHandler.ListProjects)
		projetos.GET("/:id", projectHandler.GetProjectByID)
		projetos.PUT("/:id", projectHandler.UpdateProject)
		projetos.DELETE("/:id", projectHandler.DeleteProject)
	}
}
