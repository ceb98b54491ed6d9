package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"termdex/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, termHandler *handlers.TermHandler) {
	api := router.Group("/api")

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)

	termRoutes := NewTermRoutes(termHandler)
	termRoutes.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
