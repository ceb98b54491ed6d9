package routes

import (
	"github.com/gin-gonic/gin"

	"termdex/internal/handlers"
)

type TermRoutes struct {
	handler *handlers.TermHandler
}

func NewTermRoutes(handler *handlers.TermHandler) *TermRoutes {
	return &TermRoutes{handler: handler}
}

func (r *TermRoutes) RegisterRoutes(router *gin.RouterGroup) {
	terms := router.Group("/terms")
	{
		terms.GET("", r.handler.ListTerms)
		terms.POST("", r.handler.HandleAction)
	}
}
