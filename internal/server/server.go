package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"termdex/internal/config"
	"termdex/internal/handlers"
	"termdex/internal/middlewares"
	"termdex/internal/repositories"
	"termdex/internal/routes"
	"termdex/internal/services"
)

func NewServer(cfg *config.Config, pool *pgxpool.Pool) *http.Server {
	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool)
	termRepo := repositories.NewTermRepository(pool)
	projectService := services.NewProjectService(projectRepo)
	termService := services.NewTermService(termRepo, projectRepo)
	projectHandler := handlers.NewProjectHandler(projectService)
	termHandler := handlers.NewTermHandler(termService)

	router := gin.Default()
	router.Use(middlewares.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middlewares.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	routes.RegisterRoutes(router, projectHandler, termHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
