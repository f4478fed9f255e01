package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/foodplanner/backend/config"
	"github.com/foodplanner/backend/internal/api"
	"github.com/foodplanner/backend/internal/middleware"
	"github.com/foodplanner/backend/internal/service"
)

// Server wires the services and handlers onto one HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New assembles the full application: services over the given store, Gin
// router, middleware, and route registration.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	authService := service.NewAuthService(db)
	ingredientService := service.NewIngredientService(db, authService)
	recipeService := service.NewRecipeService(db, cache)

	root := router.Group("/api")
	api.NewAuthHandler(authService).RegisterRoutes(root)
	api.NewIngredientHandler(ingredientService).RegisterRoutes(root)
	api.NewRecipeHandler(recipeService, ingredientService).RegisterRoutes(root)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
