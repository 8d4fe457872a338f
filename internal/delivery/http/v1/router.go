package v1

import (
	"net/http"

	"go-contact-backend/config"
	"go-contact-backend/internal/delivery/http/middleware"
	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "System operational")
	})

	// Public routes
	NewContactHandler(api, deps.ContactUC, deps.Config)

	// Unmatched routes answer JSON like everything else
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	return r
}
