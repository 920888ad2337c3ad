package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutricoach/backend/config"
	"github.com/nutricoach/backend/internal/api"
	"github.com/nutricoach/backend/internal/logger"
	"github.com/nutricoach/backend/internal/middleware"
)

// LivenessMessage is the plain-text body of GET /.
const LivenessMessage = "AI Recipe & Nutrition Coach backend (with AI + fallback) is running"

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	log *logger.Logger,
	recipeHandler *api.RecipeHandler,
	coachHandler *api.CoachHandler,
) *gin.Engine {
	if cfg.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Liveness check
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, LivenessMessage)
	})

	apiGroup := router.Group("/api")
	recipeHandler.RegisterRoutes(apiGroup)
	coachHandler.RegisterRoutes(apiGroup)

	return router
}
