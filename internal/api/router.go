package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"habit-tracker/internal/config"
	"habit-tracker/internal/services"
)

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, sm *services.ServiceManager, log *zap.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestLogger(log))
	r.Use(recovery(log))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 0 || (len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	habitController := NewHabitController(sm)
	writeLimit := newRateLimiter(cfg.Server.RateLimitPerMinute).middleware()

	group := r.Group("/api/habits")
	{
		group.GET("", habitController.ListHabits)
		group.GET("/weekly", habitController.Weekly)
		group.GET("/heatmap", habitController.Heatmap)
		group.GET("/today", habitController.Today)
		group.POST("", writeLimit, habitController.Save)
		group.DELETE("/:date", writeLimit, habitController.Delete)
	}

	return r
}

// NewServer wraps the router in an http.Server with sane timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}
