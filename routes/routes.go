package routes

import (
	"net/http"
	"time"

	"catalogsheet-backend/config"
	"catalogsheet-backend/handlers"
	"catalogsheet-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the fully wired engine: CORS, preflight, middleware and
// routes. Tests construct it the same way main does.
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Preflight is answered permissively for every caller: CORS reflects
	// the request Origin regardless of allow-list membership. The
	// allow-list gates authentication on the actual POST, not CORS.
	r.Use(preflight())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupRoutes(r, cfg)
	return r
}

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	syncHandler := &handlers.SyncHandler{Cfg: cfg}
	limiter := middleware.NewRateLimiter(60, time.Minute)

	api := r.Group("/api")
	api.Use(middleware.RequestID())
	api.POST("/sheets",
		limiter.Middleware(),
		middleware.OriginAuth(cfg.AllowedOrigins),
		syncHandler.Handle,
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// preflight short-circuits OPTIONS with a 200 "ok" body, the response shape
// the form client expects.
func preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.String(http.StatusOK, "ok")
		c.Abort()
	}
}
