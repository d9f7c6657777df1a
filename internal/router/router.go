package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amberly/schoolbook-backend/internal/config"
	"github.com/amberly/schoolbook-backend/internal/handler"
	"github.com/amberly/schoolbook-backend/internal/middleware"
	"github.com/amberly/schoolbook-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Module     *handler.ModuleHandler
	Record     *handler.RecordHandler
	Attendance *handler.AttendanceHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// The console itself: one static page driven entirely by the API.
	router.StaticFile("/", "./web/index.html")

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		// Sidebar destinations.
		api.GET("/modules", handlers.Module.List)

		// Dashboard metrics.
		api.GET("/dashboard", handlers.Dashboard.GetDashboardData)

		// Generic record workflow; :module resolves against the registry,
		// so one route set covers all seven tables.
		records := api.Group("/modules/:module/records")
		{
			records.GET("", handlers.Record.List)
			records.POST("", handlers.Record.Create)
			records.PUT("/:id", handlers.Record.Update)
			records.DELETE("/:id", handlers.Record.Delete)
		}

		// Specialized mark action; the second insertion path into the
		// attendance table.
		api.POST("/attendance/mark", handlers.Attendance.Mark)
	}

	return router
}
