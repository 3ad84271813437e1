package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/config"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/api/handler"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/api/middleware"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/redis"
)

// importBodyLimit bounds the roster CSV upload. A full station year is well
// under a megabyte; 8 MiB leaves headroom for large stations.
const importBodyLimit = 8 << 20

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (no token required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything else requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// cuadrante views
			roster := authorized.Group("/roster")
			{
				roster.GET("", h.Roster.GetMonth)
				roster.GET("/me", h.Roster.GetMine)
				roster.POST("/import",
					middleware.RoleAuth(model.RoleAdmin),
					middleware.BodyLimit(importBodyLimit),
					h.Roster.Import)
			}

			authorized.GET("/workers", middleware.RoleAuth(model.RoleAdmin), h.Roster.ListWorkers)

			// change log
			edits := authorized.Group("/edits")
			edits.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				edits.POST("", h.Edit.Apply)
				edits.GET("", h.Edit.List)
			}

			// yearly summary
			authorized.GET("/summary", h.Summary.Get)

			// holidays
			holidays := authorized.Group("/holidays")
			{
				holidays.GET("", h.Roster.ListHolidays)
				holidays.POST("", middleware.RoleAuth(model.RoleAdmin), h.Roster.CreateHoliday)
				holidays.DELETE("/:date", middleware.RoleAuth(model.RoleAdmin), h.Roster.DeleteHoliday)
			}

			// manual hour adjustments
			manualHours := authorized.Group("/manual-hours")
			manualHours.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				manualHours.GET("", h.Roster.ListManualHours)
				manualHours.POST("", h.Roster.CreateManualHours)
			}

			// downloads
			export := authorized.Group("/export")
			{
				export.GET("/roster", h.Export.Roster)
				export.GET("/summary", h.Export.Summary)
				export.GET("/calendar", h.Export.Calendar)
			}
		}
	}

	return r
}
