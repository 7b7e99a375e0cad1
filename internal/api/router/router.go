package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/config"
	"github.com/L52103/appEscritorioControl/internal/api/handler"
	"github.com/L52103/appEscritorioControl/internal/api/middleware"
	"github.com/L52103/appEscritorioControl/pkg/jwt"
	"github.com/L52103/appEscritorioControl/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Public: login and refresh.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Check-in/check-out terminals authenticate with a device
		// token too, so the whole attendance surface sits behind JWT.
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.List)
				attendance.POST("/check-in", h.Attendance.CheckIn)
				attendance.POST("/check-out", h.Attendance.CheckOut)
				attendance.POST("/message", h.Attendance.AttachMessage)
				attendance.POST("/:id/process", middleware.AdminOnly(), h.Attendance.Process)
			}

			workers := authorized.Group("/workers")
			{
				workers.GET("", h.Worker.List)
				workers.GET("/:id", h.Worker.Get)
				workers.POST("", middleware.AdminOnly(), h.Worker.Create)
				workers.PUT("/:id", middleware.AdminOnly(), h.Worker.Update)
				workers.DELETE("/:id", middleware.AdminOnly(), h.Worker.Delete)
			}

			companies := authorized.Group("/companies")
			{
				companies.GET("", h.Company.List)
				companies.GET("/:id", h.Company.Get)
				companies.POST("", middleware.AdminOnly(), h.Company.Create)
				companies.PUT("/:id", middleware.AdminOnly(), h.Company.Update)
				companies.DELETE("/:id", middleware.AdminOnly(), h.Company.Delete)
			}

			branches := authorized.Group("/branches")
			{
				branches.GET("", h.Branch.List)
				branches.GET("/:id", h.Branch.Get)
				branches.POST("", middleware.AdminOnly(), h.Branch.Create)
				branches.PUT("/:id", middleware.AdminOnly(), h.Branch.Update)
				branches.DELETE("/:id", middleware.AdminOnly(), h.Branch.Delete)
			}

			workAreas := authorized.Group("/work-areas")
			{
				workAreas.GET("", h.WorkArea.List)
				workAreas.GET("/:id", h.WorkArea.Get)
				workAreas.POST("", middleware.AdminOnly(), h.WorkArea.Create)
				workAreas.PUT("/:id", middleware.AdminOnly(), h.WorkArea.Update)
				workAreas.DELETE("/:id", middleware.AdminOnly(), h.WorkArea.Delete)
			}

			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.List)
				shifts.GET("/:id", h.Shift.Get)
				shifts.POST("", middleware.AdminOnly(), h.Shift.Create)
				shifts.PUT("/:id", middleware.AdminOnly(), h.Shift.Update)
				shifts.DELETE("/:id", middleware.AdminOnly(), h.Shift.Delete)
			}

			assignments := authorized.Group("/shift-assignments")
			{
				assignments.GET("", h.Assignment.List)
				assignments.GET("/:id", h.Assignment.Get)
				assignments.POST("", middleware.AdminOnly(), h.Assignment.Create)
				assignments.PUT("/:id", middleware.AdminOnly(), h.Assignment.Update)
				assignments.DELETE("/:id", middleware.AdminOnly(), h.Assignment.Delete)
			}

			payroll := authorized.Group("/payroll", middleware.AdminOnly())
			{
				payroll.GET("", h.Payroll.List)
				payroll.PUT("/:id/rate", h.Payroll.UpdateRate)
				payroll.POST("/recalculate", h.Payroll.Recalculate)
			}

			reports := authorized.Group("/reports", middleware.AdminOnly())
			{
				reports.GET("/monthly-attendance", h.Report.MonthlyAttendance)
				reports.GET("/monthly-attendance/export", h.Report.ExportMonthlyReport)
				reports.GET("/attendance/export", h.Report.ExportAttendance)
				reports.GET("/shift-calendar/:id", h.Report.ExportShiftCalendar)
				reports.GET("/predict-absence/:id", h.Report.PredictAbsence)
			}
		}
	}

	return r
}
