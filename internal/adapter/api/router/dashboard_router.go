package router

import (
	"availio-admin/internal/adapter/api/handler"
	"availio-admin/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/stats", dashboardHandler.Stats)
	admin.GET("/bookings/recent", dashboardHandler.RecentBookings)
}
