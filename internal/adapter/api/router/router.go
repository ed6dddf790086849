package router

import (
	"availio-admin/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupVehicleRouter(e, authMiddleware, adminMiddleware)
	SetupDashboardRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
