package router

import (
	"availio-admin/internal/adapter/api/handler"
	"availio-admin/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupVehicleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	vehicleHandler := handler.GetVehicleHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/vehicles", vehicleHandler.ListVehicles)
	admin.GET("/vehicles/brands", vehicleHandler.ListBrands)
	admin.GET("/vehicles/:id", vehicleHandler.GetVehicle)
	admin.DELETE("/vehicles/:id", vehicleHandler.DeleteVehicle)
}
