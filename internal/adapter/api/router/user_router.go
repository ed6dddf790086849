package router

import (
	"availio-admin/internal/adapter/api/handler"
	"availio-admin/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/verifications", userHandler.ListPendingVerifications)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.POST("/users/:id/ban", userHandler.BanUser)
	admin.POST("/users/:id/verify", userHandler.VerifyUser)
}
