package router

import (
	"availio-admin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := &handler.HealthHandler{}
	e.GET("/health", healthHandler.CheckHealth)
}
