package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"availio-admin/internal/usecase"
	"availio-admin/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *DashboardHandler) RecentBookings(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bookings, err := h.dashboardUseCase.RecentBookings(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}
