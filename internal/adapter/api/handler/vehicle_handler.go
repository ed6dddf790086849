package handler

import (
	"github.com/labstack/echo/v4"

	"availio-admin/internal/domain/service"
	"availio-admin/internal/usecase"
	"availio-admin/pkg/errors"
	"availio-admin/pkg/response"
	"availio-admin/pkg/utils"
)

type VehicleHandler struct {
	vehicleUseCase *usecase.VehicleUseCase
}

func NewVehicleHandler(vehicleUseCase *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{vehicleUseCase: vehicleUseCase}
}

func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	views, err := h.vehicleUseCase.ListVehicles(c.Request().Context(), usecase.ListVehiclesInput{
		Brand:  c.QueryParam("brand"),
		Search: c.QueryParam("search"),
		Sort:   service.ParseSortKey(c.QueryParam("sort")),
	})
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	page := paginateVehicleViews(views, pagination)

	return response.Paginated(c, page, int64(len(views)), pagination.Page, pagination.PageSize)
}

func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	view, err := h.vehicleUseCase.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Vehicle ID is required", nil))
	}

	if err := h.vehicleUseCase.DeleteVehicle(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Vehicle deleted successfully",
	})
}

// ListBrands feeds the brand filter dropdown. The sentinel entry comes
// first so a client can render it without special-casing.
func (h *VehicleHandler) ListBrands(c echo.Context) error {
	brands, err := h.vehicleUseCase.Brands(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, append([]string{usecase.BrandAll}, brands...))
}

func paginateVehicleViews(views []usecase.VehicleView, p utils.PaginationParams) []usecase.VehicleView {
	if p.Offset >= len(views) {
		return []usecase.VehicleView{}
	}

	end := p.Offset + p.PageSize
	if end > len(views) {
		end = len(views)
	}
	return views[p.Offset:end]
}
