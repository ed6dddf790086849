package handler

import (
	"github.com/labstack/echo/v4"

	"availio-admin/internal/domain/service"
	"availio-admin/internal/usecase"
	"availio-admin/pkg/errors"
	"availio-admin/pkg/response"
	"availio-admin/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	banUseCase  *usecase.BanUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, banUseCase *usecase.BanUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		banUseCase:  banUseCase,
	}
}

// ListUsers serves both the owners and renters screens; filtering and
// rating order happen before pagination so pages stay consistent with the
// applied criteria.
func (h *UserHandler) ListUsers(c echo.Context) error {
	userType := c.QueryParam("type")
	if userType == "" {
		userType = usecase.UserTypeOwners
	}

	views, err := h.userUseCase.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Type:   userType,
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Sort:   service.ParseSortKey(c.QueryParam("sort")),
	})
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	page := paginateUserViews(views, pagination)

	return response.Paginated(c, page, int64(len(views)), pagination.Page, pagination.PageSize)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	detail, err := h.userUseCase.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

type banRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// BanUser runs the ban cascade and always reports the full outcome,
// including any vehicle deletions that did not go through.
func (h *UserHandler) BanUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	var req banRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.banUseCase.BanUser(c.Request().Context(), id, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *UserHandler) VerifyUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	user, err := h.userUseCase.VerifyUser(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "User verified successfully",
		"user":    user,
	})
}

func (h *UserHandler) ListPendingVerifications(c echo.Context) error {
	pending, err := h.userUseCase.ListPendingVerifications(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pending)
}

func paginateUserViews(views []usecase.UserView, p utils.PaginationParams) []usecase.UserView {
	if p.Offset >= len(views) {
		return []usecase.UserView{}
	}

	end := p.Offset + p.PageSize
	if end > len(views) {
		end = len(views)
	}
	return views[p.Offset:end]
}
