package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/usecase"
	"availio-admin/pkg/utils"
)

func TestPaginateUserViews(t *testing.T) {
	views := make([]usecase.UserView, 5)
	for i := range views {
		views[i].User = entity.User{ID: string(rune('a' + i))}
	}

	t.Run("first page", func(t *testing.T) {
		page := paginateUserViews(views, utils.PaginationParams{Page: 1, PageSize: 2, Offset: 0})
		assert.Len(t, page, 2)
		assert.Equal(t, "a", page[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		page := paginateUserViews(views, utils.PaginationParams{Page: 3, PageSize: 2, Offset: 4})
		assert.Len(t, page, 1)
		assert.Equal(t, "e", page[0].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		page := paginateUserViews(views, utils.PaginationParams{Page: 4, PageSize: 2, Offset: 6})
		assert.Empty(t, page)
	})
}

func TestPaginateVehicleViews(t *testing.T) {
	views := make([]usecase.VehicleView, 3)
	for i := range views {
		views[i].Vehicle = entity.Vehicle{ID: string(rune('x' + i))}
	}

	page := paginateVehicleViews(views, utils.PaginationParams{Page: 2, PageSize: 2, Offset: 2})
	assert.Len(t, page, 1)
	assert.Equal(t, "z", page[0].ID)
}
