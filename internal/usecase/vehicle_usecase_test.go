package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/service"
	apperrors "availio-admin/pkg/errors"
)

func newVehicleFixture() (*VehicleUseCase, *fakeVehicleRepo, *fakeRatingRepo) {
	vehicleRepo := &fakeVehicleRepo{vehicles: []*entity.Vehicle{
		{ID: "v1", OwnerID: "a", Name: "City Runner", Brand: "Toyota", Model: "Vios", Location: "Cebu"},
		{ID: "v2", OwnerID: "a", Name: "Beach Hopper", Brand: "Honda", Model: "Click", Location: "Bohol"},
		{ID: "v3", OwnerID: "b", Name: "Mountain Goat", Brand: "Toyota", Model: "Fortuner", Location: "Davao"},
	}}
	ratingRepo := &fakeRatingRepo{byVehicle: map[string][]entity.Rating{}, byOwner: map[string][]entity.Rating{}}
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: "r1", Role: entity.RoleRenter, FirstName: "Rey", LastName: "Santos", Email: "rey@mail.com"},
	}}
	return NewVehicleUseCase(vehicleRepo, ratingRepo, userRepo), vehicleRepo, ratingRepo
}

func vehicleIDs(views []VehicleView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestListVehiclesBrandFilter(t *testing.T) {
	uc, _, _ := newVehicleFixture()

	all, err := uc.ListVehicles(context.Background(), ListVehiclesInput{Brand: BrandAll})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	toyotas, err := uc.ListVehicles(context.Background(), ListVehiclesInput{Brand: "Toyota"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"v1", "v3"}, vehicleIDs(toyotas))
}

func TestListVehiclesSearchAcrossFields(t *testing.T) {
	uc, _, _ := newVehicleFixture()

	byModel, err := uc.ListVehicles(context.Background(), ListVehiclesInput{Search: "fortuner"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"v3"}, vehicleIDs(byModel))

	byLocation, err := uc.ListVehicles(context.Background(), ListVehiclesInput{Search: "BOHOL"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"v2"}, vehicleIDs(byLocation))
}

func TestListVehiclesSortsByAggregatedRating(t *testing.T) {
	uc, _, ratingRepo := newVehicleFixture()
	ratingRepo.byVehicle["v1"] = []entity.Rating{{ID: "x", Score: 2}}
	ratingRepo.byVehicle["v2"] = []entity.Rating{{ID: "y", Score: 5}}
	ratingRepo.byVehicle["v3"] = []entity.Rating{{ID: "z", Score: 3}}

	got, err := uc.ListVehicles(context.Background(), ListVehiclesInput{Sort: service.SortHighest})

	assert.NoError(t, err)
	assert.Equal(t, []string{"v2", "v3", "v1"}, vehicleIDs(got))
}

func TestGetVehicleJoinsRatingsWithAuthors(t *testing.T) {
	uc, _, ratingRepo := newVehicleFixture()
	ratingRepo.byVehicle["v1"] = []entity.Rating{
		{ID: "rt1", Score: 5, UserID: "r1", Comment: "smooth ride"},
		{ID: "rt2", Score: 1, UserID: "missing"},
	}

	view, err := uc.GetVehicle(context.Background(), "v1")

	assert.NoError(t, err)
	assert.Equal(t, "3.0", view.RatingDisplay)
	assert.Equal(t, 2, view.Rating.Count)
	assert.Equal(t, "Rey Santos", view.Ratings["rt1"].UserName)
	assert.Equal(t, "rey@mail.com", view.Ratings["rt1"].UserEmail)
	assert.Equal(t, "Anonymous User", view.Ratings["rt2"].UserName)
	assert.Equal(t, "No email", view.Ratings["rt2"].UserEmail)
}

func TestDeleteVehicle(t *testing.T) {
	uc, vehicleRepo, _ := newVehicleFixture()

	assert.NoError(t, uc.DeleteVehicle(context.Background(), "v1"))
	assert.Equal(t, []string{"v1"}, vehicleRepo.deletedIDs())

	err := uc.DeleteVehicle(context.Background(), "nope")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestBrands(t *testing.T) {
	uc, _, _ := newVehicleFixture()

	brands, err := uc.Brands(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Honda", "Toyota"}, brands)
}
