package usecase

import (
	"context"
	"sort"
	"strings"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/internal/domain/service"
)

// BrandAll is the sentinel brand filter meaning no brand restriction.
const BrandAll = "All Brands"

type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	ratingRepo  repository.RatingRepository
	userRepo    repository.UserRepository
}

func NewVehicleUseCase(
	vehicleRepo repository.VehicleRepository,
	ratingRepo repository.RatingRepository,
	userRepo repository.UserRepository,
) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo: vehicleRepo,
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
	}
}

// VehicleView is one row of the vehicles screen: the listing plus its
// ratings keyed by rating ID and the aggregate.
type VehicleView struct {
	entity.Vehicle
	Ratings       map[string]entity.Rating `json:"ratings"`
	Rating        service.RatingSummary    `json:"rating"`
	RatingDisplay string                   `json:"rating_display"`
}

func (v VehicleView) SearchKey() string {
	return strings.Join([]string{
		v.Name, v.Brand, v.Model, v.Location, v.VehicleType, v.CCHP,
	}, " ")
}

func (v VehicleView) MatchesCategory(category string) bool {
	if category == "" || category == BrandAll {
		return true
	}
	return v.Brand == category
}

func (v VehicleView) RatingValue() (float64, bool) {
	return v.Rating.Average, true
}

type ListVehiclesInput struct {
	Brand  string
	Search string
	Sort   service.SortKey
}

// ListVehicles joins every vehicle with its ratings subcollection and runs
// the result through the shared filter/sort pipeline.
func (uc *VehicleUseCase) ListVehicles(ctx context.Context, input ListVehiclesInput) ([]VehicleView, error) {
	vehicles, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]VehicleView, 0, len(vehicles))
	for _, vehicle := range vehicles {
		view, err := uc.buildView(ctx, vehicle)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return service.FilterAndSort(views, service.Criteria{
		Search:   input.Search,
		Category: input.Brand,
		Sort:     input.Sort,
	}), nil
}

func (uc *VehicleUseCase) GetVehicle(ctx context.Context, id string) (*VehicleView, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.buildView(ctx, vehicle)
}

func (uc *VehicleUseCase) DeleteVehicle(ctx context.Context, id string) error {
	return uc.vehicleRepo.Delete(ctx, id)
}

// Brands returns the distinct brand names in the fleet, sorted, for the
// brand filter dropdown.
func (uc *VehicleUseCase) Brands(ctx context.Context) ([]string, error) {
	vehicles, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var brands []string
	for _, v := range vehicles {
		if v.Brand == "" {
			continue
		}
		if _, ok := seen[v.Brand]; ok {
			continue
		}
		seen[v.Brand] = struct{}{}
		brands = append(brands, v.Brand)
	}
	sort.Strings(brands)

	return brands, nil
}

func (uc *VehicleUseCase) buildView(ctx context.Context, vehicle *entity.Vehicle) (*VehicleView, error) {
	ratings, err := uc.ratingRepo.ListByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	ratings = resolveRatingAuthors(ctx, uc.userRepo, ratings)

	byID := make(map[string]entity.Rating, len(ratings))
	for _, r := range ratings {
		byID[r.ID] = r
	}

	summary := service.AggregateRatings(ratings)
	return &VehicleView{
		Vehicle:       *vehicle,
		Ratings:       byID,
		Rating:        summary,
		RatingDisplay: summary.Display(),
	}, nil
}
