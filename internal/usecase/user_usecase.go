package usecase

import (
	"context"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/internal/domain/service"
	"availio-admin/pkg/errors"
)

const (
	UserTypeOwners  = "owners"
	UserTypeRenters = "renters"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	banRepo     repository.BanRepository
	ratingRepo  repository.RatingRepository
	bookingRepo repository.BookingRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	banRepo repository.BanRepository,
	ratingRepo repository.RatingRepository,
	bookingRepo repository.BookingRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		banRepo:     banRepo,
		ratingRepo:  ratingRepo,
		bookingRepo: bookingRepo,
	}
}

// UserView is one row of the owners/renters screens: the profile plus the
// derived ban state, verification status and aggregated rating.
type UserView struct {
	entity.User
	Banned        bool                  `json:"banned"`
	Verification  string                `json:"verification"`
	Rating        service.RatingSummary `json:"rating"`
	RatingDisplay string                `json:"rating_display"`
}

func (v UserView) SearchKey() string {
	return v.DisplayLabel() + " " + v.ContactEmail()
}

func (v UserView) MatchesCategory(category string) bool {
	switch category {
	case "", "all":
		return true
	case "active":
		return !v.Banned
	case "banned":
		return v.Banned
	default:
		return false
	}
}

func (v UserView) RatingValue() (float64, bool) {
	return v.Rating.Average, true
}

type ListUsersInput struct {
	Type   string
	Status string
	Search string
	Sort   service.SortKey
}

// ListUsers builds the owners or renters list view. The role partition is
// applied first, then ban status, then free-text search, then rating order.
// Admin accounts belong to neither partition.
func (uc *UserUseCase) ListUsers(ctx context.Context, input ListUsersInput) ([]UserView, error) {
	if input.Type != UserTypeOwners && input.Type != UserTypeRenters {
		return nil, errors.BadRequest("type must be owners or renters", nil)
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	bans, err := uc.banRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	banned := service.NewBanIndex(bans)

	var renterScores map[string][]entity.Rating
	if input.Type == UserTypeRenters {
		renterScores, err = uc.renterScoresByUser(ctx)
		if err != nil {
			return nil, err
		}
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		var ratings []entity.Rating

		switch input.Type {
		case UserTypeOwners:
			if user.Role != entity.RoleOwner {
				continue
			}
			ratings, err = uc.ratingRepo.ListByOwnerID(ctx, user.ID)
			if err != nil {
				return nil, err
			}
		case UserTypeRenters:
			if user.Role != entity.RoleRenter {
				continue
			}
			ratings = renterScores[user.ID]
		}

		summary := service.AggregateRatings(ratings)
		views = append(views, UserView{
			User:          *user,
			Banned:        banned.IsBanned(user.ID),
			Verification:  service.VerificationStatus(user),
			Rating:        summary,
			RatingDisplay: summary.Display(),
		})
	}

	return service.FilterAndSort(views, service.Criteria{
		Search:   input.Search,
		Category: input.Status,
		Sort:     input.Sort,
	}), nil
}

// UserDetail adds the individual ratings behind the aggregate.
type UserDetail struct {
	UserView
	Ratings []entity.Rating `json:"ratings"`
}

// GetUser resolves a single user's detail view. Owner ratings come from the
// owner's rating subcollection with authors resolved; renter ratings are
// derived from their completed, rated bookings. The two sources measure
// different things and are kept separate on purpose.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*UserDetail, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bans, err := uc.banRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var ratings []entity.Rating
	switch user.Role {
	case entity.RoleOwner:
		ratings, err = uc.ratingRepo.ListByOwnerID(ctx, id)
		if err != nil {
			return nil, err
		}
		ratings = resolveRatingAuthors(ctx, uc.userRepo, ratings)
	case entity.RoleRenter:
		scores, err := uc.renterScoresByUser(ctx)
		if err != nil {
			return nil, err
		}
		ratings = scores[id]
	}

	summary := service.AggregateRatings(ratings)
	return &UserDetail{
		UserView: UserView{
			User:          *user,
			Banned:        service.NewBanIndex(bans).IsBanned(id),
			Verification:  service.VerificationStatus(user),
			Rating:        summary,
			RatingDisplay: summary.Display(),
		},
		Ratings: ratings,
	}, nil
}

// VerifyUser flips the owner's verification flag. There is no un-verify.
func (uc *UserUseCase) VerifyUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleOwner {
		return nil, errors.BadRequest("Only owners can be verified", nil)
	}
	if user.BusinessVerified {
		return nil, errors.BadRequest("User already verified", nil)
	}

	if err := uc.userRepo.SetVerified(ctx, id); err != nil {
		return nil, err
	}

	user.BusinessVerified = true
	return user, nil
}

// ListPendingVerifications returns owners who uploaded verification
// documents but have not been verified yet.
func (uc *UserUseCase) ListPendingVerifications(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*entity.User
	for _, user := range users {
		if user.Role == entity.RoleOwner && !user.BusinessVerified && len(user.VerificationDocs) > 0 {
			pending = append(pending, user)
		}
	}

	return pending, nil
}

// renterScoresByUser derives per-renter rating collections from bookings:
// only Complete bookings with the rated flag set carry a meaningful
// renterRating.
func (uc *UserUseCase) renterScoresByUser(ctx context.Context) (map[string][]entity.Rating, error) {
	bookings, err := uc.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	scores := make(map[string][]entity.Rating)
	for _, b := range bookings {
		if b.Status != entity.BookingComplete || !b.Rated {
			continue
		}
		scores[b.RenterID] = append(scores[b.RenterID], entity.Rating{
			ID:        b.ID,
			Score:     b.RenterRating,
			CreatedAt: b.CreatedAt,
		})
	}

	return scores, nil
}
