package usecase

import (
	"context"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
)

// resolveRatingAuthors fills in each rating's author name and email from the
// users collection. Identity is denormalized at read time only; a missing or
// deleted author renders as "Anonymous User". Lookups are cached per call so
// a prolific reviewer costs one read.
func resolveRatingAuthors(ctx context.Context, userRepo repository.UserRepository, ratings []entity.Rating) []entity.Rating {
	cache := make(map[string]*entity.User)

	for i := range ratings {
		author := authorFor(ctx, userRepo, cache, ratings[i].UserID)

		if author == nil {
			ratings[i].UserName = "Anonymous User"
			ratings[i].UserEmail = "No email"
			continue
		}

		ratings[i].UserName = authorName(author)
		if author.Email != "" {
			ratings[i].UserEmail = author.Email
		} else {
			ratings[i].UserEmail = "No email"
		}
	}

	return ratings
}

func authorFor(ctx context.Context, userRepo repository.UserRepository, cache map[string]*entity.User, uid string) *entity.User {
	if uid == "" {
		return nil
	}
	if user, seen := cache[uid]; seen {
		return user
	}

	user, err := userRepo.GetByID(ctx, uid)
	if err != nil {
		user = nil
	}
	cache[uid] = user
	return user
}

func authorName(u *entity.User) string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return "Anonymous User"
}
