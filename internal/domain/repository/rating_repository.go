package repository

import (
	"context"

	"availio-admin/internal/domain/entity"
)

// RatingRepository reads the two rating sources. Vehicle ratings and owner
// ratings live in separate subcollections; renter ratings come from bookings
// instead and have no repository of their own.
type RatingRepository interface {
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entity.Rating, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entity.Rating, error)
}
