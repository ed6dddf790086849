package repository

import (
	"context"

	"availio-admin/internal/domain/entity"
)

type BookingRepository interface {
	List(ctx context.Context) ([]*entity.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Booking, error)
}
