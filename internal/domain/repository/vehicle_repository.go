package repository

import (
	"context"

	"availio-admin/internal/domain/entity"
)

type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
