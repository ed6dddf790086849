package repository

import (
	"context"

	"availio-admin/internal/domain/entity"
)

type BanRepository interface {
	Create(ctx context.Context, ban *entity.Ban) error
	List(ctx context.Context) ([]*entity.Ban, error)
}
