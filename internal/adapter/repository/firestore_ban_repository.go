package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/google/uuid"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
)

type firestoreBanRepository struct {
	client *firestore.Client
}

func NewFirestoreBanRepository(client *firestore.Client) repository.BanRepository {
	return &firestoreBanRepository{
		client: client,
	}
}

func (r *firestoreBanRepository) Create(ctx context.Context, ban *entity.Ban) error {
	if ban.ID == "" {
		ban.ID = uuid.New().String()
	}
	if ban.BannedAt.IsZero() {
		ban.BannedAt = time.Now()
	}
	ban.Status = "banned"

	_, err := r.client.Collection("bans").Doc(ban.ID).Set(ctx, ban)
	if err != nil {
		return errors.Internal("Failed to create ban record", err)
	}

	return nil
}

func (r *firestoreBanRepository) List(ctx context.Context) ([]*entity.Ban, error) {
	iter := r.client.Collection("bans").Documents(ctx)

	var bans []*entity.Ban
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ban records", err)
		}

		var ban entity.Ban
		if err := doc.DataTo(&ban); err != nil {
			return nil, errors.Internal("Failed to parse ban record", err)
		}
		ban.ID = doc.Ref.ID

		bans = append(bans, &ban)
	}

	return bans, nil
}
