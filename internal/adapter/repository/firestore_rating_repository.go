package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
)

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entity.Rating, error) {
	ref := r.client.Collection("vehicles").Doc(vehicleID).Collection("ratings")
	return r.collect(ref.Documents(ctx))
}

func (r *firestoreRatingRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entity.Rating, error) {
	ref := r.client.Collection("users").Doc(ownerID).Collection("ratings")
	return r.collect(ref.Documents(ctx))
}

func (r *firestoreRatingRepository) collect(iter *firestore.DocumentIterator) ([]entity.Rating, error) {
	var ratings []entity.Rating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate ratings", err)
		}

		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		rating.ID = doc.Ref.ID

		ratings = append(ratings, rating)
	}

	return ratings, nil
}
