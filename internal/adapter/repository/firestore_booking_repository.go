package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) List(ctx context.Context) ([]*entity.Booking, error) {
	return r.collect(r.client.Collection("bookings").Documents(ctx))
}

func (r *firestoreBookingRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	query := r.client.Collection("bookings").
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		booking.ID = doc.Ref.ID

		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
