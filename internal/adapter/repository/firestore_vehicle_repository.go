package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
)

type firestoreVehicleRepository struct {
	client *firestore.Client
}

func NewFirestoreVehicleRepository(client *firestore.Client) repository.VehicleRepository {
	return &firestoreVehicleRepository{
		client: client,
	}
}

func (r *firestoreVehicleRepository) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	doc, err := r.client.Collection("vehicles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Vehicle", err)
		}
		return nil, errors.Internal("Failed to get vehicle", err)
	}

	return decodeVehicle(doc)
}

func (r *firestoreVehicleRepository) List(ctx context.Context) ([]*entity.Vehicle, error) {
	return r.collect(r.client.Collection("vehicles").Documents(ctx))
}

func (r *firestoreVehicleRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Vehicle, error) {
	query := r.client.Collection("vehicles").Where("ownerId", "==", ownerID)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreVehicleRepository) Delete(ctx context.Context, id string) error {
	// Existence check first so callers get a 404 rather than a silent no-op.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := r.client.Collection("vehicles").Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete vehicle", err)
	}

	return nil
}

func (r *firestoreVehicleRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate vehicles", err)
		}

		vehicle, err := decodeVehicle(doc)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

func decodeVehicle(doc *firestore.DocumentSnapshot) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := doc.DataTo(&vehicle); err != nil {
		return nil, errors.Internal("Failed to parse vehicle data", err)
	}

	vehicle.ID = doc.Ref.ID

	return &vehicle, nil
}
