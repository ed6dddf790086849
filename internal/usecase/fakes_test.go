package usecase

import (
	"context"
	"sort"
	"sync"

	"availio-admin/internal/domain/entity"
	"availio-admin/pkg/errors"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) SetVerified(ctx context.Context, id string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.BusinessVerified = true
			return nil
		}
	}
	return errors.NotFound("User", nil)
}

type fakeBanRepo struct {
	bans      []*entity.Ban
	createErr error
}

func (r *fakeBanRepo) Create(ctx context.Context, ban *entity.Ban) error {
	if r.createErr != nil {
		return r.createErr
	}
	if ban.ID == "" {
		ban.ID = "ban-" + ban.UserID
	}
	ban.Status = "banned"
	r.bans = append(r.bans, ban)
	return nil
}

func (r *fakeBanRepo) List(ctx context.Context) ([]*entity.Ban, error) {
	return r.bans, nil
}

type fakeVehicleRepo struct {
	mu        sync.Mutex
	vehicles  []*entity.Vehicle
	deleteErr map[string]error
	deleted   []string
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.vehicles {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Vehicle", nil)
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Vehicle(nil), r.vehicles...), nil
}

func (r *fakeVehicleRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.deleteErr[id]; err != nil {
		return err
	}

	for i, v := range r.vehicles {
		if v.ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return errors.NotFound("Vehicle", nil)
}

func (r *fakeVehicleRepo) deletedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.deleted...)
	sort.Strings(out)
	return out
}

type fakeRatingRepo struct {
	byVehicle map[string][]entity.Rating
	byOwner   map[string][]entity.Rating
}

func (r *fakeRatingRepo) ListByVehicleID(ctx context.Context, vehicleID string) ([]entity.Rating, error) {
	return append([]entity.Rating(nil), r.byVehicle[vehicleID]...), nil
}

func (r *fakeRatingRepo) ListByOwnerID(ctx context.Context, ownerID string) ([]entity.Rating, error) {
	return append([]entity.Rating(nil), r.byOwner[ownerID]...), nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]*entity.Booking, error) {
	return r.bookings, nil
}

func (r *fakeBookingRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	out := append([]*entity.Booking(nil), r.bookings...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAuthClient struct {
	signInCalls int
	signInErr   error
	token       string
	refresh     string
	verifyUID   string
	verifyErr   error
	revoked     []string
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.verifyUID, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	token, _, err := f.SignInWithEmailPasswordWithRefresh(email, password)
	return token, err
}

func (f *fakeAuthClient) SignInWithEmailPasswordWithRefresh(email, password string) (string, string, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return "", "", f.signInErr
	}
	return f.token, f.refresh, nil
}

func (f *fakeAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}
