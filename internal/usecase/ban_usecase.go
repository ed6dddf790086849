package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
	"availio-admin/pkg/logger"
)

type BanUseCase struct {
	banRepo     repository.BanRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
}

func NewBanUseCase(
	banRepo repository.BanRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
) *BanUseCase {
	return &BanUseCase{
		banRepo:     banRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
	}
}

// BanCascadeResult reports the outcome of a ban cascade. Complete is false
// when any vehicle deletion failed; the ban record itself is never rolled
// back, so the caller can see exactly which deletions remain outstanding.
type BanCascadeResult struct {
	Ban               *entity.Ban       `json:"ban"`
	DeletedVehicleIDs []string          `json:"deleted_vehicle_ids"`
	FailedVehicleIDs  map[string]string `json:"failed_vehicle_ids,omitempty"`
	Complete          bool              `json:"complete"`
}

// BanUser runs the cascade: write the ban record, then delete every vehicle
// owned by the user. Deletions are issued concurrently with no ordering
// between them; the cascade settles only after all of them have. The two
// phases are not atomic: a failure after the ban record is written leaves
// the record in place and the failure detail in the result.
func (uc *BanUseCase) BanUser(ctx context.Context, userID, reason string) (*BanCascadeResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.BadRequest("Please provide a reason for the ban", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ban := &entity.Ban{
		UserID:    userID,
		UserEmail: user.ContactEmail(),
		UserName:  user.DisplayLabel(),
		Reason:    reason,
		BannedAt:  time.Now(),
	}
	if err := uc.banRepo.Create(ctx, ban); err != nil {
		return nil, err
	}

	vehicles, err := uc.vehicleRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		logger.Error("Ban cascade for %s: ban recorded but vehicle listing failed: %v", userID, err)
		return nil, errors.Internal("Ban recorded but owned vehicles could not be deleted", err)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		deleted = make([]string, 0, len(vehicles))
		failed  = make(map[string]string)
	)

	for _, v := range vehicles {
		wg.Add(1)
		go func(v *entity.Vehicle) {
			defer wg.Done()

			if err := uc.vehicleRepo.Delete(ctx, v.ID); err != nil {
				logger.Error("Ban cascade for %s: failed to delete vehicle %s: %v", userID, v.ID, err)
				mu.Lock()
				failed[v.ID] = err.Error()
				mu.Unlock()
				return
			}

			mu.Lock()
			deleted = append(deleted, v.ID)
			mu.Unlock()
		}(v)
	}
	wg.Wait()

	if len(failed) > 0 {
		logger.Warn("Ban cascade for %s incomplete: %d of %d vehicle deletions failed", userID, len(failed), len(vehicles))
	}

	return &BanCascadeResult{
		Ban:               ban,
		DeletedVehicleIDs: deleted,
		FailedVehicleIDs:  failed,
		Complete:          len(failed) == 0,
	}, nil
}
