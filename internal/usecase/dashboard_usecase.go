package usecase

import (
	"context"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
)

const defaultRecentBookings = 5

type DashboardUseCase struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	bookingRepo repository.BookingRepository
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	bookingRepo repository.BookingRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
	}
}

type DashboardStats struct {
	TotalOwners   int     `json:"total_owners"`
	TotalRenters  int     `json:"total_renters"`
	TotalUsers    int     `json:"total_users"`
	TotalVehicles int     `json:"total_vehicles"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Stats aggregates the dashboard counters. Revenue is the sum of completed
// booking totals; admin accounts are excluded from the user counts.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*DashboardStats, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	vehicles, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalVehicles: len(vehicles),
		TotalBookings: len(bookings),
	}

	for _, user := range users {
		switch user.Role {
		case entity.RoleOwner:
			stats.TotalOwners++
		case entity.RoleRenter:
			stats.TotalRenters++
		}
	}
	stats.TotalUsers = stats.TotalOwners + stats.TotalRenters

	for _, booking := range bookings {
		if booking.Status == entity.BookingComplete {
			stats.TotalRevenue += booking.TotalPrice
		}
	}

	return stats, nil
}

// RecentBookings returns the latest transactions, newest first.
func (uc *DashboardUseCase) RecentBookings(ctx context.Context, limit int) ([]*entity.Booking, error) {
	if limit <= 0 {
		limit = defaultRecentBookings
	}

	return uc.bookingRepo.ListRecent(ctx, limit)
}
