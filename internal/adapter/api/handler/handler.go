package handler

import (
	"availio-admin/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	vehicleHandler   *VehicleHandler
	dashboardHandler *DashboardHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	banUseCase *usecase.BanUseCase,
	vehicleUseCase *usecase.VehicleUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, banUseCase)
	vehicleHandler = NewVehicleHandler(vehicleUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetVehicleHandler() *VehicleHandler {
	return vehicleHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}
