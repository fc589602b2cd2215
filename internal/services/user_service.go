package services

import (
	"context"
	"fmt"

	"waataxi/internal/models"
	"waataxi/internal/repositories"
)

type UserService struct {
	UserRepo *repositories.UserRepository
}

func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if req.Phone == "" {
		return models.User{}, fmt.Errorf("%w: phone is required", models.ErrInvalidInput)
	}
	switch req.Role {
	case models.RolePassenger, models.RoleDriver, models.RoleAdmin:
	default:
		return models.User{}, fmt.Errorf("%w: unknown role %q", models.ErrInvalidInput, req.Role)
	}
	if req.Role == models.RoleDriver && (req.LicenseNumber == nil || *req.LicenseNumber == "") {
		return models.User{}, fmt.Errorf("%w: license_number is required for drivers", models.ErrInvalidInput)
	}
	return s.UserRepo.CreateUser(ctx, req)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	return s.UserRepo.GetUserByPhone(ctx, phone)
}

func (s *UserService) GetUsers(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.UserRepo.GetUsers(ctx, limit)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	if req.Phone != nil && *req.Phone == "" {
		return models.User{}, fmt.Errorf("%w: phone cannot be empty", models.ErrInvalidInput)
	}
	return s.UserRepo.UpdateUser(ctx, id, req)
}

func (s *UserService) DeactivateUser(ctx context.Context, id string) error {
	return s.UserRepo.DeactivateUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.UserRepo.DeleteUser(ctx, id)
}
