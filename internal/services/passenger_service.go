package services

import (
	"context"
	"fmt"

	"waataxi/internal/models"
	"waataxi/internal/repositories"
)

type PassengerService struct {
	PassengerRepo *repositories.PassengerRepository
}

func (s *PassengerService) CreatePassenger(ctx context.Context, passenger models.Passenger) (models.Passenger, error) {
	if passenger.UserID == "" {
		return models.Passenger{}, fmt.Errorf("%w: user_id is required", models.ErrInvalidInput)
	}
	return s.PassengerRepo.CreatePassenger(ctx, passenger)
}

func (s *PassengerService) GetPassengerByID(ctx context.Context, id string) (models.Passenger, error) {
	return s.PassengerRepo.GetPassengerByID(ctx, id)
}

func (s *PassengerService) GetPassengerByUserID(ctx context.Context, userID string) (models.Passenger, error) {
	return s.PassengerRepo.GetPassengerByUserID(ctx, userID)
}

func (s *PassengerService) GetPassengers(ctx context.Context) ([]models.Passenger, error) {
	return s.PassengerRepo.GetPassengers(ctx)
}
