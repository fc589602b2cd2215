package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"waataxi/internal/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

func (r *PassengerRepository) CreatePassenger(ctx context.Context, passenger models.Passenger) (models.Passenger, error) {
	passenger.ID = uuid.NewString()
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO passengers (id, user_id, first_name, last_name, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at`,
		passenger.ID, passenger.UserID, passenger.FirstName, passenger.LastName,
	).Scan(&passenger.CreatedAt)
	if err != nil {
		return models.Passenger{}, err
	}
	return passenger, nil
}

func (r *PassengerRepository) GetPassengerByID(ctx context.Context, id string) (models.Passenger, error) {
	var passenger models.Passenger
	query := `SELECT id, user_id, first_name, last_name, created_at, updated_at FROM passengers WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&passenger.ID, &passenger.UserID, &passenger.FirstName, &passenger.LastName, &passenger.CreatedAt, &passenger.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Passenger{}, models.ErrPassengerNotFound
	}
	return passenger, err
}

func (r *PassengerRepository) GetPassengerByUserID(ctx context.Context, userID string) (models.Passenger, error) {
	var passenger models.Passenger
	query := `SELECT id, user_id, first_name, last_name, created_at, updated_at FROM passengers WHERE user_id = $1`
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&passenger.ID, &passenger.UserID, &passenger.FirstName, &passenger.LastName, &passenger.CreatedAt, &passenger.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Passenger{}, models.ErrPassengerNotFound
	}
	return passenger, err
}

func (r *PassengerRepository) GetPassengers(ctx context.Context) ([]models.Passenger, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, first_name, last_name, created_at, updated_at FROM passengers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var passengers []models.Passenger
	for rows.Next() {
		var passenger models.Passenger
		if err := rows.Scan(&passenger.ID, &passenger.UserID, &passenger.FirstName, &passenger.LastName, &passenger.CreatedAt, &passenger.UpdatedAt); err != nil {
			return nil, err
		}
		passengers = append(passengers, passenger)
	}
	return passengers, rows.Err()
}
