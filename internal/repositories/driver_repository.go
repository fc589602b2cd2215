package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"waataxi/internal/models"
)

type DriverRepository struct {
	DB *sql.DB
}

const driverColumns = `id, user_id, first_name, last_name, license_number, is_available, avatar_url, last_lat, last_lon, created_at, updated_at`

func scanDriver(row *sql.Row) (models.Driver, error) {
	var driver models.Driver
	err := row.Scan(&driver.ID, &driver.UserID, &driver.FirstName, &driver.LastName, &driver.LicenseNumber,
		&driver.IsAvailable, &driver.AvatarURL, &driver.LastLat, &driver.LastLon, &driver.CreatedAt, &driver.UpdatedAt)
	return driver, err
}

func (r *DriverRepository) CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error) {
	driver.ID = uuid.NewString()
	driver.IsAvailable = true
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO drivers (id, user_id, first_name, last_name, license_number, is_available, created_at)
		 VALUES ($1, $2, $3, $4, $5, TRUE, NOW()) RETURNING created_at`,
		driver.ID, driver.UserID, driver.FirstName, driver.LastName, driver.LicenseNumber,
	).Scan(&driver.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Driver{}, models.ErrDuplicateDriver
		}
		return models.Driver{}, err
	}
	return driver, nil
}

func (r *DriverRepository) GetDriverByID(ctx context.Context, id string) (models.Driver, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id)
	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, models.ErrDriverNotFound
	}
	return driver, err
}

func (r *DriverRepository) GetDriverByUserID(ctx context.Context, userID string) (models.Driver, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+driverColumns+` FROM drivers WHERE user_id = $1`, userID)
	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, models.ErrDriverNotFound
	}
	return driver, err
}

func (r *DriverRepository) GetDrivers(ctx context.Context) ([]models.Driver, error) {
	return r.queryDrivers(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY created_at DESC`)
}

func (r *DriverRepository) GetAvailableDrivers(ctx context.Context) ([]models.Driver, error) {
	return r.queryDrivers(ctx, `SELECT `+driverColumns+` FROM drivers WHERE is_available = TRUE ORDER BY created_at DESC`)
}

func (r *DriverRepository) queryDrivers(ctx context.Context, query string) ([]models.Driver, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var driver models.Driver
		if err := rows.Scan(&driver.ID, &driver.UserID, &driver.FirstName, &driver.LastName, &driver.LicenseNumber,
			&driver.IsAvailable, &driver.AvatarURL, &driver.LastLat, &driver.LastLon, &driver.CreatedAt, &driver.UpdatedAt); err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}
	return drivers, rows.Err()
}

// UpdateDriverLocation stores the structured coordinate pair on the driver
// row and returns the updated driver so callers can mirror the position.
func (r *DriverRepository) UpdateDriverLocation(ctx context.Context, id string, lat, lon float64) (models.Driver, error) {
	row := r.DB.QueryRowContext(ctx,
		`UPDATE drivers SET last_lat = $1, last_lon = $2, updated_at = NOW() WHERE id = $3 RETURNING `+driverColumns,
		lat, lon, id)
	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, models.ErrDriverNotFound
	}
	return driver, err
}
