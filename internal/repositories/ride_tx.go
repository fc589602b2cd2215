package repositories

import (
	"context"
	"database/sql"
	"errors"

	"waataxi/internal/models"
)

// RideTx is the unit of work for locked lifecycle transitions. Callers must
// lock the ride before the driver to keep a single lock order across the
// whole engine.
type RideTx interface {
	RideForUpdate(ctx context.Context, id string) (models.Ride, error)
	DriverForUpdate(ctx context.Context, id string) (models.Driver, error)
	DriverHasActiveRide(ctx context.Context, driverID, excludeRideID string) (bool, error)
	UpdateRide(ctx context.Context, ride models.Ride) error
	UpdateDriverAvailability(ctx context.Context, driverID string, available bool) error
	Commit() error
	Rollback() error
}

func (r *RideRepository) Begin(ctx context.Context) (RideTx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &rideTx{tx: tx}, nil
}

type rideTx struct {
	tx *sql.Tx
}

func (t *rideTx) RideForUpdate(ctx context.Context, id string) (models.Ride, error) {
	var ride models.Ride
	err := t.tx.QueryRowContext(ctx,
		`SELECT id, passenger_id, driver_id, origin, destination,
		    origin_label, destination_label, origin_lng_lat, destination_lng_lat,
		    distance_meters, duration_seconds, distance_km, estimated_fare,
		    status, created_at, updated_at
		 FROM rides WHERE id = $1 FOR UPDATE`, id,
	).Scan(&ride.ID, &ride.PassengerID, &ride.DriverID, &ride.Origin, &ride.Destination,
		&ride.OriginLabel, &ride.DestinationLabel, &ride.OriginLngLat, &ride.DestinationLngLat,
		&ride.DistanceMeters, &ride.DurationSeconds, &ride.DistanceKm, &ride.EstimatedFare,
		&ride.Status, &ride.CreatedAt, &ride.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ride{}, models.ErrRideNotFound
	}
	return ride, err
}

func (t *rideTx) DriverForUpdate(ctx context.Context, id string) (models.Driver, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1 FOR UPDATE`, id)
	driver, err := scanDriver(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, models.ErrDriverNotFound
	}
	return driver, err
}

func (t *rideTx) DriverHasActiveRide(ctx context.Context, driverID, excludeRideID string) (bool, error) {
	var exists bool
	err := t.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rides WHERE driver_id = $1 AND status IN ('accepted', 'in_progress') AND id <> $2)`,
		driverID, excludeRideID,
	).Scan(&exists)
	return exists, err
}

func (t *rideTx) UpdateRide(ctx context.Context, ride models.Ride) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE rides SET driver_id = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		ride.DriverID, ride.Status, ride.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrRideNotFound
	}
	return nil
}

func (t *rideTx) UpdateDriverAvailability(ctx context.Context, driverID string, available bool) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE drivers SET is_available = $1, updated_at = NOW() WHERE id = $2`,
		available, driverID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrDriverNotFound
	}
	return nil
}

func (t *rideTx) Commit() error {
	return t.tx.Commit()
}

func (t *rideTx) Rollback() error {
	return t.tx.Rollback()
}
