package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"waataxi/internal/models"
)

type RideRepository struct {
	DB *sql.DB
}

const rideColumns = `r.id, r.passenger_id, r.driver_id, r.origin, r.destination,
	r.origin_label, r.destination_label, r.origin_lng_lat, r.destination_lng_lat,
	r.distance_meters, r.duration_seconds, r.distance_km, r.estimated_fare,
	r.status, r.created_at, r.updated_at,
	d.id, d.first_name, d.last_name, d.avatar_url`

const rideFrom = ` FROM rides r LEFT JOIN drivers d ON d.id = r.driver_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (models.Ride, error) {
	var ride models.Ride
	var dID, dFirst, dLast, dAvatar sql.NullString
	err := row.Scan(&ride.ID, &ride.PassengerID, &ride.DriverID, &ride.Origin, &ride.Destination,
		&ride.OriginLabel, &ride.DestinationLabel, &ride.OriginLngLat, &ride.DestinationLngLat,
		&ride.DistanceMeters, &ride.DurationSeconds, &ride.DistanceKm, &ride.EstimatedFare,
		&ride.Status, &ride.CreatedAt, &ride.UpdatedAt,
		&dID, &dFirst, &dLast, &dAvatar)
	if err != nil {
		return models.Ride{}, err
	}
	if dID.Valid {
		profile := models.DriverProfile{
			ID:   dID.String,
			Name: strings.TrimSpace(dFirst.String + " " + dLast.String),
		}
		if dAvatar.Valid {
			avatar := dAvatar.String
			profile.Avatar = &avatar
		}
		ride.Driver = &profile
	}
	return ride, nil
}

func (r *RideRepository) queryRides(ctx context.Context, query string, args ...any) ([]models.Ride, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []models.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

func (r *RideRepository) CreateRide(ctx context.Context, ride models.Ride) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO rides (id, passenger_id, driver_id, origin, destination,
		    origin_label, destination_label, origin_lng_lat, destination_lng_lat,
		    distance_meters, duration_seconds, distance_km, estimated_fare, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		ride.ID, ride.PassengerID, ride.DriverID, ride.Origin, ride.Destination,
		ride.OriginLabel, ride.DestinationLabel, ride.OriginLngLat, ride.DestinationLngLat,
		ride.DistanceMeters, ride.DurationSeconds, ride.DistanceKm, ride.EstimatedFare,
		ride.Status, ride.CreatedAt)
	return err
}

func (r *RideRepository) GetRideByID(ctx context.Context, id string) (models.Ride, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+rideColumns+rideFrom+` WHERE r.id = $1`, id)
	ride, err := scanRide(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ride{}, models.ErrRideNotFound
	}
	return ride, err
}

// ActiveRideForPassenger returns the passenger's ride in a non-terminal
// status, if any.
func (r *RideRepository) ActiveRideForPassenger(ctx context.Context, passengerID string) (models.Ride, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.passenger_id = $1 AND r.status IN ('pending', 'accepted', 'in_progress') ORDER BY r.created_at DESC LIMIT 1`,
		passengerID)
	ride, err := scanRide(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ride{}, models.ErrNoRecord
	}
	return ride, err
}

func (r *RideRepository) PendingUnassigned(ctx context.Context) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.status = 'pending' AND r.driver_id IS NULL ORDER BY r.created_at ASC`)
}

// RidesByUser lists rides where the user account owns either side of the
// ride, newest first.
func (r *RideRepository) RidesByUser(ctx context.Context, userID string) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+`
		 LEFT JOIN passengers p ON p.id = r.passenger_id
		 WHERE p.user_id = $1 OR d.user_id = $1
		 ORDER BY r.created_at DESC`, userID)
}

func (r *RideRepository) RidesByStatus(ctx context.Context, status string) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.status = $1 ORDER BY r.created_at DESC`, status)
}

func (r *RideRepository) RidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.driver_id = $1 ORDER BY r.created_at DESC`, driverID)
}

func (r *RideRepository) RidesByPassenger(ctx context.Context, passengerID string) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.passenger_id = $1 ORDER BY r.created_at DESC`, passengerID)
}

func (r *RideRepository) ExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Ride, error) {
	return r.queryRides(ctx,
		`SELECT `+rideColumns+rideFrom+` WHERE r.status = 'pending' AND r.created_at < $1 ORDER BY r.created_at ASC`, cutoff)
}

// UpdateRideStatus performs a compare-and-set on the ride status. A zero-row
// result means the ride moved out of fromStatus concurrently.
func (r *RideRepository) UpdateRideStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE rides SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		toStatus, id, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrInvalidStatus
	}
	return nil
}
