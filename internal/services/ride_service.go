package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"waataxi/internal/models"
	"waataxi/internal/repositories"
	"waataxi/internal/rides/fare"
	"waataxi/internal/rides/fsm"
	"waataxi/internal/rides/geo"
)

// RideStore is the persistence surface the ride engine needs. The SQL
// implementation lives in repositories; tests supply an in-memory one.
type RideStore interface {
	Begin(ctx context.Context) (repositories.RideTx, error)
	CreateRide(ctx context.Context, ride models.Ride) error
	GetRideByID(ctx context.Context, id string) (models.Ride, error)
	ActiveRideForPassenger(ctx context.Context, passengerID string) (models.Ride, error)
	PendingUnassigned(ctx context.Context) ([]models.Ride, error)
	RidesByUser(ctx context.Context, userID string) ([]models.Ride, error)
	RidesByStatus(ctx context.Context, status string) ([]models.Ride, error)
	RidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error)
	RidesByPassenger(ctx context.Context, passengerID string) ([]models.Ride, error)
	ExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Ride, error)
	UpdateRideStatus(ctx context.Context, id, fromStatus, toStatus string) error
}

type PassengerDirectory interface {
	GetPassengerByID(ctx context.Context, id string) (models.Passenger, error)
	GetPassengerByUserID(ctx context.Context, userID string) (models.Passenger, error)
}

type DriverDirectory interface {
	GetDriverByID(ctx context.Context, id string) (models.Driver, error)
}

// RideNotifier pushes ride updates to subscribers. Delivery is best-effort.
type RideNotifier interface {
	RideUpdated(ride models.Ride)
}

type RideService struct {
	Store      RideStore
	Passengers PassengerDirectory
	Drivers    DriverDirectory
	Notifier   RideNotifier
	Locator    *geo.DriverLocator
	ErrorLog   *log.Logger
}

func (s *RideService) notify(ride models.Ride) {
	if s.Notifier != nil {
		s.Notifier.RideUpdated(ride)
	}
}

func (s *RideService) mirrorAvailability(ctx context.Context, driverID string, available bool) {
	if s.Locator == nil {
		return
	}
	if err := s.Locator.Move(ctx, driverID, available); err != nil && s.ErrorLog != nil {
		s.ErrorLog.Printf("geo mirror failed for driver %s: %v", driverID, err)
	}
}

// resolvePassenger accepts either a passenger id or the owning user id.
func (s *RideService) resolvePassenger(ctx context.Context, ref string) (models.Passenger, error) {
	passenger, err := s.Passengers.GetPassengerByID(ctx, ref)
	if errors.Is(err, models.ErrPassengerNotFound) {
		return s.Passengers.GetPassengerByUserID(ctx, ref)
	}
	return passenger, err
}

// CreateRide opens a ride request in pending status. If the passenger
// already has an active ride, that ride is returned instead of creating a
// second one. A driver reference in the input is validated but never bound
// here; binding happens only through AssignDriver.
func (s *RideService) CreateRide(ctx context.Context, input models.RideInput) (models.Ride, error) {
	if input.Origin == "" || input.Destination == "" {
		return models.Ride{}, fmt.Errorf("%w: origin and destination are required", models.ErrInvalidInput)
	}
	if input.DistanceKm < 0 {
		return models.Ride{}, fmt.Errorf("%w: distance_km cannot be negative", models.ErrInvalidInput)
	}

	var passengerID *string
	if input.PassengerID != nil {
		passenger, err := s.resolvePassenger(ctx, *input.PassengerID)
		if err != nil {
			return models.Ride{}, err
		}
		passengerID = &passenger.ID

		active, err := s.Store.ActiveRideForPassenger(ctx, passenger.ID)
		if err == nil {
			return active, nil
		}
		if !errors.Is(err, models.ErrNoRecord) {
			return models.Ride{}, err
		}
	}

	if input.DriverID != nil {
		if _, err := s.Drivers.GetDriverByID(ctx, *input.DriverID); err != nil {
			return models.Ride{}, err
		}
	}

	distanceKm := input.DistanceKm
	if distanceKm == 0 && input.DistanceMeters != nil {
		distanceKm = float64(*input.DistanceMeters) / 1000
	}
	if distanceKm == 0 && input.OriginLngLat != nil && input.DestinationLngLat != nil {
		oLon, oLat, err1 := geo.ParseLngLat(*input.OriginLngLat)
		dLon, dLat, err2 := geo.ParseLngLat(*input.DestinationLngLat)
		if err1 == nil && err2 == nil {
			distanceKm = geo.HaversineKm(oLat, oLon, dLat, dLon)
		}
	}
	durationMin := 0.0
	if input.DurationSeconds != nil {
		durationMin = float64(*input.DurationSeconds) / 60
	}

	ride := models.Ride{
		ID:                uuid.NewString(),
		PassengerID:       passengerID,
		Origin:            input.Origin,
		Destination:       input.Destination,
		OriginLabel:       input.OriginLabel,
		DestinationLabel:  input.DestinationLabel,
		OriginLngLat:      input.OriginLngLat,
		DestinationLngLat: input.DestinationLngLat,
		DistanceMeters:    input.DistanceMeters,
		DurationSeconds:   input.DurationSeconds,
		DistanceKm:        distanceKm,
		EstimatedFare:     fare.Estimate(distanceKm, durationMin),
		Status:            fsm.StatusPending,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.Store.CreateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	s.notify(ride)
	return ride, nil
}

// ListPending returns unassigned pending rides, oldest first.
func (s *RideService) ListPending(ctx context.Context) ([]models.Ride, error) {
	return s.Store.PendingUnassigned(ctx)
}

// AssignDriver atomically binds an available driver to a pending ride. The
// ride row is locked before the driver row so concurrent assignments always
// serialize in the same order.
func (s *RideService) AssignDriver(ctx context.Context, rideID, driverID string) (models.Ride, error) {
	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	defer tx.Rollback()

	ride, err := tx.RideForUpdate(ctx, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if ride.Status != fsm.StatusPending {
		return models.Ride{}, models.ErrInvalidStatus
	}

	driver, err := tx.DriverForUpdate(ctx, driverID)
	if err != nil {
		return models.Ride{}, err
	}
	if !driver.IsAvailable {
		return models.Ride{}, models.ErrDriverUnavailable
	}
	busy, err := tx.DriverHasActiveRide(ctx, driverID, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if busy {
		return models.Ride{}, models.ErrDriverBusy
	}

	ride.DriverID = &driver.ID
	ride.Status = fsm.StatusAccepted
	if err := tx.UpdateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	if err := tx.UpdateDriverAvailability(ctx, driver.ID, false); err != nil {
		return models.Ride{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Ride{}, err
	}

	profile := driver.Profile()
	ride.Driver = &profile
	s.notify(ride)
	s.mirrorAvailability(ctx, driver.ID, false)
	return ride, nil
}

// StartRide moves an accepted ride to in_progress.
func (s *RideService) StartRide(ctx context.Context, rideID string) (models.Ride, error) {
	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	defer tx.Rollback()

	ride, err := tx.RideForUpdate(ctx, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if ride.Status != fsm.StatusAccepted {
		return models.Ride{}, models.ErrInvalidStatus
	}

	ride.Status = fsm.StatusInProgress
	if err := tx.UpdateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Ride{}, err
	}
	s.notify(ride)
	return ride, nil
}

// CompleteRide finishes an accepted or in_progress ride and frees the
// driver in the same transaction. The driver binding stays on the ride.
func (s *RideService) CompleteRide(ctx context.Context, rideID string) (models.Ride, error) {
	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	defer tx.Rollback()

	ride, err := tx.RideForUpdate(ctx, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if ride.Status != fsm.StatusAccepted && ride.Status != fsm.StatusInProgress {
		return models.Ride{}, models.ErrInvalidStatus
	}

	ride.Status = fsm.StatusCompleted
	if err := tx.UpdateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	if ride.DriverID != nil {
		if err := tx.UpdateDriverAvailability(ctx, *ride.DriverID, true); err != nil {
			return models.Ride{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.Ride{}, err
	}
	s.notify(ride)
	if ride.DriverID != nil {
		s.mirrorAvailability(ctx, *ride.DriverID, true)
	}
	return ride, nil
}

// CancelRide cancels any non-terminal ride, clearing the driver binding and
// restoring the driver's availability. The reason becomes the terminal
// status: cancelled by default, or timeout_cancelled.
func (s *RideService) CancelRide(ctx context.Context, rideID, reason string) (models.Ride, error) {
	switch reason {
	case "":
		reason = fsm.StatusCancelled
	case fsm.StatusCancelled, fsm.StatusTimeoutCancelled:
	default:
		return models.Ride{}, fmt.Errorf("%w: invalid cancel reason %q", models.ErrInvalidInput, reason)
	}

	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	defer tx.Rollback()

	ride, err := tx.RideForUpdate(ctx, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if fsm.IsTerminal(ride.Status) {
		return models.Ride{}, models.ErrInvalidStatus
	}

	boundDriver := ride.DriverID
	ride.DriverID = nil
	ride.Status = reason
	if err := tx.UpdateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	if boundDriver != nil {
		if err := tx.UpdateDriverAvailability(ctx, *boundDriver, true); err != nil {
			return models.Ride{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.Ride{}, err
	}
	s.notify(ride)
	if boundDriver != nil {
		s.mirrorAvailability(ctx, *boundDriver, true)
	}
	return ride, nil
}

// RejectRide lets the assigned driver back out of an accepted ride. Rejected
// is terminal: the binding is cleared and the passenger must open a new
// request.
func (s *RideService) RejectRide(ctx context.Context, rideID, driverID string) (models.Ride, error) {
	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	defer tx.Rollback()

	ride, err := tx.RideForUpdate(ctx, rideID)
	if err != nil {
		return models.Ride{}, err
	}
	if ride.Status != fsm.StatusAccepted {
		return models.Ride{}, models.ErrInvalidStatus
	}
	if ride.DriverID == nil || *ride.DriverID != driverID {
		return models.Ride{}, models.ErrDriverMismatch
	}

	ride.DriverID = nil
	ride.Status = fsm.StatusRejected
	if err := tx.UpdateRide(ctx, ride); err != nil {
		return models.Ride{}, err
	}
	if err := tx.UpdateDriverAvailability(ctx, driverID, true); err != nil {
		return models.Ride{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Ride{}, err
	}
	s.notify(ride)
	s.mirrorAvailability(ctx, driverID, true)
	return ride, nil
}

func (s *RideService) GetRideByID(ctx context.Context, id string) (models.Ride, error) {
	return s.Store.GetRideByID(ctx, id)
}

func (s *RideService) GetRidesByUser(ctx context.Context, userID string) ([]models.Ride, error) {
	return s.Store.RidesByUser(ctx, userID)
}

func (s *RideService) GetRidesByStatus(ctx context.Context, status string) ([]models.Ride, error) {
	if !fsm.Known(status) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidInput, status)
	}
	return s.Store.RidesByStatus(ctx, status)
}

func (s *RideService) GetRidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error) {
	return s.Store.RidesByDriver(ctx, driverID)
}

func (s *RideService) GetRidesByPassenger(ctx context.Context, passengerID string) ([]models.Ride, error) {
	return s.Store.RidesByPassenger(ctx, passengerID)
}

// RecentAddresses lists the passenger's ride endpoints, most recent first,
// destination before origin within a ride, deduplicated.
func (s *RideService) RecentAddresses(ctx context.Context, passengerID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	} else if limit > 50 {
		limit = 50
	}
	rides, err := s.Store.RidesByPassenger(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	addresses := make([]string, 0, limit)
	push := func(label *string, fallback string) {
		addr := fallback
		if label != nil && *label != "" {
			addr = *label
		}
		if addr == "" {
			return
		}
		if _, ok := seen[addr]; ok {
			return
		}
		seen[addr] = struct{}{}
		addresses = append(addresses, addr)
	}
	for _, ride := range rides {
		if len(addresses) >= limit {
			break
		}
		push(ride.DestinationLabel, ride.Destination)
		if len(addresses) >= limit {
			break
		}
		push(ride.OriginLabel, ride.Origin)
	}
	return addresses, nil
}

// SweepExpired times out pending rides older than the timeout. Each ride is
// moved with a compare-and-set so a concurrent assignment wins the race.
func (s *RideService) SweepExpired(ctx context.Context, now time.Time, timeout time.Duration) (int, error) {
	stale, err := s.Store.ExpiredPending(ctx, now.Add(-timeout))
	if err != nil {
		return 0, err
	}

	var count int
	var errs []error
	for _, ride := range stale {
		err := s.Store.UpdateRideStatus(ctx, ride.ID, fsm.StatusPending, fsm.StatusTimeoutCancelled)
		if errors.Is(err, models.ErrInvalidStatus) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("ride %s: %w", ride.ID, err))
			continue
		}
		count++
		ride.Status = fsm.StatusTimeoutCancelled
		s.notify(ride)
	}
	return count, errors.Join(errs...)
}
