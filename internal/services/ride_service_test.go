package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"waataxi/internal/models"
	"waataxi/internal/repositories"
	"waataxi/internal/rides/fsm"
)

// memStore is an in-memory RideStore. Begin takes the store mutex and holds
// it until Commit or Rollback, so transactions are mutually exclusive the
// way row locks make them in Postgres.
type memStore struct {
	mu      sync.Mutex
	rides   map[string]models.Ride
	drivers map[string]models.Driver
}

func newMemStore() *memStore {
	return &memStore{
		rides:   make(map[string]models.Ride),
		drivers: make(map[string]models.Driver),
	}
}

func (s *memStore) Begin(ctx context.Context) (repositories.RideTx, error) {
	s.mu.Lock()
	return &memTx{
		store:   s,
		rides:   make(map[string]models.Ride),
		drivers: make(map[string]models.Driver),
	}, nil
}

func (s *memStore) CreateRide(ctx context.Context, ride models.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rides[ride.ID] = ride
	return nil
}

func (s *memStore) GetRideByID(ctx context.Context, id string) (models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[id]
	if !ok {
		return models.Ride{}, models.ErrRideNotFound
	}
	return ride, nil
}

func (s *memStore) ActiveRideForPassenger(ctx context.Context, passengerID string) (models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *models.Ride
	for _, ride := range s.rides {
		if ride.PassengerID == nil || *ride.PassengerID != passengerID || fsm.IsTerminal(ride.Status) {
			continue
		}
		r := ride
		if found == nil || r.CreatedAt.After(found.CreatedAt) {
			found = &r
		}
	}
	if found == nil {
		return models.Ride{}, models.ErrNoRecord
	}
	return *found, nil
}

func (s *memStore) filter(keep func(models.Ride) bool, newestFirst bool) []models.Ride {
	var rides []models.Ride
	for _, ride := range s.rides {
		if keep(ride) {
			rides = append(rides, ride)
		}
	}
	sort.Slice(rides, func(i, j int) bool {
		if newestFirst {
			return rides[i].CreatedAt.After(rides[j].CreatedAt)
		}
		return rides[i].CreatedAt.Before(rides[j].CreatedAt)
	})
	return rides
}

func (s *memStore) PendingUnassigned(ctx context.Context) ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r models.Ride) bool {
		return r.Status == fsm.StatusPending && r.DriverID == nil
	}, false), nil
}

func (s *memStore) RidesByUser(ctx context.Context, userID string) ([]models.Ride, error) {
	return nil, nil
}

func (s *memStore) RidesByStatus(ctx context.Context, status string) ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r models.Ride) bool { return r.Status == status }, true), nil
}

func (s *memStore) RidesByDriver(ctx context.Context, driverID string) ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r models.Ride) bool {
		return r.DriverID != nil && *r.DriverID == driverID
	}, true), nil
}

func (s *memStore) RidesByPassenger(ctx context.Context, passengerID string) ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r models.Ride) bool {
		return r.PassengerID != nil && *r.PassengerID == passengerID
	}, true), nil
}

func (s *memStore) ExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(r models.Ride) bool {
		return r.Status == fsm.StatusPending && r.CreatedAt.Before(cutoff)
	}, false), nil
}

func (s *memStore) UpdateRideStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ride, ok := s.rides[id]
	if !ok || ride.Status != fromStatus {
		return models.ErrInvalidStatus
	}
	ride.Status = toStatus
	s.rides[id] = ride
	return nil
}

// memTx stages writes and merges them on Commit. Rollback after Commit is a
// no-op, matching sql.Tx.
type memTx struct {
	store   *memStore
	rides   map[string]models.Ride
	drivers map[string]models.Driver
	done    bool
}

func (t *memTx) RideForUpdate(ctx context.Context, id string) (models.Ride, error) {
	if ride, ok := t.rides[id]; ok {
		return ride, nil
	}
	if ride, ok := t.store.rides[id]; ok {
		return ride, nil
	}
	return models.Ride{}, models.ErrRideNotFound
}

func (t *memTx) DriverForUpdate(ctx context.Context, id string) (models.Driver, error) {
	if driver, ok := t.drivers[id]; ok {
		return driver, nil
	}
	if driver, ok := t.store.drivers[id]; ok {
		return driver, nil
	}
	return models.Driver{}, models.ErrDriverNotFound
}

func (t *memTx) DriverHasActiveRide(ctx context.Context, driverID, excludeRideID string) (bool, error) {
	merged := make(map[string]models.Ride, len(t.store.rides))
	for id, ride := range t.store.rides {
		merged[id] = ride
	}
	for id, ride := range t.rides {
		merged[id] = ride
	}
	for id, ride := range merged {
		if id == excludeRideID || ride.DriverID == nil || *ride.DriverID != driverID {
			continue
		}
		if ride.Status == fsm.StatusAccepted || ride.Status == fsm.StatusInProgress {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) UpdateRide(ctx context.Context, ride models.Ride) error {
	if _, err := t.RideForUpdate(ctx, ride.ID); err != nil {
		return err
	}
	t.rides[ride.ID] = ride
	return nil
}

func (t *memTx) UpdateDriverAvailability(ctx context.Context, driverID string, available bool) error {
	driver, err := t.DriverForUpdate(ctx, driverID)
	if err != nil {
		return err
	}
	driver.IsAvailable = available
	t.drivers[driverID] = driver
	return nil
}

func (t *memTx) Commit() error {
	if t.done {
		return errors.New("transaction already finished")
	}
	for id, ride := range t.rides {
		t.store.rides[id] = ride
	}
	for id, driver := range t.drivers {
		t.store.drivers[id] = driver
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

type stubPassengers struct {
	byID     map[string]models.Passenger
	byUserID map[string]models.Passenger
}

func (s *stubPassengers) GetPassengerByID(ctx context.Context, id string) (models.Passenger, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return models.Passenger{}, models.ErrPassengerNotFound
}

func (s *stubPassengers) GetPassengerByUserID(ctx context.Context, userID string) (models.Passenger, error) {
	if p, ok := s.byUserID[userID]; ok {
		return p, nil
	}
	return models.Passenger{}, models.ErrPassengerNotFound
}

type stubDrivers struct {
	store *memStore
}

func (s *stubDrivers) GetDriverByID(ctx context.Context, id string) (models.Driver, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if d, ok := s.store.drivers[id]; ok {
		return d, nil
	}
	return models.Driver{}, models.ErrDriverNotFound
}

type recordingNotifier struct {
	mu    sync.Mutex
	rides []models.Ride
}

func (n *recordingNotifier) RideUpdated(ride models.Ride) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rides = append(n.rides, ride)
}

func (n *recordingNotifier) last() (models.Ride, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.rides) == 0 {
		return models.Ride{}, false
	}
	return n.rides[len(n.rides)-1], true
}

func newTestService() (*RideService, *memStore, *recordingNotifier) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	svc := &RideService{
		Store: store,
		Passengers: &stubPassengers{
			byID: map[string]models.Passenger{
				"p1": {ID: "p1", UserID: "u1", FirstName: "Awa", LastName: "Diop"},
			},
			byUserID: map[string]models.Passenger{
				"u1": {ID: "p1", UserID: "u1", FirstName: "Awa", LastName: "Diop"},
			},
		},
		Drivers:  &stubDrivers{store: store},
		Notifier: notifier,
	}
	store.drivers["d1"] = models.Driver{ID: "d1", UserID: "u2", FirstName: "Moussa", LastName: "Ba", IsAvailable: true}
	return svc, store, notifier
}

func strptr(s string) *string { return &s }

func seedRide(store *memStore, id, status string, driverID *string, createdAt time.Time) {
	passengerID := "p1"
	store.rides[id] = models.Ride{
		ID:          id,
		PassengerID: &passengerID,
		Origin:      "Plateau",
		Destination: "Almadies",
		DistanceKm:  5,
		Status:      status,
		CreatedAt:   createdAt,
		DriverID:    driverID,
	}
}

func TestCreateRide(t *testing.T) {
	svc, store, notifier := newTestService()

	ride, err := svc.CreateRide(context.Background(), models.RideInput{
		PassengerID: strptr("p1"),
		Origin:      "Plateau",
		Destination: "Almadies",
		DistanceKm:  10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusPending {
		t.Fatalf("expected pending got %s", ride.Status)
	}
	if ride.PassengerID == nil || *ride.PassengerID != "p1" {
		t.Fatalf("expected passenger p1 got %v", ride.PassengerID)
	}
	if ride.DriverID != nil {
		t.Fatal("driver must not be bound at creation")
	}
	if ride.EstimatedFare != 3500 {
		t.Fatalf("expected fare 3500 got %d", ride.EstimatedFare)
	}
	if _, ok := store.rides[ride.ID]; !ok {
		t.Fatal("ride not persisted")
	}
	if _, ok := notifier.last(); !ok {
		t.Fatal("expected a ride event")
	}
}

func TestCreateRideReturnsActiveRide(t *testing.T) {
	svc, _, _ := newTestService()
	input := models.RideInput{PassengerID: strptr("p1"), Origin: "A", Destination: "B", DistanceKm: 2}

	first, err := svc.CreateRide(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CreateRide(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the active ride back, got a new one: %s vs %s", second.ID, first.ID)
	}
}

func TestCreateRideResolvesUserID(t *testing.T) {
	svc, _, _ := newTestService()

	ride, err := svc.CreateRide(context.Background(), models.RideInput{
		PassengerID: strptr("u1"),
		Origin:      "A",
		Destination: "B",
		DistanceKm:  1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ride.PassengerID == nil || *ride.PassengerID != "p1" {
		t.Fatalf("expected account id resolved to p1, got %v", ride.PassengerID)
	}
}

func TestCreateRideValidation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateRide(context.Background(), models.RideInput{Origin: "", Destination: "B"})
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}

	_, err = svc.CreateRide(context.Background(), models.RideInput{
		Origin: "A", Destination: "B", DriverID: strptr("nope"),
	})
	if !errors.Is(err, models.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound got %v", err)
	}

	_, err = svc.CreateRide(context.Background(), models.RideInput{
		Origin: "A", Destination: "B", PassengerID: strptr("ghost"),
	})
	if !errors.Is(err, models.ErrPassengerNotFound) {
		t.Fatalf("expected ErrPassengerNotFound got %v", err)
	}
}

func TestAssignDriver(t *testing.T) {
	svc, store, notifier := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())

	ride, err := svc.AssignDriver(context.Background(), "r1", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusAccepted {
		t.Fatalf("expected accepted got %s", ride.Status)
	}
	if ride.DriverID == nil || *ride.DriverID != "d1" {
		t.Fatalf("expected driver d1 got %v", ride.DriverID)
	}
	if store.drivers["d1"].IsAvailable {
		t.Fatal("driver must be unavailable while assigned")
	}
	last, ok := notifier.last()
	if !ok || last.Status != fsm.StatusAccepted {
		t.Fatal("expected an accepted ride event")
	}
}

func TestAssignDriverNotPending(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusCancelled, nil, time.Now())

	if _, err := svc.AssignDriver(context.Background(), "r1", "d1"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus got %v", err)
	}
}

func TestAssignDriverUnavailable(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())
	d := store.drivers["d1"]
	d.IsAvailable = false
	store.drivers["d1"] = d

	if _, err := svc.AssignDriver(context.Background(), "r1", "d1"); !errors.Is(err, models.ErrDriverUnavailable) {
		t.Fatalf("expected ErrDriverUnavailable got %v", err)
	}
}

func TestAssignDriverConcurrentSameRide(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		store.drivers[id] = models.Driver{ID: id, IsAvailable: true}
	}

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(driverID string) {
			defer wg.Done()
			_, err := svc.AssignDriver(context.Background(), "r1", driverID)
			results <- err
		}(string(rune('a' + i)))
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrInvalidStatus):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 7 {
		t.Fatalf("expected exactly one winner, got wins=%d conflicts=%d", wins, conflicts)
	}

	busy := 0
	for _, d := range store.drivers {
		if !d.IsAvailable {
			busy++
		}
	}
	if busy != 1 {
		t.Fatalf("expected exactly one busy driver, got %d", busy)
	}
}

func TestAssignDriverConcurrentSameDriver(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())
	seedRide(store, "r2", fsm.StatusPending, nil, time.Now())

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, rideID := range []string{"r1", "r2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.AssignDriver(context.Background(), id, "d1")
			results <- err
		}(rideID)
	}
	wg.Wait()
	close(results)

	var wins, refusals int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrDriverUnavailable), errors.Is(err, models.ErrDriverBusy):
			refusals++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || refusals != 1 {
		t.Fatalf("driver must win exactly one ride, got wins=%d refusals=%d", wins, refusals)
	}
}

func TestStartRide(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusAccepted, strptr("d1"), time.Now())

	ride, err := svc.StartRide(context.Background(), "r1")
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusInProgress {
		t.Fatalf("expected in_progress got %s", ride.Status)
	}

	seedRide(store, "r2", fsm.StatusPending, nil, time.Now())
	if _, err := svc.StartRide(context.Background(), "r2"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus got %v", err)
	}

	if _, err := svc.StartRide(context.Background(), "r1"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("starting an in_progress ride must fail, got %v", err)
	}
}

func TestCompleteRide(t *testing.T) {
	svc, store, _ := newTestService()
	d := store.drivers["d1"]
	d.IsAvailable = false
	store.drivers["d1"] = d
	seedRide(store, "r1", fsm.StatusInProgress, strptr("d1"), time.Now())

	ride, err := svc.CompleteRide(context.Background(), "r1")
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusCompleted {
		t.Fatalf("expected completed got %s", ride.Status)
	}
	if ride.DriverID == nil || *ride.DriverID != "d1" {
		t.Fatal("completed ride must keep its driver binding")
	}
	if !store.drivers["d1"].IsAvailable {
		t.Fatal("driver must be available again after completion")
	}
}

func TestCompleteRideRequiresActiveStatus(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())

	if _, err := svc.CompleteRide(context.Background(), "r1"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus got %v", err)
	}
}

func TestCancelRideClearsDriver(t *testing.T) {
	svc, store, _ := newTestService()
	d := store.drivers["d1"]
	d.IsAvailable = false
	store.drivers["d1"] = d
	seedRide(store, "r1", fsm.StatusAccepted, strptr("d1"), time.Now())

	ride, err := svc.CancelRide(context.Background(), "r1", "")
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusCancelled {
		t.Fatalf("expected cancelled got %s", ride.Status)
	}
	if ride.DriverID != nil {
		t.Fatal("cancelled ride must not keep a driver binding")
	}
	if !store.drivers["d1"].IsAvailable {
		t.Fatal("driver must be available again after cancellation")
	}
}

func TestCancelRideTerminal(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusCompleted, strptr("d1"), time.Now())

	if _, err := svc.CancelRide(context.Background(), "r1", ""); !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus got %v", err)
	}
}

func TestCancelRideWithReason(t *testing.T) {
	svc, store, _ := newTestService()
	seedRide(store, "r1", fsm.StatusPending, nil, time.Now())

	ride, err := svc.CancelRide(context.Background(), "r1", fsm.StatusTimeoutCancelled)
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusTimeoutCancelled {
		t.Fatalf("expected timeout_cancelled got %s", ride.Status)
	}

	seedRide(store, "r2", fsm.StatusPending, nil, time.Now())
	if _, err := svc.CancelRide(context.Background(), "r2", "rejected"); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
	if store.rides["r2"].Status != fsm.StatusPending {
		t.Fatal("ride must stay pending after an invalid reason")
	}
}

func TestRejectRide(t *testing.T) {
	svc, store, _ := newTestService()
	d := store.drivers["d1"]
	d.IsAvailable = false
	store.drivers["d1"] = d
	seedRide(store, "r1", fsm.StatusAccepted, strptr("d1"), time.Now())

	if _, err := svc.RejectRide(context.Background(), "r1", "other"); !errors.Is(err, models.ErrDriverMismatch) {
		t.Fatalf("expected ErrDriverMismatch got %v", err)
	}

	ride, err := svc.RejectRide(context.Background(), "r1", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if ride.Status != fsm.StatusRejected {
		t.Fatalf("expected rejected got %s", ride.Status)
	}
	if ride.DriverID != nil {
		t.Fatal("rejected ride must not keep a driver binding")
	}
	if !store.drivers["d1"].IsAvailable {
		t.Fatal("driver must be available again after rejection")
	}
}

func TestSweepExpired(t *testing.T) {
	svc, store, _ := newTestService()
	now := time.Now()
	seedRide(store, "old1", fsm.StatusPending, nil, now.Add(-30*time.Minute))
	seedRide(store, "old2", fsm.StatusPending, nil, now.Add(-20*time.Minute))
	seedRide(store, "fresh", fsm.StatusPending, nil, now.Add(-1*time.Minute))
	seedRide(store, "taken", fsm.StatusAccepted, strptr("d1"), now.Add(-30*time.Minute))

	count, err := svc.SweepExpired(context.Background(), now, 10*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 swept rides got %d", count)
	}
	for _, id := range []string{"old1", "old2"} {
		if store.rides[id].Status != fsm.StatusTimeoutCancelled {
			t.Fatalf("expected %s to be timeout_cancelled, got %s", id, store.rides[id].Status)
		}
	}
	if store.rides["fresh"].Status != fsm.StatusPending {
		t.Fatal("fresh pending ride must not be swept")
	}
	if store.rides["taken"].Status != fsm.StatusAccepted {
		t.Fatal("accepted ride must not be swept")
	}
}

func TestRecentAddresses(t *testing.T) {
	svc, store, _ := newTestService()
	now := time.Now()

	passengerID := "p1"
	store.rides["r1"] = models.Ride{
		ID: "r1", PassengerID: &passengerID,
		Origin: "Plateau", Destination: "Almadies",
		Status: fsm.StatusCompleted, CreatedAt: now.Add(-2 * time.Hour),
	}
	store.rides["r2"] = models.Ride{
		ID: "r2", PassengerID: &passengerID,
		Origin: "Almadies", Destination: "Yoff",
		DestinationLabel: strptr("Aéroport de Yoff"),
		Status:           fsm.StatusCompleted, CreatedAt: now.Add(-1 * time.Hour),
	}

	addresses, err := svc.RecentAddresses(context.Background(), "p1", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Aéroport de Yoff", "Almadies", "Plateau"}
	if len(addresses) != len(want) {
		t.Fatalf("expected %v got %v", want, addresses)
	}
	for i := range want {
		if addresses[i] != want[i] {
			t.Fatalf("expected %v got %v", want, addresses)
		}
	}
}

func TestRecentAddressesLimitClamp(t *testing.T) {
	svc, store, _ := newTestService()
	now := time.Now()

	passengerID := "p1"
	for i := 0; i < 6; i++ {
		id := string(rune('a' + i))
		store.rides[id] = models.Ride{
			ID: id, PassengerID: &passengerID,
			Origin:      "origin-" + id,
			Destination: "destination-" + id,
			Status:      fsm.StatusCompleted,
			CreatedAt:   now.Add(-time.Duration(i) * time.Hour),
		}
	}

	addresses, err := svc.RecentAddresses(context.Background(), "p1", 51)
	if err != nil {
		t.Fatal(err)
	}
	if len(addresses) != 12 {
		t.Fatalf("an over-limit request must clamp, not shrink to the default: got %d addresses", len(addresses))
	}

	addresses, err = svc.RecentAddresses(context.Background(), "p1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(addresses) != 3 {
		t.Fatalf("expected 3 addresses got %d", len(addresses))
	}
}

func TestGetRidesByStatusUnknown(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.GetRidesByStatus(context.Background(), "searching"); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
}
