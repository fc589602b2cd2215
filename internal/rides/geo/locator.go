package geo

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NearbyDriver represents a driver returned from Redis GEO queries.
type NearbyDriver struct {
	ID   string
	Dist float64
	Lon  float64
	Lat  float64
}

// DriverLocator mirrors driver positions into Redis GEO sets, one set per
// availability bucket. The SQL store stays the source of truth; the locator
// tolerates a nil client so the rest of the app works without Redis.
type DriverLocator struct {
	rdb *redis.Client
}

// NewDriverLocator creates a new locator.
func NewDriverLocator(rdb *redis.Client) *DriverLocator {
	return &DriverLocator{rdb: rdb}
}

func redisKey(available bool) string {
	if available {
		return "drivers:available"
	}
	return "drivers:busy"
}

func memberName(driverID string) string {
	return "driver:" + driverID
}

func parseDriverMember(member string) (string, error) {
	id, ok := strings.CutPrefix(member, "driver:")
	if !ok || id == "" {
		return "", fmt.Errorf("invalid member %q", member)
	}
	return id, nil
}

// Update records the driver's latest position in its availability bucket and
// clears it from the other one.
func (l *DriverLocator) Update(ctx context.Context, driverID string, lon, lat float64, available bool) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("geo: invalid coords lon=%.8f lat=%.8f", lon, lat)
	}
	if l.rdb == nil {
		return nil
	}
	mem := memberName(driverID)
	if err := l.rdb.GeoAdd(ctx, redisKey(available), &redis.GeoLocation{
		Name:      mem,
		Longitude: lon,
		Latitude:  lat,
	}).Err(); err != nil {
		return err
	}
	return l.rdb.ZRem(ctx, redisKey(!available), mem).Err()
}

// Move shifts a driver between availability buckets, preserving coordinates.
// Missing coordinates are not an error: the driver simply has not reported a
// position yet.
func (l *DriverLocator) Move(ctx context.Context, driverID string, available bool) error {
	if l.rdb == nil {
		return nil
	}
	src := redisKey(!available)
	dst := redisKey(available)
	mem := memberName(driverID)

	pos, err := l.rdb.GeoPos(ctx, src, mem).Result()
	if err != nil {
		return err
	}
	if len(pos) == 0 || pos[0] == nil {
		return nil
	}
	if err := l.rdb.GeoAdd(ctx, dst, &redis.GeoLocation{
		Name:      mem,
		Longitude: pos[0].Longitude,
		Latitude:  pos[0].Latitude,
	}).Err(); err != nil {
		return err
	}
	return l.rdb.ZRem(ctx, src, mem).Err()
}

// Nearby returns available drivers within radius sorted by distance.
func (l *DriverLocator) Nearby(ctx context.Context, lon, lat, radiusMeters float64, limit int) ([]NearbyDriver, error) {
	if l.rdb == nil {
		return nil, nil
	}
	res, err := l.rdb.GeoSearchLocation(ctx, redisKey(true), &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lon,
			Latitude:   lat,
			Radius:     radiusMeters,
			RadiusUnit: "m",
			Sort:       "ASC",
			Count:      limit,
		},
		WithCoord: true,
		WithDist:  true,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	drivers := make([]NearbyDriver, 0, len(res))
	for _, item := range res {
		id, err := parseDriverMember(item.Name)
		if err != nil {
			continue
		}
		drivers = append(drivers, NearbyDriver{
			ID:   id,
			Dist: item.Dist,
			Lon:  item.Longitude,
			Lat:  item.Latitude,
		})
	}
	return drivers, nil
}
