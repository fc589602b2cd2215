package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"waataxi/internal/models"
	"waataxi/internal/repositories"
	"waataxi/internal/rides/geo"
)

type DriverService struct {
	DriverRepo *repositories.DriverRepository
	Locator    *geo.DriverLocator
	ErrorLog   *log.Logger
}

func (s *DriverService) CreateDriver(ctx context.Context, driver models.Driver) (models.Driver, error) {
	if driver.UserID == "" {
		return models.Driver{}, fmt.Errorf("%w: user_id is required", models.ErrInvalidInput)
	}
	if driver.LicenseNumber == "" {
		return models.Driver{}, fmt.Errorf("%w: license_number is required", models.ErrInvalidInput)
	}
	return s.DriverRepo.CreateDriver(ctx, driver)
}

func (s *DriverService) GetDriverByID(ctx context.Context, id string) (models.Driver, error) {
	return s.DriverRepo.GetDriverByID(ctx, id)
}

func (s *DriverService) GetDrivers(ctx context.Context) ([]models.Driver, error) {
	return s.DriverRepo.GetDrivers(ctx)
}

func (s *DriverService) GetAvailableDrivers(ctx context.Context) ([]models.Driver, error) {
	return s.DriverRepo.GetAvailableDrivers(ctx)
}

// NearbyDrivers queries the Redis position mirror for available drivers
// around a point and joins the hits back to the driver rows. With no mirror
// configured the result is empty.
func (s *DriverService) NearbyDrivers(ctx context.Context, lon, lat, radiusMeters float64, limit int) ([]models.NearbyDriver, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	if radiusMeters <= 0 {
		radiusMeters = 3000
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if s.Locator == nil {
		return nil, nil
	}

	hits, err := s.Locator.Nearby(ctx, lon, lat, radiusMeters, limit)
	if err != nil {
		return nil, err
	}
	var nearby []models.NearbyDriver
	for _, hit := range hits {
		driver, err := s.DriverRepo.GetDriverByID(ctx, hit.ID)
		if errors.Is(err, models.ErrDriverNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		nearby = append(nearby, models.NearbyDriver{Driver: driver, DistanceMeters: hit.Dist})
	}
	return nearby, nil
}

// UpdateDriverLocation writes the coordinates to the driver row and mirrors
// them into the Redis position set. Redis being down only costs the mirror.
func (s *DriverService) UpdateDriverLocation(ctx context.Context, id string, req models.UpdateDriverLocationRequest) (models.Driver, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return models.Driver{}, fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	driver, err := s.DriverRepo.UpdateDriverLocation(ctx, id, req.Latitude, req.Longitude)
	if err != nil {
		return models.Driver{}, err
	}
	if s.Locator != nil {
		if err := s.Locator.Update(ctx, driver.ID, req.Longitude, req.Latitude, driver.IsAvailable); err != nil && s.ErrorLog != nil {
			s.ErrorLog.Printf("geo mirror failed for driver %s: %v", driver.ID, err)
		}
	}
	return driver, nil
}
