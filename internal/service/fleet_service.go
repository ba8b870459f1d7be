package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/models"
	"github.com/Eursukkul/buggy-fleet/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidStock     = errors.New("vehicle stock must be zero or more")
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)

type FleetService interface {
	// Current returns the stored stock, or the configured default when none was saved.
	Current(ctx context.Context) (allocation.Fleet, error)
	Update(ctx context.Context, fleet allocation.Fleet) (allocation.Fleet, error)
}

type fleetService struct {
	repo     repository.FleetRepository
	defaults allocation.Fleet
}

func NewFleetService(repo repository.FleetRepository, defaults allocation.Fleet) FleetService {
	return &fleetService{repo: repo, defaults: defaults}
}

func (s *fleetService) Current(ctx context.Context) (allocation.Fleet, error) {
	setting, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.defaults, nil
		}
		return allocation.Fleet{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return allocation.Fleet{TwoSeat: setting.TwoSeatStock, OneSeat: setting.OneSeatStock}, nil
}

func (s *fleetService) Update(ctx context.Context, fleet allocation.Fleet) (allocation.Fleet, error) {
	if fleet.TwoSeat < 0 || fleet.OneSeat < 0 {
		return allocation.Fleet{}, ErrInvalidStock
	}

	setting := &models.FleetSetting{TwoSeatStock: fleet.TwoSeat, OneSeatStock: fleet.OneSeat}
	if err := s.repo.Save(ctx, setting); err != nil {
		return allocation.Fleet{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return fleet, nil
}
