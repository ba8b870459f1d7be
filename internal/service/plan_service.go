package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/repository"
)

type PlanService interface {
	// BuildPlan recomputes the plan from the current reservation table. A nil
	// override uses the fleet from FleetService.
	BuildPlan(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error)
}

type planService struct {
	reservations repository.ReservationRepository
	fleet        FleetService
}

func NewPlanService(reservations repository.ReservationRepository, fleet FleetService) PlanService {
	return &planService{reservations: reservations, fleet: fleet}
}

func (s *planService) BuildPlan(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
	rows, err := s.reservations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var fleet allocation.Fleet
	if override != nil {
		fleet = *override
	} else if fleet, err = s.fleet.Current(ctx); err != nil {
		return nil, err
	}

	table := make([]allocation.Row, len(rows))
	for i := range rows {
		table[i] = rows[i].ToRow()
	}

	plan := allocation.Build(table, fleet)
	return &plan, nil
}
