package handler

import (
	"context"
	"time"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// --- Mock PlanService ---

type mockPlanService struct {
	buildFn func(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error)
}

func (m *mockPlanService) BuildPlan(ctx context.Context, override *allocation.Fleet) (*allocation.Plan, error) {
	return m.buildFn(ctx, override)
}

// --- Mock FleetService ---

type mockFleetService struct {
	currentFn func(ctx context.Context) (allocation.Fleet, error)
	updateFn  func(ctx context.Context, fleet allocation.Fleet) (allocation.Fleet, error)
}

func (m *mockFleetService) Current(ctx context.Context) (allocation.Fleet, error) {
	return m.currentFn(ctx)
}
func (m *mockFleetService) Update(ctx context.Context, fleet allocation.Fleet) (allocation.Fleet, error) {
	return m.updateFn(ctx, fleet)
}

// --- Mock ReservationService ---

type mockReservationService struct {
	listFn    func(ctx context.Context) ([]models.Reservation, error)
	getFn     func(ctx context.Context, id uint) (*models.Reservation, error)
	createFn  func(ctx context.Context, row allocation.Row) (*models.Reservation, error)
	updateFn  func(ctx context.Context, id uint, row allocation.Row) (*models.Reservation, error)
	deleteFn  func(ctx context.Context, id uint) error
	checkInFn func(ctx context.Context, id uint, checkedIn bool) (*models.Reservation, error)
	importFn  func(ctx context.Context, rows []allocation.Row) (int, error)
}

func (m *mockReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return m.listFn(ctx)
}
func (m *mockReservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.getFn(ctx, id)
}
func (m *mockReservationService) Create(ctx context.Context, row allocation.Row) (*models.Reservation, error) {
	return m.createFn(ctx, row)
}
func (m *mockReservationService) Update(ctx context.Context, id uint, row allocation.Row) (*models.Reservation, error) {
	return m.updateFn(ctx, id, row)
}
func (m *mockReservationService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockReservationService) CheckIn(ctx context.Context, id uint, checkedIn bool) (*models.Reservation, error) {
	return m.checkInFn(ctx, id, checkedIn)
}
func (m *mockReservationService) Import(ctx context.Context, rows []allocation.Row) (int, error) {
	return m.importFn(ctx, rows)
}
func (m *mockReservationService) Sync(ctx context.Context, row allocation.Row) (*models.Reservation, error) {
	return nil, nil
}

// --- Mock AuthService ---

type mockAuthService struct {
	loginFn func(password string) (string, time.Time, error)
}

func (m *mockAuthService) Login(password string) (string, time.Time, error) {
	return m.loginFn(password)
}
func (m *mockAuthService) Verify(token string) (*jwt.RegisteredClaims, error) {
	return &jwt.RegisteredClaims{}, nil
}
