package service

import (
	"context"

	"github.com/Eursukkul/buggy-fleet/internal/allocation"
	"github.com/Eursukkul/buggy-fleet/internal/models"
)

// --- Mock ReservationRepository ---

type mockReservationRepo struct {
	findAllFn      func(ctx context.Context) ([]models.Reservation, error)
	findByIDFn     func(ctx context.Context, id uint) (*models.Reservation, error)
	createFn       func(ctx context.Context, r *models.Reservation) error
	updateFn       func(ctx context.Context, r *models.Reservation) error
	deleteFn       func(ctx context.Context, id uint) error
	setCheckedInFn func(ctx context.Context, id uint, checkedIn bool) error
	replaceAllFn   func(ctx context.Context, rows []models.Reservation) error
	upsertFn       func(ctx context.Context, r *models.Reservation) error
}

func (m *mockReservationRepo) FindAll(ctx context.Context) ([]models.Reservation, error) {
	return m.findAllFn(ctx)
}
func (m *mockReservationRepo) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	return m.createFn(ctx, r)
}
func (m *mockReservationRepo) Update(ctx context.Context, r *models.Reservation) error {
	return m.updateFn(ctx, r)
}
func (m *mockReservationRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockReservationRepo) SetCheckedIn(ctx context.Context, id uint, checkedIn bool) error {
	return m.setCheckedInFn(ctx, id, checkedIn)
}
func (m *mockReservationRepo) ReplaceAll(ctx context.Context, rows []models.Reservation) error {
	return m.replaceAllFn(ctx, rows)
}
func (m *mockReservationRepo) UpsertByExternalRef(ctx context.Context, r *models.Reservation) error {
	return m.upsertFn(ctx, r)
}

// --- Mock FleetRepository ---

type mockFleetRepo struct {
	getFn  func(ctx context.Context) (*models.FleetSetting, error)
	saveFn func(ctx context.Context, setting *models.FleetSetting) error
}

func (m *mockFleetRepo) Get(ctx context.Context) (*models.FleetSetting, error) {
	return m.getFn(ctx)
}
func (m *mockFleetRepo) Save(ctx context.Context, setting *models.FleetSetting) error {
	return m.saveFn(ctx, setting)
}

// --- Stub FleetService ---

type stubFleetService struct {
	fleet allocation.Fleet
	err   error
}

func (s *stubFleetService) Current(ctx context.Context) (allocation.Fleet, error) {
	return s.fleet, s.err
}
func (s *stubFleetService) Update(ctx context.Context, fleet allocation.Fleet) (allocation.Fleet, error) {
	return fleet, s.err
}
