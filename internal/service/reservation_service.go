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
	ErrReservationNotFound = errors.New("reservation not found")
	ErrEmptyImport         = errors.New("import contains no rows")
	ErrMissingExternalRef  = errors.New("external_ref is required")
)

type ReservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	Create(ctx context.Context, row allocation.Row) (*models.Reservation, error)
	Update(ctx context.Context, id uint, row allocation.Row) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
	CheckIn(ctx context.Context, id uint, checkedIn bool) (*models.Reservation, error)
	// Import replaces the whole table with rows and returns how many were stored.
	Import(ctx context.Context, rows []allocation.Row) (int, error)
	// Sync inserts or overwrites the reservation identified by the row's external_ref.
	Sync(ctx context.Context, row allocation.Row) (*models.Reservation, error)
}

type reservationService struct {
	repo repository.ReservationRepository
}

func NewReservationService(repo repository.ReservationRepository) ReservationService {
	return &reservationService{repo: repo}
}

func (s *reservationService) List(ctx context.Context) ([]models.Reservation, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rows, nil
}

func (s *reservationService) Get(ctx context.Context, id uint) (*models.Reservation, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return row, nil
}

func (s *reservationService) Create(ctx context.Context, row allocation.Row) (*models.Reservation, error) {
	res := models.ReservationFromRow(row)
	if err := s.repo.Create(ctx, &res); err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}

func (s *reservationService) Update(ctx context.Context, id uint, row allocation.Row) (*models.Reservation, error) {
	res := models.ReservationFromRow(row)
	res.ID = id
	if err := s.repo.Update(ctx, &res); err != nil {
		return nil, storeError(err)
	}
	return s.Get(ctx, id)
}

func (s *reservationService) Delete(ctx context.Context, id uint) error {
	return storeError(s.repo.Delete(ctx, id))
}

func (s *reservationService) CheckIn(ctx context.Context, id uint, checkedIn bool) (*models.Reservation, error) {
	if err := s.repo.SetCheckedIn(ctx, id, checkedIn); err != nil {
		return nil, storeError(err)
	}
	return s.Get(ctx, id)
}

func (s *reservationService) Import(ctx context.Context, rows []allocation.Row) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyImport
	}

	table := make([]models.Reservation, len(rows))
	for i, row := range rows {
		table[i] = models.ReservationFromRow(row)
	}

	if err := s.repo.ReplaceAll(ctx, table); err != nil {
		return 0, storeError(err)
	}
	return len(table), nil
}

func (s *reservationService) Sync(ctx context.Context, row allocation.Row) (*models.Reservation, error) {
	res := models.ReservationFromRow(row)
	if res.ExternalRef == nil {
		return nil, ErrMissingExternalRef
	}
	if err := s.repo.UpsertByExternalRef(ctx, &res); err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}

func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrReservationNotFound
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}
