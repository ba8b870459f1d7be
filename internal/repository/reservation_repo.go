package repository

import (
	"context"

	"github.com/Eursukkul/buggy-fleet/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]models.Reservation, error)
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	Create(ctx context.Context, r *models.Reservation) error
	Update(ctx context.Context, r *models.Reservation) error
	Delete(ctx context.Context, id uint) error
	SetCheckedIn(ctx context.Context, id uint, checkedIn bool) error
	// ReplaceAll swaps the whole table for rows in one transaction.
	ReplaceAll(ctx context.Context, rows []models.Reservation) error
	// UpsertByExternalRef inserts or overwrites the row with the same external_ref.
	UpsertByExternalRef(ctx context.Context, r *models.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	var rows []models.Reservation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var row models.Reservation
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *reservationRepository) Create(ctx context.Context, row *models.Reservation) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *reservationRepository) Update(ctx context.Context, row *models.Reservation) error {
	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", row.ID).
		Select("start_time", "customer_name", "adult_count", "child_count", "total_price", "status", "checked_in", "extra", "updated_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reservationRepository) SetCheckedIn(ctx context.Context, id uint, checkedIn bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("checked_in", checkedIn)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reservationRepository) ReplaceAll(ctx context.Context, rows []models.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

func (r *reservationRepository) UpsertByExternalRef(ctx context.Context, row *models.Reservation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_ref"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "customer_name", "adult_count", "child_count", "total_price", "status", "checked_in", "extra", "updated_at"}),
	}).Create(row).Error
}
