package repository

import (
	"context"

	"github.com/Eursukkul/buggy-fleet/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FleetRepository interface {
	// Get returns gorm.ErrRecordNotFound until a stock has been saved.
	Get(ctx context.Context) (*models.FleetSetting, error)
	Save(ctx context.Context, setting *models.FleetSetting) error
}

type fleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) FleetRepository {
	return &fleetRepository{db: db}
}

func (r *fleetRepository) Get(ctx context.Context) (*models.FleetSetting, error) {
	var setting models.FleetSetting
	if err := r.db.WithContext(ctx).First(&setting, models.FleetSettingID).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *fleetRepository) Save(ctx context.Context, setting *models.FleetSetting) error {
	setting.ID = models.FleetSettingID
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"two_seat_stock", "one_seat_stock", "updated_at"}),
	}).Create(setting).Error
}
