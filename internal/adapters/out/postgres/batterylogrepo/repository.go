package batterylogrepo

import (
	"context"

	"dronefleet/internal/adapters/out/postgres/dberr"
	"dronefleet/internal/core/domain/model/batterylog"

	"gorm.io/gorm"
)

const paramName = "battery log"

// GormBatteryLogRepository implements BatteryLogRepository using GORM.
type GormBatteryLogRepository struct {
	db *gorm.DB
}

func NewGormBatteryLogRepository(db *gorm.DB) *GormBatteryLogRepository {
	return &GormBatteryLogRepository{db: db}
}

// Add appends one entry.
func (r *GormBatteryLogRepository) Add(ctx context.Context, entry *batterylog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap("add battery log", paramName, entry.ID().String(), err)
	}
	return nil
}

// AddBatch appends all entries in one INSERT.
func (r *GormBatteryLogRepository) AddBatch(ctx context.Context, entries []*batterylog.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(e))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return dberr.Wrap("add battery logs", paramName, len(dtos), err)
	}
	return nil
}
