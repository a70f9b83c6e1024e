package dronerepo

import (
	"context"

	"dronefleet/internal/adapters/out/postgres/dberr"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const paramName = "drone"

// GormDroneRepository implements DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormDroneRepository creates a new GORM drone repository.
func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered drone. Attachments of a new drone are ignored.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Attachments = nil
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberr.Wrap("add drone", paramName, aggregate.Serial(), err)
	}

	r.tracker.TrackAggregate(aggregate.Serial(), aggregate)
	return nil
}

// Update writes the drone columns and upserts its attachments. Medications are
// insert-only; an existing attachment only has its status and updated_at
// rewritten.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DroneDTO{}).Where("serial = ?", dto.Serial).Updates(map[string]any{
		"model":            dto.Model,
		"weight_limit":     dto.WeightLimit,
		"battery_capacity": dto.BatteryCapacity,
		"state":            dto.State,
		"updated_at":       dto.UpdatedAt,
	})
	if result.Error != nil {
		return dberr.Wrap("update drone", paramName, dto.Serial, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(paramName, dto.Serial)
	}

	if len(dto.Attachments) > 0 {
		medications := make([]MedicationDTO, 0, len(dto.Attachments))
		for _, a := range dto.Attachments {
			medications = append(medications, a.Medication)
		}

		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&medications).Error; err != nil {
			return dberr.Wrap("save medications", paramName, dto.Serial, err)
		}

		err := db.Omit("Medication").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&dto.Attachments).Error
		if err != nil {
			return dberr.Wrap("save attachments", paramName, dto.Serial, err)
		}
	}

	r.tracker.TrackAggregate(aggregate.Serial(), aggregate)
	return nil
}

// Get retrieves a drone by serial with its attachments and their medications.
func (r *GormDroneRepository) Get(ctx context.Context, serial string) (*drone.Drone, error) {
	return r.get(ctx, r.db.WithContext(ctx), serial)
}

// GetForUpdate locks the drone row until the transaction ends. SQLite has no
// row locks and serializes writers on its own, so the clause is skipped there.
func (r *GormDroneRepository) GetForUpdate(ctx context.Context, serial string) (*drone.Drone, error) {
	db := r.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: DroneDTO{}.TableName()}})
	}
	return r.get(ctx, db, serial)
}

func (r *GormDroneRepository) get(_ context.Context, db *gorm.DB, serial string) (*drone.Drone, error) {
	if serial == "" {
		return nil, errs.NewValueIsRequiredError("serial")
	}

	var dto DroneDTO
	err := db.
		Preload("Attachments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at, id")
		}).
		Preload("Attachments.Medication").
		First(&dto, "serial = ?", serial).Error
	if err != nil {
		return nil, dberr.Wrap("get drone", paramName, serial, err)
	}

	return toDomain(dto)
}

// Exists reports whether the serial is registered.
func (r *GormDroneRepository) Exists(ctx context.Context, serial string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DroneDTO{}).Where("serial = ?", serial).Count(&count).Error; err != nil {
		return false, dberr.Wrap("check drone", paramName, serial, err)
	}
	return count > 0, nil
}

// All retrieves every drone ordered by serial.
func (r *GormDroneRepository) All(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	err := r.db.WithContext(ctx).
		Preload("Attachments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at, id")
		}).
		Preload("Attachments.Medication").
		Order("serial").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("list drones", paramName, "all", err)
	}

	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	return drones, nil
}
