// Package batterylogrepo persists battery audit entries. Entries are append-only.
package batterylogrepo

import (
	"time"

	"dronefleet/internal/core/domain/model/batterylog"
	"dronefleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is one row of battery_logs. Serial and level are indexed for
// per-drone and range lookups.
type EntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DroneSerial  string    `gorm:"type:varchar(100);not null;index"`
	BatteryLevel int       `gorm:"type:int;not null;index"`
	Description  string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (EntryDTO) TableName() string {
	return "battery_logs"
}

func fromDomain(e *batterylog.Entry) EntryDTO {
	return EntryDTO{
		ID:           e.ID().Bytes(),
		DroneSerial:  e.DroneSerial(),
		BatteryLevel: e.BatteryLevel(),
		Description:  e.Description(),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.CreatedAt(),
	}
}

// ToDomain converts a stored row back into an entry.
func ToDomain(dto EntryDTO) (*batterylog.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return batterylog.RestoreEntry(id, dto.DroneSerial, dto.BatteryLevel, dto.Description, dto.CreatedAt)
}
