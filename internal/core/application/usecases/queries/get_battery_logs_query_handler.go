package queries

import (
	"context"
	"time"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatteryLogEntry is one battery log row.
type BatteryLogEntry struct {
	ID           kernel.UUID
	DroneSerial  string
	BatteryLevel int
	Description  string
	CreatedAt    time.Time
}

type GetBatteryLogsQueryHandler struct {
	db *gorm.DB
}

func NewGetBatteryLogsQueryHandler(db *gorm.DB) GetBatteryLogsQueryHandler {
	return GetBatteryLogsQueryHandler{db: db}
}

// Handle returns one page ordered by creation time, newest first. Entries
// sharing a timestamp are ordered by id so pages never overlap.
func (h GetBatteryLogsQueryHandler) Handle(ctx context.Context, query GetBatteryLogsQuery) ([]BatteryLogEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, drone_serial, battery_level, description, created_at
		FROM battery_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, query.PerPage(), query.Offset()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get battery logs", err)
	}
	defer rows.Close()

	entries := make([]BatteryLogEntry, 0, query.PerPage())
	for rows.Next() {
		var (
			entry BatteryLogEntry
			id    uuid.UUID
		)
		if err = rows.Scan(&id, &entry.DroneSerial, &entry.BatteryLevel, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, errs.NewStorageUnavailableError("get battery logs", err)
		}
		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, errs.NewStorageUnavailableError("get battery logs", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("get battery logs", err)
	}
	return entries, nil
}
