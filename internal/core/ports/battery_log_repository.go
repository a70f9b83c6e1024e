package ports

import (
	"context"

	"dronefleet/internal/core/domain/model/batterylog"
)

// BatteryLogRepository is the append-only store of battery audit entries.
type BatteryLogRepository interface {
	// Add appends one entry.
	Add(ctx context.Context, entry *batterylog.Entry) error

	// AddBatch appends entries in a single statement. An empty batch is a no-op.
	AddBatch(ctx context.Context, entries []*batterylog.Entry) error
}
