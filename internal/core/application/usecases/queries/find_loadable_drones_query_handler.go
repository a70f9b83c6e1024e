package queries

import (
	"context"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/services"
	"dronefleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// FindLoadableDronesQueryHandler is the fleet query service. SQL narrows the
// fleet by state and battery using the indexed columns; the final decision is
// made by services.LoadableSelector, the same predicates the loading engine
// applies, so the two can never drift apart.
type FindLoadableDronesQueryHandler struct {
	db       *gorm.DB
	selector services.LoadableSelector
}

func NewFindLoadableDronesQueryHandler(db *gorm.DB) FindLoadableDronesQueryHandler {
	return FindLoadableDronesQueryHandler{
		db:       db,
		selector: services.NewLoadableSelector(),
	}
}

// Handle returns matching summaries ordered by serial.
func (h FindLoadableDronesQueryHandler) Handle(
	ctx context.Context,
	query FindLoadableDronesQuery,
) ([]DroneSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loadable := make([]string, 0, len(drone.LoadableStates()))
	for _, s := range drone.LoadableStates() {
		loadable = append(loadable, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(summaryColumns+`
		WHERE d.state IN ? AND d.battery_capacity >= ?
		ORDER BY d.serial
	`, drone.Delivered.String(), loadable, drone.MinLoadableBattery).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("find loadable drones", err)
	}

	candidates, err := scanSummaries(ctx, rows)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("find loadable drones", err)
	}

	return summariesOf(services.Filter(h.selector, candidates, query.RequestedWeight())), nil
}
