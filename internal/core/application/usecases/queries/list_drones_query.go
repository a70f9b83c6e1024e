package queries

import (
	"context"
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListDronesQueryIsNotConstructed = errors.New(
	"ListDronesQuery must be created via NewListDronesQuery constructor",
)

// ListDronesQuery lists the whole fleet.
type ListDronesQuery struct {
	guard guard.ConstructorGuard
}

func NewListDronesQuery() ListDronesQuery {
	return ListDronesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListDronesQuery) Validate() error {
	return q.guard.Validate(ErrListDronesQueryIsNotConstructed)
}

type ListDronesQueryHandler struct {
	db *gorm.DB
}

func NewListDronesQueryHandler(db *gorm.DB) ListDronesQueryHandler {
	return ListDronesQueryHandler{db: db}
}

// Handle returns every drone ordered by serial.
func (h ListDronesQueryHandler) Handle(ctx context.Context, query ListDronesQuery) ([]DroneSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(summaryColumns+`
		ORDER BY d.serial
	`, drone.Delivered.String()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list drones", err)
	}

	all, err := scanSummaries(ctx, rows)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list drones", err)
	}
	return summariesOf(all), nil
}
