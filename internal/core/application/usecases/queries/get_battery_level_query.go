package queries

import (
	"context"
	"errors"
	"time"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetBatteryLevelQueryIsNotConstructed = errors.New(
	"GetBatteryLevelQuery must be created via NewGetBatteryLevelQuery constructor",
)

type GetBatteryLevelQuery struct { //nolint:recvcheck //using for validation
	serial string

	guard guard.ConstructorGuard
}

func NewGetBatteryLevelQuery(serial string) (GetBatteryLevelQuery, error) {
	if serial == "" {
		return GetBatteryLevelQuery{}, errs.NewValueIsRequiredError("serial")
	}
	return GetBatteryLevelQuery{serial: serial, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBatteryLevelQuery) Validate() error {
	return q.guard.Validate(ErrGetBatteryLevelQueryIsNotConstructed)
}

func (q GetBatteryLevelQuery) Serial() string { return q.serial }

// BatteryLevel is the battery projection of one drone.
type BatteryLevel struct {
	Serial    string
	Battery   int
	State     drone.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GetBatteryLevelQueryHandler struct {
	db *gorm.DB
}

func NewGetBatteryLevelQueryHandler(db *gorm.DB) GetBatteryLevelQueryHandler {
	return GetBatteryLevelQueryHandler{db: db}
}

func (h GetBatteryLevelQueryHandler) Handle(ctx context.Context, query GetBatteryLevelQuery) (BatteryLevel, error) {
	if err := query.Validate(); err != nil {
		return BatteryLevel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT serial, battery_capacity, state, created_at, updated_at
		FROM drones
		WHERE serial = ?
	`, query.Serial()).Rows()
	if err != nil {
		return BatteryLevel{}, errs.NewStorageUnavailableError("get battery level", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BatteryLevel{}, errs.NewStorageUnavailableError("get battery level", err)
		}
		return BatteryLevel{}, errs.NewObjectNotFoundError("drone", query.Serial())
	}

	var (
		level BatteryLevel
		state string
	)
	if err = rows.Scan(&level.Serial, &level.Battery, &state, &level.CreatedAt, &level.UpdatedAt); err != nil {
		return BatteryLevel{}, errs.NewStorageUnavailableError("get battery level", err)
	}
	if level.State, err = drone.ParseState(state); err != nil {
		return BatteryLevel{}, errs.NewStorageUnavailableError("get battery level", err)
	}
	return level, nil
}
