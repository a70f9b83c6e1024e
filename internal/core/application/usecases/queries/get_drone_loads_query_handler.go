package queries

import (
	"context"
	"database/sql"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDroneLoadsQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneLoadsQueryHandler(db *gorm.DB) GetDroneLoadsQueryHandler {
	return GetDroneLoadsQueryHandler{db: db}
}

// Handle returns the drone's loads in attach order, or ObjectNotFoundError
// when the serial is unknown. A known drone with nothing attached yields an
// empty slice.
func (h GetDroneLoadsQueryHandler) Handle(ctx context.Context, query GetDroneLoadsQuery) ([]DroneLoad, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM drones WHERE serial = ?`, query.Serial()).Scan(&count).Error; err != nil {
		return nil, errs.NewStorageUnavailableError("get drone loads", err)
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("drone", query.Serial())
	}

	rows, err := db.Raw(`
		SELECT
			a.id,
			a.pickup_number,
			a.delivery_number,
			a.address,
			a.status,
			a.created_at,
			a.updated_at,
			m.id,
			m.name,
			m.weight,
			m.code,
			m.medication_image,
			m.created_at
		FROM drone_medications a
		JOIN medications m ON m.id = a.medication_id
		WHERE a.drone_serial = ?
		ORDER BY a.created_at, a.id
	`, query.Serial()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get drone loads", err)
	}

	loads, err := scanLoads(rows)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get drone loads", err)
	}
	return loads, nil
}

func scanLoads(rows *sql.Rows) ([]DroneLoad, error) {
	defer rows.Close()

	loads := make([]DroneLoad, 0)
	for rows.Next() {
		var (
			load      DroneLoad
			id, medID uuid.UUID
			status    string
		)
		err := rows.Scan(
			&id,
			&load.PickupNumber,
			&load.DeliveryNumber,
			&load.Address,
			&status,
			&load.CreatedAt,
			&load.UpdatedAt,
			&medID,
			&load.Medication.Name,
			&load.Medication.Weight,
			&load.Medication.Code,
			&load.Medication.Image,
			&load.Medication.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if load.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if load.Medication.ID, err = kernel.UUIDFromBytes(medID[:]); err != nil {
			return nil, err
		}
		if load.Status, err = drone.ParseState(status); err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loads, nil
}
