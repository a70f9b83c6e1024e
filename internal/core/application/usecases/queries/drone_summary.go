package queries

import (
	"context"
	"database/sql"
	"time"

	"dronefleet/internal/core/domain/model/drone"
)

// DroneSummary is the cheap read model of a drone. It carries no attachments.
type DroneSummary struct {
	Serial          string
	Model           drone.Model
	WeightLimit     int
	BatteryCapacity int
	State           drone.State
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// summaryRow pairs a summary with its on-board weight so the loadable selector
// can judge it. It implements services.Candidate.
type summaryRow struct {
	summary DroneSummary
	onBoard int
}

func (r summaryRow) State() drone.State { return r.summary.State }
func (r summaryRow) Battery() int       { return r.summary.BatteryCapacity }
func (r summaryRow) WeightLimit() int   { return r.summary.WeightLimit }
func (r summaryRow) OnBoardWeight() int { return r.onBoard }

// summaryColumns selects a drone and the weight of its undelivered items.
// The single placeholder is the delivered status.
const summaryColumns = `
	SELECT
		d.serial,
		d.model,
		d.weight_limit,
		d.battery_capacity,
		d.state,
		d.created_at,
		d.updated_at,
		COALESCE((
			SELECT SUM(m.weight)
			FROM drone_medications a
			JOIN medications m ON m.id = a.medication_id
			WHERE a.drone_serial = d.serial AND a.status <> ?
		), 0) AS on_board
	FROM drones d`

func scanSummaries(ctx context.Context, rows *sql.Rows) ([]summaryRow, error) {
	defer rows.Close()

	result := make([]summaryRow, 0)
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			row          summaryRow
			model, state string
		)
		err := rows.Scan(
			&row.summary.Serial,
			&model,
			&row.summary.WeightLimit,
			&row.summary.BatteryCapacity,
			&state,
			&row.summary.CreatedAt,
			&row.summary.UpdatedAt,
			&row.onBoard,
		)
		if err != nil {
			return nil, err
		}

		row.summary.Model = drone.Model(model)
		if row.summary.State, err = drone.ParseState(state); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func summariesOf(rows []summaryRow) []DroneSummary {
	out := make([]DroneSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.summary)
	}
	return out
}
