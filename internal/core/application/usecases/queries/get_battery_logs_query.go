package queries

import (
	"errors"
	"fmt"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

const (
	DefaultPerPage = 20
	DefaultPage    = 1
	MaxPerPage     = 100
)

var ErrGetBatteryLogsQueryIsNotConstructed = errors.New(
	"GetBatteryLogsQuery must be created via NewGetBatteryLogsQuery constructor",
)

// GetBatteryLogsQuery pages through the battery log, newest entries first.
//
// Example:
//
//	query, err := NewGetBatteryLogsQuery(10, 3) // entries 21..30
type GetBatteryLogsQuery struct { //nolint:recvcheck //using for validation
	perPage int
	page    int

	guard guard.ConstructorGuard
}

// NewGetBatteryLogsQuery creates the query. Zero for either argument selects
// its default.
func NewGetBatteryLogsQuery(perPage, page int) (GetBatteryLogsQuery, error) {
	q := GetBatteryLogsQuery{
		perPage: DefaultPerPage,
		page:    DefaultPage,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPerPage(perPage),
		q.setPage(page),
	); err != nil {
		return GetBatteryLogsQuery{}, err
	}

	return q, nil
}

func (q GetBatteryLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetBatteryLogsQueryIsNotConstructed)
}

func (q GetBatteryLogsQuery) PerPage() int { return q.perPage }
func (q GetBatteryLogsQuery) Page() int    { return q.page }

// Offset is the number of entries skipped before this page.
func (q GetBatteryLogsQuery) Offset() int {
	return q.perPage * (q.page - 1)
}

func (q *GetBatteryLogsQuery) setPerPage(perPage int) error {
	if perPage == 0 {
		return nil
	}
	if perPage < 1 || perPage > MaxPerPage {
		return errs.NewValueIsOutOfRangeError("perPage", perPage, 1, MaxPerPage)
	}
	q.perPage = perPage
	return nil
}

func (q *GetBatteryLogsQuery) setPage(page int) error {
	if page == 0 {
		return nil
	}
	if page < 1 {
		return errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("page must be at least 1, got %d", page))
	}
	q.page = page
	return nil
}
