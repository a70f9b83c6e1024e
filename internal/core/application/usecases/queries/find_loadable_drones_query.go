package queries

import (
	"errors"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrFindLoadableDronesQueryIsNotConstructed = errors.New(
	"FindLoadableDronesQuery must be created via NewFindLoadableDronesQuery constructor",
)

// FindLoadableDronesQuery asks which drones could accept a load right now,
// optionally of a given weight in grams.
//
// Example:
//
//	weight := 200
//	query, err := NewFindLoadableDronesQuery(&weight)
//	if err != nil {
//	    return err
//	}
//	drones, err := handler.Handle(ctx, query)
type FindLoadableDronesQuery struct { //nolint:recvcheck //using for validation
	requestedWeight *int

	guard guard.ConstructorGuard
}

// NewFindLoadableDronesQuery creates the query. A nil weight asks only for
// state and battery eligibility.
func NewFindLoadableDronesQuery(requestedWeight *int) (FindLoadableDronesQuery, error) {
	q := FindLoadableDronesQuery{
		guard: guard.NewConstructorGuard(),
	}
	if err := q.setRequestedWeight(requestedWeight); err != nil {
		return FindLoadableDronesQuery{}, err
	}
	return q, nil
}

func (q FindLoadableDronesQuery) Validate() error {
	return q.guard.Validate(ErrFindLoadableDronesQueryIsNotConstructed)
}

// RequestedWeight returns a copy of the weight filter, or nil.
func (q FindLoadableDronesQuery) RequestedWeight() *int {
	if q.requestedWeight == nil {
		return nil
	}
	w := *q.requestedWeight
	return &w
}

func (q *FindLoadableDronesQuery) setRequestedWeight(weight *int) error {
	if weight == nil {
		return nil
	}
	if *weight < 1 || *weight > drone.MaxWeightLimit {
		return errs.NewValueIsOutOfRangeError("weight", *weight, 1, drone.MaxWeightLimit)
	}
	w := *weight
	q.requestedWeight = &w
	return nil
}
