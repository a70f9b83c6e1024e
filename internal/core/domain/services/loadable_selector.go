package services

import (
	"dronefleet/internal/core/domain/model/drone"
)

// Candidate is the read-side view of a drone that the selector needs. Query
// read models implement it without loading the attachment graph.
type Candidate interface {
	State() drone.State
	Battery() int
	WeightLimit() int
	OnBoardWeight() int
}

// LoadableSelector answers "could this drone take N grams right now" with the
// same gates as Drone.Load, minus the mutation.
//
// Example:
//
//	selector := services.NewLoadableSelector()
//	weight := 200
//	for _, c := range candidates {
//	    if selector.Admits(c, &weight) {
//	        // c can take 200g
//	    }
//	}
type LoadableSelector struct{}

func NewLoadableSelector() LoadableSelector {
	return LoadableSelector{}
}

// Admits reports whether c passes the state and battery gates and, when
// requestedWeight is set, whether the weight fits next to the on-board load.
func (LoadableSelector) Admits(c Candidate, requestedWeight *int) bool {
	if c == nil {
		return false
	}
	if !c.State().IsLoadable() || !drone.BatteryAllowsLoading(c.Battery()) {
		return false
	}
	if requestedWeight == nil {
		return true
	}
	return drone.FitsWeight(c.OnBoardWeight(), *requestedWeight, c.WeightLimit())
}

// Filter keeps the candidates the selector admits, in their original order.
func Filter[T Candidate](s LoadableSelector, candidates []T, requestedWeight *int) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if s.Admits(c, requestedWeight) {
			out = append(out, c)
		}
	}
	return out
}
