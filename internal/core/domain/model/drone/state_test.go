package drone_test

import (
	"testing"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_IsLoadable(t *testing.T) {
	tests := []struct {
		state    drone.State
		loadable bool
	}{
		{drone.Idle, true},
		{drone.Loading, true},
		{drone.Available, true},
		{drone.Loaded, false},
		{drone.Delivering, false},
		{drone.Delivered, false},
		{drone.Returning, false},
		{drone.Unavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.loadable, tt.state.IsLoadable())
		})
	}
}

func TestLoadableStates_MatchesIsLoadable(t *testing.T) {
	loadable := drone.LoadableStates()

	for _, s := range drone.States() {
		assert.Equal(t, s.IsLoadable(), containsState(loadable, s), s.String())
	}
}

func TestLoadableStates_ReturnsCopy(t *testing.T) {
	states := drone.LoadableStates()
	states[0] = drone.Loaded

	assert.Equal(t, drone.Idle, drone.LoadableStates()[0])
}

func TestParseState(t *testing.T) {
	t.Run("known state", func(t *testing.T) {
		s, err := drone.ParseState("DELIVERING")

		require.NoError(t, err)
		assert.Equal(t, drone.Delivering, s)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := drone.ParseState("flying")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("states are case sensitive", func(t *testing.T) {
		_, err := drone.ParseState("idle")

		require.Error(t, err)
	})
}

func TestState_CanTransitionTo(t *testing.T) {
	assert.True(t, drone.Idle.CanTransitionTo(drone.Loading))
	assert.True(t, drone.Loaded.CanTransitionTo(drone.Delivering))
	assert.True(t, drone.Delivering.CanTransitionTo(drone.Delivered))
	assert.True(t, drone.Delivered.CanTransitionTo(drone.Returning))
	assert.True(t, drone.Returning.CanTransitionTo(drone.Idle))
	assert.True(t, drone.Unavailable.CanTransitionTo(drone.Available))

	assert.False(t, drone.Idle.CanTransitionTo(drone.Delivered))
	assert.False(t, drone.Returning.CanTransitionTo(drone.Loading))
	assert.False(t, drone.Delivered.CanTransitionTo(drone.Idle))

	for _, s := range drone.States() {
		assert.False(t, s.CanTransitionTo(drone.Loaded), "%s must not reach LOADED manually", s)
	}
}

func TestModel_Validate(t *testing.T) {
	for _, m := range drone.Models() {
		require.NoError(t, m.Validate())
	}

	require.ErrorIs(t, drone.Model("Featherweight").Validate(), errs.ErrValueIsInvalid)
}

func TestAdmissionPredicates(t *testing.T) {
	assert.True(t, drone.BatteryAllowsLoading(25))
	assert.False(t, drone.BatteryAllowsLoading(24))

	assert.True(t, drone.FitsWeight(400, 100, 500))
	assert.False(t, drone.FitsWeight(400, 101, 500))

	assert.True(t, drone.IsFull(500, 500))
	assert.False(t, drone.IsFull(499, 500))
}

func containsState(states []drone.State, s drone.State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
