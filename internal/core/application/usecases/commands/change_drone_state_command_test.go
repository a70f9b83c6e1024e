package commands_test

import (
	"testing"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeDroneStateCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewChangeDroneStateCommand("DRONE-001", "DELIVERING")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "DRONE-001", cmd.Serial())
		assert.Equal(t, drone.Delivering, cmd.Target())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := commands.NewChangeDroneStateCommand("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "serial")
		assert.Contains(t, err.Error(), "state")
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := commands.NewChangeDroneStateCommand("DRONE-001", "FLYING")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.ChangeDroneStateCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeDroneStateCommandIsNotConstructed)
	})
}

func TestChangeDroneStateCommandHandler_Handle(t *testing.T) {
	t.Run("loaded drone departs with its items", func(t *testing.T) {
		ctx := t.Context()
		d := restoreDrone(t, "DRONE-001", 500, 90, drone.Loaded, 200, 300)
		cmd, err := commands.NewChangeDroneStateCommand("DRONE-001", "DELIVERING")
		require.NoError(t, err)

		repo := new(MockDroneRepository)
		uow := new(MockUoW)
		uow.On("DroneRepository").Return(repo)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			repo.On("GetForUpdate", ctx, "DRONE-001").Return(d, nil).Once(),
			repo.On("Update", ctx, d).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockDroneUoWFactory)
		factory.On("Create").Return(uow).Once()

		got, err := commands.NewChangeDroneStateCommandHandler(factory, nil).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, drone.Delivering, got.State())
		for _, a := range got.Attachments() {
			assert.Equal(t, drone.Delivering, a.Status())
		}
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("forbidden transition is not written", func(t *testing.T) {
		ctx := t.Context()
		d := restoreDrone(t, "DRONE-002", 500, 90, drone.Idle)
		cmd, err := commands.NewChangeDroneStateCommand("DRONE-002", "DELIVERED")
		require.NoError(t, err)

		repo := new(MockDroneRepository)
		uow := new(MockUoW)
		uow.On("DroneRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("GetForUpdate", ctx, "DRONE-002").Return(d, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDroneUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewChangeDroneStateCommandHandler(factory, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, drone.ErrInvalidState)
		assert.Equal(t, "Drone cannot change state from IDLE to DELIVERED", err.Error())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown drone", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewChangeDroneStateCommand("GHOST", "IDLE")
		require.NoError(t, err)

		repo := new(MockDroneRepository)
		uow := new(MockUoW)
		uow.On("DroneRepository").Return(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		repo.On("GetForUpdate", ctx, "GHOST").Return(nil, errs.NewObjectNotFoundError("drone", "GHOST")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockDroneUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewChangeDroneStateCommandHandler(factory, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("zero value command", func(t *testing.T) {
		factory := new(MockDroneUoWFactory)

		_, err := commands.NewChangeDroneStateCommandHandler(factory, nil).
			Handle(t.Context(), commands.ChangeDroneStateCommand{})

		require.ErrorIs(t, err, commands.ErrChangeDroneStateCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
