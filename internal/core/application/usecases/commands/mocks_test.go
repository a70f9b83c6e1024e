package commands_test

import (
	"context"
	"testing"
	"time"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/domain/model/batterylog"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, serial string) (*drone.Drone, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetForUpdate(ctx context.Context, serial string) (*drone.Drone, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) Exists(ctx context.Context, serial string) (bool, error) {
	args := m.Called(ctx, serial)
	return args.Bool(0), args.Error(1)
}

func (m *MockDroneRepository) All(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type MockBatteryLogRepository struct{ mock.Mock }

func (m *MockBatteryLogRepository) Add(ctx context.Context, e *batterylog.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockBatteryLogRepository) AddBatch(ctx context.Context, entries []*batterylog.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockUoW satisfies both commands.DroneUoW and commands.UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) BatteryLogRepository() ports.BatteryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.BatteryLogRepository)
}

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

const testImage = "https://cdn.example.com/med.png"

// restoreDrone builds a stored-looking drone whose on-board load is one
// LOADED attachment per entry of weights.
func restoreDrone(t *testing.T, serial string, limit, battery int, state drone.State, weights ...int) *drone.Drone {
	t.Helper()

	attachments := make([]*drone.Attachment, 0, len(weights))
	for _, w := range weights {
		m, err := drone.RestoreMedication(kernel.NewUUID(), "Stored", w, "STORED", testImage, fixedTime)
		require.NoError(t, err)
		a, err := drone.RestoreAttachment(kernel.NewUUID(), m, "08031234567", "08037654321",
			"12 Marina Road, Lagos", drone.Loaded, fixedTime, fixedTime)
		require.NoError(t, err)
		attachments = append(attachments, a)
	}

	d, err := drone.RestoreDrone(serial, drone.Cruiserweight, limit, battery, state, attachments, fixedTime, fixedTime)
	require.NoError(t, err)
	return d
}

func loadItem(name string, weight int) commands.LoadItem {
	return commands.LoadItem{
		Name:           name,
		Weight:         weight,
		Code:           "MED_1",
		Image:          testImage,
		PickupNumber:   "08031234567",
		DeliveryNumber: "08037654321",
		Address:        "12 Marina Road, Lagos",
	}
}
