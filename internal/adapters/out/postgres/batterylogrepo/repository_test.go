package batterylogrepo_test

import (
	"context"
	"testing"

	postgres_adapter "dronefleet/internal/adapters/out/postgres"
	"dronefleet/internal/adapters/out/postgres/batterylogrepo"
	"dronefleet/internal/core/domain/model/batterylog"
	"dronefleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := postgres_adapter.Config{
		Driver:       postgres_adapter.DriverSQLite,
		Path:         "file:" + kernel.NewUUID().String() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}
	db, err := postgres_adapter.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(context.Background(), cfg, db, nil))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGormBatteryLogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add round trips through the row", func(t *testing.T) {
		db := openSQLite(t)
		repo := batterylogrepo.NewGormBatteryLogRepository(db)
		entry, err := batterylog.NewEntry("DRONE-001", 42, batterylog.DefaultDescription)
		require.NoError(t, err)

		require.NoError(t, repo.Add(ctx, entry))

		var dto batterylogrepo.EntryDTO
		require.NoError(t, db.First(&dto).Error)
		restored, err := batterylogrepo.ToDomain(dto)
		require.NoError(t, err)
		assert.Equal(t, entry.ID(), restored.ID())
		assert.Equal(t, "DRONE-001", restored.DroneSerial())
		assert.Equal(t, 42, restored.BatteryLevel())
		assert.Equal(t, "N/A", restored.Description())
	})

	t.Run("batch inserts every entry", func(t *testing.T) {
		db := openSQLite(t)
		repo := batterylogrepo.NewGormBatteryLogRepository(db)

		var entries []*batterylog.Entry
		for i, serial := range []string{"A", "B", "C"} {
			e, err := batterylog.NewEntry(serial, i*10, batterylog.DefaultDescription)
			require.NoError(t, err)
			entries = append(entries, e)
		}

		require.NoError(t, repo.AddBatch(ctx, entries))

		var count int64
		require.NoError(t, db.Model(&batterylogrepo.EntryDTO{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	})

	t.Run("empty batch touches nothing", func(t *testing.T) {
		repo := batterylogrepo.NewGormBatteryLogRepository(openSQLite(t))

		require.NoError(t, repo.AddBatch(ctx, nil))
	})

	t.Run("unconstructed entry is rejected before the insert", func(t *testing.T) {
		repo := batterylogrepo.NewGormBatteryLogRepository(openSQLite(t))

		err := repo.Add(ctx, &batterylog.Entry{})

		require.ErrorIs(t, err, batterylog.ErrEntryIsNotConstructed)
	})
}
