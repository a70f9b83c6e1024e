package dronerepo_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"dronefleet/internal/adapters/out/postgres/dronerepo"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, sqlMock
}

func newTracker() *MockAggregateTracker {
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return tracker
}

func TestGormDroneRepository_StorageFailures(t *testing.T) {
	t.Run("get surfaces driver errors as storage unavailable", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "drones"`)).
			WillReturnError(errors.New("connection refused"))

		_, err := dronerepo.NewGormDroneRepository(db, newTracker()).Get(context.Background(), "DRONE-001")

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Equal(t, "storage unavailable: get drone (cause: connection refused)", err.Error())
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("exists surfaces driver errors", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "drones"`)).
			WillReturnError(errors.New("too many connections"))

		_, err := dronerepo.NewGormDroneRepository(db, newTracker()).Exists(context.Background(), "DRONE-001")

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("update of unknown serial is not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE "drones" SET`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		d, err := drone.NewDrone("GHOST", drone.Lightweight, 100, 50, drone.Idle)
		require.NoError(t, err)

		err = dronerepo.NewGormDroneRepository(db, newTracker()).Update(context.Background(), d)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("update failure is storage unavailable and nothing is tracked", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE "drones" SET`)).
			WillReturnError(errors.New("server closed the connection"))

		d, err := drone.NewDrone("DRONE-001", drone.Lightweight, 100, 50, drone.Idle)
		require.NoError(t, err)
		tracker := new(MockAggregateTracker)

		err = dronerepo.NewGormDroneRepository(db, tracker).Update(context.Background(), d)

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		tracker.AssertNotCalled(t, "TrackAggregate", mock.Anything, mock.Anything)
		require.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
