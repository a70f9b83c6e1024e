package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	migs, err := Load()

	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, 1, migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.NotEmpty(t, migs[0].downFile)
}

func TestLoad_OrdersAndValidates(t *testing.T) {
	t.Run("sorted by version, unrelated files ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"sql/0002_logs.up.sql":   {Data: []byte("SELECT 2")},
			"sql/0001_init.up.sql":   {Data: []byte("SELECT 1")},
			"sql/0001_init.down.sql": {Data: []byte("SELECT -1")},
			"sql/README.md":          {Data: []byte("notes")},
		}

		migs, err := load(fsys, "sql")

		require.NoError(t, err)
		require.Len(t, migs, 2)
		assert.Equal(t, 1, migs[0].Version)
		assert.Equal(t, 2, migs[1].Version)
		assert.Equal(t, "logs", migs[1].Name)
	})

	t.Run("down without up is rejected", func(t *testing.T) {
		fsys := fstest.MapFS{
			"sql/0003_orphan.down.sql": {Data: []byte("SELECT 1")},
		}

		_, err := load(fsys, "sql")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing up migration for version 0003")
	})
}

func TestUp(t *testing.T) {
	t.Run("applies pending versions in one transaction each", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS drones")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		applied, err := Up(context.Background(), db)

		require.NoError(t, err)
		assert.Equal(t, []int{1}, applied)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips applied versions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

		applied, err := Up(context.Background(), db)

		require.NoError(t, err)
		assert.Empty(t, applied)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed script rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS drones")).
			WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		applied, err := Up(context.Background(), db)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration 0001_init failed: permission denied")
		assert.Empty(t, applied)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRollbackLast(t *testing.T) {
	t.Run("nothing applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		version, err := RollbackLast(context.Background(), db)

		require.NoError(t, err)
		assert.Zero(t, version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reverts the latest version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1")).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DROP TABLE IF EXISTS battery_logs")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schema_migrations WHERE version = $1")).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		version, err := RollbackLast(context.Background(), db)

		require.NoError(t, err)
		assert.Equal(t, 1, version)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
