package queries_test

import (
	"testing"

	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindLoadableDronesQuery(t *testing.T) {
	t.Run("nil weight", func(t *testing.T) {
		q, err := queries.NewFindLoadableDronesQuery(nil)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Nil(t, q.RequestedWeight())
	})

	t.Run("weight is copied", func(t *testing.T) {
		w := 200
		q, err := queries.NewFindLoadableDronesQuery(&w)
		require.NoError(t, err)

		w = 1
		got := q.RequestedWeight()
		*got = 7

		assert.Equal(t, 200, *q.RequestedWeight())
	})

	for _, w := range []int{0, -5, 501} {
		weight := w
		_, err := queries.NewFindLoadableDronesQuery(&weight)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "weight %d", w)
	}
}

func TestNewGetBatteryLogsQuery(t *testing.T) {
	tests := []struct {
		name            string
		perPage, page   int
		expectedPerPage int
		expectedPage    int
		expectedOffset  int
		expected        error
	}{
		{"defaults", 0, 0, 20, 1, 0, nil},
		{"explicit", 10, 3, 10, 3, 20, nil},
		{"first page", 5, 1, 5, 1, 0, nil},
		{"negative per page", -1, 1, 0, 0, 0, errs.ErrValueIsOutOfRange},
		{"per page above cap", 101, 1, 0, 0, 0, errs.ErrValueIsOutOfRange},
		{"negative page", 10, -2, 0, 0, 0, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewGetBatteryLogsQuery(tt.perPage, tt.page)

			if tt.expected != nil {
				require.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPerPage, q.PerPage())
			assert.Equal(t, tt.expectedPage, q.Page())
			assert.Equal(t, tt.expectedOffset, q.Offset())
		})
	}
}

func TestSerialQueries_RequireSerial(t *testing.T) {
	_, err := queries.NewGetDroneLoadsQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetBatteryLevelQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, queries.GetDroneLoadsQuery{}.Validate(), queries.ErrGetDroneLoadsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetBatteryLevelQuery{}.Validate(), queries.ErrGetBatteryLevelQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListDronesQuery{}.Validate(), queries.ErrListDronesQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetBatteryLogsQuery{}.Validate(), queries.ErrGetBatteryLogsQueryIsNotConstructed)
}
