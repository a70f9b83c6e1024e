package guard_test

import (
	"errors"
	"sync"
	"testing"

	"dronefleet/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("payload not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuard_EmbeddedInPayload mirrors how commands embed the guard.
func TestConstructorGuard_EmbeddedInPayload(t *testing.T) {
	errPayloadNotConstructed := errors.New("payload must be created via newPayload")

	type payload struct {
		serial string
		grams  int
		guard  guard.ConstructorGuard
	}

	newPayload := func(serial string, grams int) (payload, error) {
		if serial == "" {
			return payload{}, errors.New("serial is required")
		}
		return payload{serial: serial, grams: grams, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(p payload) error {
		return p.guard.Validate(errPayloadNotConstructed)
	}

	t.Run("constructed_payload_is_valid", func(t *testing.T) {
		p, err := newPayload("DRONE-001", 120)

		require.NoError(t, err)
		require.NoError(t, validate(p))
		assert.Equal(t, "DRONE-001", p.serial)
		assert.Equal(t, 120, p.grams)
	})

	t.Run("literal_payload_is_rejected", func(t *testing.T) {
		p := payload{serial: "DRONE-001", grams: 120}

		require.ErrorIs(t, validate(p), errPayloadNotConstructed)
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		p, err := newPayload("DRONE-002", 10)
		require.NoError(t, err)

		cp := p

		require.NoError(t, validate(cp))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
