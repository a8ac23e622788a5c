package guard_test

import (
	"errors"
	"testing"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_fails_with_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		customError := errors.New("object not constructed")

		err := g.Validate(customError)

		require.Error(t, err)
		assert.Equal(t, customError, err)
	})

	t.Run("zero_value_fails_with_default_error_when_nil_passed", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})
}
