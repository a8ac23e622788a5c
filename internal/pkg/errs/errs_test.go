package errs_test

import (
	"errors"
	"testing"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", "123")

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("parcelId", "123", cause)

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("token already used")

		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: token already used", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("no transition from DELIVERED to ASSIGNED")
		err := errs.NewInvalidStateErrorWithCause("parcel status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: parcel status (cause: no transition from DELIVERED to ASSIGNED)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestTokenExpiredError(t *testing.T) {
	err := errs.NewTokenExpiredError("delivery token")

	assert.Equal(t, "token is expired: delivery token", err.Error())
	assert.Equal(t, errs.ErrTokenExpired, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	cause := errors.New("parcel belongs to another courier")
	err := errs.NewForbiddenErrorWithCause("courierId", cause)

	assert.Equal(t, "courierId", err.ParamName)
	assert.Equal(t, "operation is forbidden: courierId (cause: parcel belongs to another courier)", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("trackingNumber")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: trackingNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("trackingNumber", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: trackingNumber (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 100.0, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 100.0, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 100 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("destinationCity")

	assert.Equal(t, "value is required: destinationCity", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("parcelId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewInvalidStateError("reused token"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewTokenExpiredError("delivery token"), errs.ErrTokenExpired)
		require.ErrorIs(t, errs.NewForbiddenError("courierId"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewValueIsInvalidError("city"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lat", 100, -90, 90), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("orderId"), errs.ErrValueIsRequired)
	})
}
