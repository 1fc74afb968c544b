package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format the id when there is no cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "7f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "object not found: 7f1c", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should include param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("rider", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: param is: rider, ID is: 42 (cause: connection reset)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("address")
	assert.Equal(t, "value is invalid: address", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("status", errors.New("shipped is unknown"))
	assert.Equal(t, "value is invalid: status (cause: shipped is unknown)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should render bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should strip newlines from the value", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("name", "a\nb", 1, 2, errors.New("too long"))

		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "a b")
		assert.Contains(t, err.Error(), "(cause: too long)")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("contact phone")
	assert.Equal(t, "value is required: contact phone", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("address", errors.New("home delivery"))
	assert.Equal(t, "value is required: address (cause: home delivery)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order", 3)
	assert.Equal(t, "version is invalid: order, expected 3", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	wrapped := fmt.Errorf("reassign: %w", errs.NewVersionIsInvalidErrorWithCause("order", 3, errors.New("stale")))
	var target *errs.VersionIsInvalidError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, 3, target.Expected)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrVersionIsInvalid,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
