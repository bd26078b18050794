package errs_test

import (
	"errors"
	"testing"

	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with non-string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("salesPerson")

		assert.Equal(t, "salesPerson", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: salesPerson", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("salesPerson", cause)

		assert.Equal(t, "salesPerson", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: salesPerson (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 150 is quantity, min value is 1, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("lineDiscount", -5, 0, 100, cause)

		assert.Equal(t, "lineDiscount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: validation failed)")
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("values with newlines are sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderCode")

		assert.Equal(t, "orderCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orderCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orderCode", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderCode (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidErrorWithCause("version", errors.New("negative"))

	assert.Equal(t, "version", err.ParamName)
	assert.Equal(t, "version is invalid: version (cause: negative)", err.Error())
	assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
}

func TestProductInactiveError(t *testing.T) {
	err := errs.NewProductInactiveError("p-1", "SKU-9000")

	assert.Equal(t, "p-1", err.ProductID)
	assert.Equal(t, "SKU-9000", err.SKU)
	assert.Equal(t, "product is inactive: SKU-9000 (p-1)", err.Error())
	assert.Equal(t, errs.ErrProductInactive, err.Unwrap())
}

func TestInsufficientInventoryError(t *testing.T) {
	err := errs.NewInsufficientInventoryError("p-1", 5, 3)

	assert.Equal(t, 5, err.Requested)
	assert.Equal(t, 3, err.Available)
	assert.Equal(t, "insufficient inventory: product p-1, requested 5, available 3", err.Error())
	assert.Equal(t, errs.ErrInsufficientInventory, err.Unwrap())
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("pending", "shipped")

	assert.Equal(t, "pending", err.From)
	assert.Equal(t, "shipped", err.To)
	assert.Equal(t, "invalid status transition: pending -> shipped", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("cancel", "delivered")

	assert.Equal(t, "cancel", err.Operation)
	assert.Equal(t, "delivered", err.Status)
	assert.Equal(t, "operation not allowed in current state: cannot cancel while order is delivered", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestIntegrityError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewIntegrityError("order vanished after update")
		assert.Equal(t, "integrity violation: order vanished after update", err.Error())
		assert.Equal(t, errs.ErrIntegrityViolation, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("row missing")
		err := errs.NewIntegrityErrorWithCause("order vanished after update", cause)
		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: row missing)")
	})
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("orderId", "123")

	assert.Equal(t, "orderId", err.ParamName)
	assert.Equal(t, "concurrent modification: param is: orderId, ID is: 123", err.Error())
	assert.Equal(t, errs.ErrConcurrentModification, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "product is inactive", errs.ErrProductInactive.Error())
		assert.Equal(t, "insufficient inventory", errs.ErrInsufficientInventory.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("customerId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("salesPerson"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("orderCode"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewProductInactiveError("p-1", "SKU-1"), errs.ErrProductInactive)
		require.ErrorIs(t, errs.NewInsufficientInventoryError("p-1", 5, 3), errs.ErrInsufficientInventory)
		require.ErrorIs(t, errs.NewInvalidTransitionError("pending", "shipped"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInvalidStateError("cancel", "cancelled"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewIntegrityError("x"), errs.ErrIntegrityViolation)
		require.ErrorIs(t, errs.NewConcurrentModificationError("orderId", "1"), errs.ErrConcurrentModification)
	})
}
