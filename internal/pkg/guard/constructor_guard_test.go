package guard_test

import (
	"errors"
	"testing"

	"medorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero-value guard fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		errNotConstructed := errors.New("Thing must be created via NewThing")

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero-value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard with nil error passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	type thing struct {
		guard guard.ConstructorGuard
	}

	t.Run("struct literal is detected as unconstructed", func(t *testing.T) {
		th := thing{}
		require.Error(t, th.guard.Validate(nil))
	})

	t.Run("constructor-built struct validates", func(t *testing.T) {
		th := thing{guard: guard.NewConstructorGuard()}
		require.NoError(t, th.guard.Validate(nil))
	})
}
