package commands_test

import (
	"testing"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	notes := "call before delivery"
	cmd, err := commands.NewUpdateOrderCommand("erin", id, order.Amendment{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "erin", cmd.Actor())
	assert.True(t, id.IsEqual(cmd.OrderID()))
	require.NotNil(t, cmd.Amendment().Notes)
	assert.Equal(t, notes, *cmd.Amendment().Notes)
}

func TestNewUpdateOrderCommand_EmptyAmendmentAllowed(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand("erin", kernel.NewUUID(), order.Amendment{})
	require.NoError(t, err)
}

func TestNewUpdateOrderCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand("", kernel.NewUUID(), order.Amendment{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand("erin", kernel.UUID{}, order.Amendment{})
	require.Error(t, err)
}
