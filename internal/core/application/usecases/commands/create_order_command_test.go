package commands_test

import (
	"testing"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines(t *testing.T) []commands.OrderLine {
	t.Helper()
	return []commands.OrderLine{
		{ProductID: kernel.NewUUID(), Quantity: 2, Discount: kernel.ZeroMoney()},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	lines := validLines(t)

	cmd, err := commands.NewCreateOrderCommand(
		"alice", customerID, lines, nil, "Maria Ivanova", "urgent",
		kernel.ZeroMoney(), nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Actor())
	assert.True(t, customerID.IsEqual(cmd.CustomerID()))
	assert.Len(t, cmd.Lines(), 1)
	assert.Equal(t, "Maria Ivanova", cmd.SalesPerson())
	assert.Equal(t, "urgent", cmd.Notes())
	assert.Nil(t, cmd.Tax())
}

func TestNewCreateOrderCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		"", kernel.NewUUID(), validLines(t), nil, "Maria Ivanova", "",
		kernel.ZeroMoney(), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		"alice", kernel.UUID{}, validLines(t), nil, "Maria Ivanova", "",
		kernel.ZeroMoney(), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		"alice", kernel.NewUUID(), nil, nil, "Maria Ivanova", "",
		kernel.ZeroMoney(), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_NonPositiveQuantity(t *testing.T) {
	lines := []commands.OrderLine{
		{ProductID: kernel.NewUUID(), Quantity: 0, Discount: kernel.ZeroMoney()},
	}
	_, err := commands.NewCreateOrderCommand(
		"alice", kernel.NewUUID(), lines, nil, "Maria Ivanova", "",
		kernel.ZeroMoney(), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_EmptySalesPerson(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		"alice", kernel.NewUUID(), validLines(t), nil, "", "",
		kernel.ZeroMoney(), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
