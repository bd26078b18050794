package commands_test

import (
	"testing"
	"time"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusPending)

	discount := money(t, "10.00")
	notes := "deliver to loading dock"
	cmd, err := commands.NewUpdateOrderCommand("erin", aggregate.ID(), order.Amendment{
		Discount: &discount,
		Notes:    &notes,
	})
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	audit := new(MockAuditSink)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		audit.On("Record", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory, audit, nil)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Subtotal 200.00 - discount 10.00 + tax 20.00.
	assert.Equal(t, "10.00", updated.Discount().String())
	assert.Equal(t, "210.00", updated.Total().String())
	assert.Equal(t, notes, updated.Notes())

	recorded := audit.Calls[0].Arguments.Get(1).(ports.AuditEntry)
	assert.Equal(t, ports.AuditOrderUpdated, recorded.Kind)
	assert.Equal(t, "erin", recorded.Actor)
	assert.Equal(t, "10.00", recorded.Details["discount"])
	assert.Equal(t, "210.00", recorded.Details["totalAmount"])
	assert.Equal(t, notes, recorded.Details["notes"])

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_EmptyAmendmentSkipsAudit(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusConfirmed)
	cmd, err := commands.NewUpdateOrderCommand("erin", aggregate.ID(), order.Amendment{})
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	audit := new(MockAuditSink)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, audit, nil)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_CompletedOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusCompleted)
	salesPerson := "Ivan Petrov"
	cmd, err := commands.NewUpdateOrderCommand("erin", aggregate.ID(), order.Amendment{
		SalesPerson: &salesPerson,
	})
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderCommandHandler(factory, nil, nil)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_DeliveryDateChangeAudited(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusPending)
	newDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewUpdateOrderCommand("erin", aggregate.ID(), order.Amendment{
		DeliveryDate: &newDate,
	})
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	audit := new(MockAuditSink)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	audit.On("Record", ctx, mock.AnythingOfType("ports.AuditEntry")).Return(nil).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, audit, nil)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveryDate())
	assert.True(t, newDate.Equal(*updated.DeliveryDate()))

	recorded := audit.Calls[0].Arguments.Get(1).(ports.AuditEntry)
	assert.Contains(t, recorded.Details, "deliveryDate")
}
