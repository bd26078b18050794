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

func newOrderMocks() (*MockOrderUoW, *MockOrderUoWFactory, *MockOrderRepository) {
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory, new(MockOrderRepository)
}

func TestUpdatePaymentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusConfirmed)
	cmd, err := commands.NewUpdatePaymentStatusCommand("dave", aggregate.ID(), order.PaymentPaid)
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

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, audit, nil)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, updated.PaymentStatus())

	recorded := audit.Calls[0].Arguments.Get(1).(ports.AuditEntry)
	assert.Equal(t, ports.AuditOrderPaymentStatusUpdated, recorded.Kind)
	assert.Equal(t, "unpaid", recorded.Details["oldPaymentStatus"])
	assert.Equal(t, "paid", recorded.Details["newPaymentStatus"])

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestUpdatePaymentStatusCommandHandler_Handle_IndependentOfLifecycle(t *testing.T) {
	ctx := t.Context()
	// Payment can still arrive after delivery.
	aggregate := fixtureOrder(t, order.StatusDelivered)
	cmd, err := commands.NewUpdatePaymentStatusCommand("dave", aggregate.ID(), order.PaymentPartiallyPaid)
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", ctx, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, nil, nil)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPartiallyPaid, updated.PaymentStatus())
}

func TestUpdatePaymentStatusCommandHandler_Handle_CancelledOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := fixtureOrder(t, order.StatusPending)
	require.NoError(t, aggregate.Cancel("abandoned", time.Now().UTC()))

	cmd, err := commands.NewUpdatePaymentStatusCommand("dave", aggregate.ID(), order.PaymentPaid)
	require.NoError(t, err)

	uow, factory, orderRepo := newOrderMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdatePaymentStatusCommandHandler(factory, nil, nil)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
