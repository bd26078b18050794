package commands

import (
	"context"
	"log/slog"
	"time"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/ports"
)

// UpdatePaymentStatusCommandHandler records payment state changes on an order.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment status updates.
func NewUpdatePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditSink,
	logger *slog.Logger,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     auditLogger(logger),
	}
}

// Handle applies the payment status and returns the updated order.
func (h UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePaymentStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	oldPaymentStatus := aggregate.PaymentStatus()
	if err = aggregate.ChangePaymentStatus(cmd.PaymentStatus(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, h.logger, ports.AuditEntry{
		Kind:     ports.AuditOrderPaymentStatusUpdated,
		EntityID: aggregate.ID().String(),
		Actor:    cmd.Actor(),
		Details: map[string]string{
			"orderCode":        aggregate.Code(),
			"oldPaymentStatus": oldPaymentStatus.String(),
			"newPaymentStatus": aggregate.PaymentStatus().String(),
		},
	})

	return aggregate, nil
}
