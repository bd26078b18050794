package commands

import (
	"context"
	"log/slog"
	"time"

	"medorders/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and releases its inventory
// reservation. Cancellation is deliberately not idempotent: a second cancel
// of the same order fails with an invalid-transition error, so callers can
// tell a no-op apart from a real cancellation.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	audit ports.AuditSink,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     auditLogger(logger),
	}
}

// Handle cancels the order, persists it and releases the reserved stock in
// the same transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.InventoryCoordinator().OnOrderCancelled(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordAudit(ctx, h.audit, h.logger, ports.AuditEntry{
		Kind:     ports.AuditOrderCancelled,
		EntityID: aggregate.ID().String(),
		Actor:    cmd.Actor(),
		Details: map[string]string{
			"orderCode": aggregate.Code(),
			"reason":    cmd.Reason(),
		},
	})

	return nil
}
