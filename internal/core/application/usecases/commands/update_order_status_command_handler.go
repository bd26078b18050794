package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler drives an order through its state machine.
// On the shipped-to-delivered transition it additionally invokes the
// inventory coordinator's delivered hook, which converts the stock
// reservation into a permanent deduction; the hook runs in the same
// transaction as the status update and fires exactly once, at that
// transition only.
type UpdateOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	audit ports.AuditSink,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     auditLogger(logger),
	}
}

// Handle processes the transition and returns the re-read, updated order.
// An order that vanishes between the update and the re-read is surfaced as
// an IntegrityError: it should be impossible under single-writer semantics
// and must alert operators rather than retry.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	oldStatus := aggregate.Status()
	now := time.Now().UTC()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if cmd.NewStatus() == order.StatusDelivered {
		if err = uow.InventoryCoordinator().OnOrderDelivered(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	updated, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewIntegrityErrorWithCause(
				"order missing on re-read after status update", err,
			)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, h.logger, ports.AuditEntry{
		Kind:     ports.AuditOrderStatusUpdated,
		EntityID: updated.ID().String(),
		Actor:    cmd.Actor(),
		Details: map[string]string{
			"orderCode": updated.Code(),
			"oldStatus": oldStatus.String(),
			"newStatus": updated.Status().String(),
		},
	})

	return updated, nil
}
