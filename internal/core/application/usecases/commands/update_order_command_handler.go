package commands

import (
	"context"
	"log/slog"
	"time"

	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/ports"
)

// UpdateOrderCommandHandler amends an order's header fields. The audit
// entry carries only the fields the amendment actually changed; an
// amendment that changes nothing is still accepted but produces no audit.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order amendments.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	audit ports.AuditSink,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     auditLogger(logger),
	}
}

// Handle applies the amendment and returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	changed, err := aggregate.Amend(cmd.Amendment(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		details := map[string]string{"orderCode": aggregate.Code()}
		for field, value := range changed {
			details[field] = value
		}

		recordAudit(ctx, h.audit, h.logger, ports.AuditEntry{
			Kind:     ports.AuditOrderUpdated,
			EntityID: aggregate.ID().String(),
			Actor:    cmd.Actor(),
			Details:  details,
		})
	}

	return aggregate, nil
}
