package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/services"
	"medorders/internal/core/ports"
	"medorders/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// validating the referenced customer and products, snapshotting product data
// into line items, computing totals, persisting the order, and reserving
// stock through the inventory coordinator — all in one transaction.
//
// The handler's own availability check against the stock record is an
// advisory fast-path that produces a precise error message before any work
// is done; the authoritative overselling guard is the coordinator's atomic
// conditional reservation inside the transaction.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricing    services.PricingPolicy
	audit      ports.AuditSink
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// A nil pricing policy falls back to the default flat 10% policy.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	pricing services.PricingPolicy,
	audit ports.AuditSink,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	if pricing == nil {
		pricing = services.NewDefaultPricingPolicy()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		audit:      audit,
		logger:     auditLogger(logger),
	}
}

// Handle processes the order creation command and returns the persisted
// order. The new order starts in pending status with unpaid payment status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	items, err := h.buildItems(ctx, uow, cmd.Lines())
	if err != nil {
		return nil, err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	tax, err := h.resolveTax(cmd, subtotal)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateCode(now),
		cmd.CustomerID(),
		items,
		cmd.Discount(),
		tax,
		cmd.DeliveryDate(),
		cmd.SalesPerson(),
		cmd.Notes(),
		now,
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	// Authoritative reservation: loses the race, fails the transaction.
	if err = uow.InventoryCoordinator().OnOrderCreated(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, h.logger, ports.AuditEntry{
		Kind:     ports.AuditOrderCreated,
		EntityID: aggregate.ID().String(),
		Actor:    cmd.Actor(),
		Details: map[string]string{
			"orderCode":   aggregate.Code(),
			"customerId":  aggregate.CustomerID().String(),
			"totalAmount": aggregate.Total().String(),
			"itemCount":   strconv.Itoa(aggregate.ItemCount()),
		},
	})

	return aggregate, nil
}

// buildItems resolves each requested line against the catalog, rejecting
// missing products, inactive products, and lines whose quantity exceeds the
// currently available stock.
func (h CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	uow CheckoutUoW,
	lines []OrderLine,
) ([]order.Item, error) {
	productRepo := uow.ProductRepository()

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsActive() {
			return nil, errs.NewProductInactiveError(p.ID().String(), p.SKU())
		}

		stock, err := productRepo.GetStock(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if stock.Available < line.Quantity {
			return nil, errs.NewInsufficientInventoryError(
				p.ID().String(), line.Quantity, stock.Available,
			)
		}

		item, err := order.NewItem(
			p.ID(), p.Name(), p.SKU(), line.Quantity, p.UnitPrice(), line.Discount,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (h CreateOrderCommandHandler) resolveTax(cmd CreateOrderCommand, subtotal kernel.Money) (kernel.Money, error) {
	if explicit := cmd.Tax(); explicit != nil {
		return *explicit, nil
	}
	return h.pricing.ComputeTax(subtotal, cmd.Discount())
}
