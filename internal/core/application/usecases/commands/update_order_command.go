package commands

import (
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand",
	)
)

// UpdateOrderCommand amends the mutable header fields of an order. Item
// lines are deliberately absent from the amendment: changing quantities
// after the stock reservation was taken would desynchronize inventory, so
// callers cancel and re-create instead.
type UpdateOrderCommand struct {
	guard guard.ConstructorGuard

	actor     string
	orderID   kernel.UUID
	amendment order.Amendment
}

// NewUpdateOrderCommand creates a validated UpdateOrderCommand.
func NewUpdateOrderCommand(
	actor string,
	orderID kernel.UUID,
	amendment order.Amendment,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.amendment = amendment

	return cmd, nil
}

func (c *UpdateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor

	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID

	return nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() string {
	return c.actor
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Amendment() order.Amendment {
	return c.amendment
}
