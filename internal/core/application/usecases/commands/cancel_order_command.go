package commands

import (
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand",
	)
)

// CancelOrderCommand requests cancellation of an order. The reason is
// optional; a blank reason is recorded with a placeholder.
type CancelOrderCommand struct {
	guard guard.ConstructorGuard

	actor   string
	orderID kernel.UUID
	reason  string
}

// NewCancelOrderCommand creates a validated CancelOrderCommand.
func NewCancelOrderCommand(actor string, orderID kernel.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.reason = reason

	return cmd, nil
}

func (c *CancelOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor

	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID

	return nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() string {
	return c.actor
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
