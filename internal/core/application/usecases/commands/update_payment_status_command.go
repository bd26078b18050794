package commands

import (
	"errors"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var (
	ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
		"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand",
	)
)

// UpdatePaymentStatusCommand sets an order's payment status. Payment status
// moves freely between its values and is independent of the fulfillment
// state machine, except that cancelled orders reject payment updates.
type UpdatePaymentStatusCommand struct {
	guard guard.ConstructorGuard

	actor         string
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus
}

// NewUpdatePaymentStatusCommand creates a validated UpdatePaymentStatusCommand.
func NewUpdatePaymentStatusCommand(
	actor string,
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{guard: guard.NewConstructorGuard()}

	err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setPaymentStatus(paymentStatus),
	)
	if err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

func (c *UpdatePaymentStatusCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor

	return nil
}

func (c *UpdatePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID

	return nil
}

func (c *UpdatePaymentStatusCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", err)
	}

	c.paymentStatus = paymentStatus

	return nil
}

func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

func (c UpdatePaymentStatusCommand) Actor() string {
	return c.actor
}

func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}
