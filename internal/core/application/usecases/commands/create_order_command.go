package commands

import (
	"errors"
	"fmt"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
	"medorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one requested line in a create-order request: which product,
// how many, and an optional per-line discount.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
	Discount  kernel.Money
}

// CreateOrderCommand represents a request to create a new order.
// Product names, SKUs, and prices are resolved by the handler from the
// catalog; the command carries only references and quantities.
//
// Tax is optional: when absent, the handler applies the configured pricing
// policy to default it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "worker:jane", customerID,
//	    []OrderLine{{ProductID: productID, Quantity: 2}},
//	    nil, "sales-rep-1", "", kernel.ZeroMoney(), nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        string
	customerID   kernel.UUID
	lines        []OrderLine
	deliveryDate *time.Time
	salesPerson  string
	notes        string
	discount     kernel.Money
	tax          *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the actor, customer reference, lines, and sales person; a nil
// tax requests the default pricing policy.
func NewCreateOrderCommand(
	actor string,
	customerID kernel.UUID,
	lines []OrderLine,
	deliveryDate *time.Time,
	salesPerson string,
	notes string,
	discount kernel.Money,
	tax *kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setSalesPerson(salesPerson),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.deliveryDate = deliveryDate
	cmd.notes = notes
	cmd.discount = discount
	cmd.tax = tax
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the identity on whose behalf the order is created.
func (c CreateOrderCommand) Actor() string {
	return c.actor
}

// CustomerID returns the owning customer reference.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// DeliveryDate returns the requested delivery date, or nil.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// SalesPerson returns the responsible salesperson identifier.
func (c CreateOrderCommand) SalesPerson() string {
	return c.salesPerson
}

// Notes returns the free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Discount returns the order-level discount (zero when not supplied).
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// Tax returns the explicit tax amount, or nil to request the pricing policy
// default.
func (c CreateOrderCommand) Tax() *kernel.Money {
	return c.tax
}

func (c *CreateOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("line %d: %d is not greater than 0", i, line.Quantity),
			)
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setSalesPerson(salesPerson string) error {
	if salesPerson == "" {
		return errs.NewValueIsRequiredError("salesPerson")
	}
	c.salesPerson = salesPerson
	return nil
}
