package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// cancellationNotePlaceholder is appended to the notes when no cancellation
// reason is supplied.
const cancellationNotePlaceholder = "Not specified"

// Order is the aggregate root of the order lifecycle. It owns its line items
// exclusively and maintains these invariants:
//
//   - items is non-empty
//   - subtotal equals the sum of the item totals
//   - total equals subtotal - discount + tax
//   - status only moves along the transition table in Status
//   - a terminal order is never mutated again, except that payment status
//     may still change on a completed (but not cancelled) order
//
// All mutation goes through the defined methods; the struct uses private
// fields so the invariants cannot be bypassed.
type Order struct {
	id            kernel.UUID
	code          string
	customerID    kernel.UUID
	deliveryDate  *time.Time
	status        Status
	paymentStatus PaymentStatus
	items         []Item
	subtotal      kernel.Money
	discount      kernel.Money
	tax           kernel.Money
	total         kernel.Money
	salesPerson   string
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
	version       int64

	isConstructed bool
}

// GenerateCode derives a human-facing order code from the creation time plus
// a short random suffix, e.g. "ORD-20260826-153012-4F2A". Codes sort in
// creation order; the suffix separates orders created within the same second.
func GenerateCode(now time.Time) string {
	suffix := strings.ToUpper(kernel.NewUUID().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102-150405"), suffix)
}

// NewOrder creates an order in StatusPending with PaymentUnpaid. The subtotal
// is computed from the items, and the total as subtotal - discount + tax.
// The order-level discount must not exceed the subtotal.
func NewOrder(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	items []Item,
	discount kernel.Money,
	tax kernel.Money,
	deliveryDate *time.Time,
	salesPerson string,
	notes string,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateCode(code),
		validateSalesPerson(salesPerson),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	subtotal := sumItemTotals(items)
	taxable, err := subtotal.Sub(discount)
	if err != nil {
		return nil, errs.NewValueIsOutOfRangeError(
			"discount", discount.String(), "0.00", subtotal.String(),
		)
	}
	total := taxable.Add(tax)

	return &Order{
		id:            id,
		code:          code,
		customerID:    customerID,
		deliveryDate:  deliveryDate,
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		items:         append([]Item(nil), items...),
		subtotal:      subtotal,
		discount:      discount,
		tax:           tax,
		total:         total,
		salesPerson:   salesPerson,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation workflow. Status and payment status are validated, and the amount
// invariant is checked: a persisted order whose total does not equal
// subtotal - discount + tax indicates a corrupted row and is surfaced as an
// IntegrityError rather than silently loaded.
func RestoreOrder(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	items []Item,
	status Status,
	paymentStatus PaymentStatus,
	discount kernel.Money,
	tax kernel.Money,
	deliveryDate *time.Time,
	salesPerson string,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateCode(code),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not greater than 0", version),
		)
	}

	subtotal := sumItemTotals(items)
	taxable, err := subtotal.Sub(discount)
	if err != nil {
		return nil, errs.NewIntegrityErrorWithCause(
			fmt.Sprintf("order %s: discount exceeds subtotal", code), err,
		)
	}
	total := taxable.Add(tax)

	return &Order{
		id:            id,
		code:          code,
		customerID:    customerID,
		deliveryDate:  deliveryDate,
		status:        status,
		paymentStatus: paymentStatus,
		items:         append([]Item(nil), items...),
		subtotal:      subtotal,
		discount:      discount,
		tax:           tax,
		total:         total,
		salesPerson:   salesPerson,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ChangeStatus moves the order along the transition table. An attempt to
// re-enter the current state or to skip states fails with an
// InvalidTransitionError carrying the from/to pair.
func (o *Order) ChangeStatus(to Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel aborts an in-flight order. Cancellation is permitted from pending
// through shipped; a delivered, completed, or already-cancelled order fails
// with an InvalidStateError (a repeated cancel is an error, not a no-op).
// The reason is appended to the notes, preserving any prior notes.
func (o *Order) Cancel(reason string, now time.Time) error {
	if o.status == StatusDelivered || o.status.IsTerminal() {
		return errs.NewInvalidStateError("cancel", o.status.String())
	}

	if reason == "" {
		reason = cancellationNotePlaceholder
	}
	note := "Cancellation reason: " + reason
	if o.notes != "" {
		note = o.notes + "\n" + note
	}

	o.status = StatusCancelled
	o.notes = note
	o.updatedAt = now
	return nil
}

// ChangePaymentStatus records an externally-driven payment reconciliation
// signal. The payment status may move in any direction, on any order except
// a cancelled one.
func (o *Order) ChangePaymentStatus(paymentStatus PaymentStatus, now time.Time) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	if o.status == StatusCancelled {
		return errs.NewInvalidStateError("update payment status", o.status.String())
	}

	o.paymentStatus = paymentStatus
	o.updatedAt = now
	return nil
}

// Amendment carries the optional field updates accepted by Amend. Line items
// are deliberately absent: items are immutable once the order exists, so a
// re-price requires cancelling and re-creating the order.
type Amendment struct {
	DeliveryDate *time.Time
	SalesPerson  *string
	Notes        *string
	Discount     *kernel.Money
	Tax          *kernel.Money
}

// Amend applies the given field updates to a non-terminal order and returns
// a field-to-new-value diff for auditing. Amending discount or tax recomputes
// the total so the amount invariant holds at all times.
func (o *Order) Amend(a Amendment, now time.Time) (map[string]string, error) {
	if o.status.IsTerminal() {
		return nil, errs.NewInvalidStateError("update", o.status.String())
	}

	diff := make(map[string]string)

	if a.DeliveryDate != nil {
		d := *a.DeliveryDate
		o.deliveryDate = &d
		diff["deliveryDate"] = d.Format(time.RFC3339)
	}
	if a.SalesPerson != nil {
		if err := validateSalesPerson(*a.SalesPerson); err != nil {
			return nil, err
		}
		o.salesPerson = *a.SalesPerson
		diff["salesPerson"] = *a.SalesPerson
	}
	if a.Notes != nil {
		o.notes = *a.Notes
		diff["notes"] = *a.Notes
	}

	if a.Discount != nil || a.Tax != nil {
		discount := o.discount
		tax := o.tax
		if a.Discount != nil {
			discount = *a.Discount
		}
		if a.Tax != nil {
			tax = *a.Tax
		}

		taxable, err := o.subtotal.Sub(discount)
		if err != nil {
			return nil, errs.NewValueIsOutOfRangeError(
				"discount", discount.String(), "0.00", o.subtotal.String(),
			)
		}

		o.discount = discount
		o.tax = tax
		o.total = taxable.Add(tax)
		if a.Discount != nil {
			diff["discount"] = discount.String()
		}
		if a.Tax != nil {
			diff["tax"] = tax.String()
		}
		diff["totalAmount"] = o.total.String()
	}

	if len(diff) > 0 {
		o.updatedAt = now
	}
	return diff, nil
}

// ID returns the order's internal identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-facing order code.
func (o *Order) Code() string {
	return o.code
}

// CustomerID returns the owning customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryDate returns the requested delivery date, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Subtotal returns the sum of the line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Discount returns the order-level discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns the total amount (subtotal - discount + tax).
func (o *Order) Total() kernel.Money {
	return o.total
}

// SalesPerson returns the responsible salesperson identifier.
func (o *Order) SalesPerson() string {
	return o.salesPerson
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp, which also serves as the order date.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency counter. The repository compares
// it on update and rejects stale writes with a ConcurrentModificationError.
func (o *Order) Version() int64 {
	return o.version
}

func validateCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	return nil
}

func validateSalesPerson(salesPerson string) error {
	if salesPerson == "" {
		return errs.NewValueIsRequiredError("salesPerson")
	}
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return nil
}

func sumItemTotals(items []Item) kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}
