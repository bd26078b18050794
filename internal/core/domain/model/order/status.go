package order

import (
	"fmt"

	"medorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed transition table; orders enter the machine in Pending
// and leave it in one of the two terminal states.
//
// State transitions:
//
//	Pending ───> Confirmed ───> Processing ───> Shipped ───> Delivered ───> Completed
//	   │             │               │             │
//	   └─────────────┴───────────────┴─────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them, including
// re-entering the same state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at order creation.
	StatusPending

	// StatusConfirmed indicates the order has been accepted for fulfilment.
	StatusConfirmed

	// StatusProcessing indicates the order is being picked and packed.
	StatusProcessing

	// StatusShipped indicates the order has left the warehouse.
	// Shipment is the last point at which cancellation is permitted.
	StatusShipped

	// StatusDelivered indicates the customer has received the order.
	// Reaching this state finalizes the inventory reservation.
	StatusDelivered

	// StatusCompleted is the successful terminal state.
	StatusCompleted

	// StatusCancelled is the aborted terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusConfirmed:  "confirmed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// allowedTransitions is the authoritative transition table. A status missing
// from the map, or present with an empty list, permits no outgoing transition.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusConfirmed, StatusCancelled},
		StatusConfirmed:  {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered},
		StatusDelivered:  {StatusCompleted},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// StatusFromString parses a status name as it appears in persistence and
// request payloads. Returns an error for unrecognized names and for "unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := allowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status. It is safe to call on any
// Status value; invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to the given one. Self-transitions and state skips are
// not permitted.
func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status, or an InvalidTransitionError carrying
// the attempted from/to pair if the transition table forbids the move.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}
