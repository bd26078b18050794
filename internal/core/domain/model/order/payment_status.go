package order

import (
	"fmt"

	"medorders/internal/pkg/errs"
)

// PaymentStatus tracks how much of an order has been paid. Unlike Status it
// is not a state machine: payment reconciliation is driven externally and may
// move the value in any direction (a paid order can become overdue after a
// chargeback, an overdue one can become paid).
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial payment status at order creation.
	PaymentUnpaid

	// PaymentPartiallyPaid indicates a partial payment has been received.
	PaymentPartiallyPaid

	// PaymentPaid indicates the order is fully paid.
	PaymentPaid

	// PaymentOverdue indicates payment is outstanding past its due date.
	PaymentOverdue
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:       "unknown",
		PaymentUnpaid:        "unpaid",
		PaymentPartiallyPaid: "partially_paid",
		PaymentPaid:          "paid",
		PaymentOverdue:       "overdue",
	}
}

// PaymentStatusFromString parses a payment status name as it appears in
// persistence and request payloads.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the PaymentStatus is one of the defined values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok || s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
