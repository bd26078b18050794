package services

import (
	"fmt"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingPolicy computes the default tax for orders whose caller did not
// supply an explicit tax amount. It is injected into the order creation
// handler so jurisdictions and tenants can vary the policy without touching
// the lifecycle logic.
type PricingPolicy interface {
	// ComputeTax returns the tax for the given subtotal and order-level
	// discount. Implementations must be pure: same inputs, same output.
	ComputeTax(subtotal, discount kernel.Money) (kernel.Money, error)
}

// FlatRatePricingPolicy taxes the post-discount subtotal at a fixed rate.
type FlatRatePricingPolicy struct {
	rate decimal.Decimal
}

// NewFlatRatePricingPolicy creates a flat-rate policy. The rate is a
// fraction, e.g. 0.10 for 10%; negative rates are rejected.
func NewFlatRatePricingPolicy(rate decimal.Decimal) (FlatRatePricingPolicy, error) {
	if rate.IsNegative() {
		return FlatRatePricingPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"taxRate",
			fmt.Errorf("%s is negative", rate.String()),
		)
	}
	return FlatRatePricingPolicy{rate: rate}, nil
}

// NewDefaultPricingPolicy returns the standard policy: flat 10% on the
// post-discount subtotal.
func NewDefaultPricingPolicy() FlatRatePricingPolicy {
	return FlatRatePricingPolicy{rate: decimal.NewFromFloat(0.10)}
}

// ComputeTax returns (subtotal - discount) * rate, rounded to two places.
func (p FlatRatePricingPolicy) ComputeTax(subtotal, discount kernel.Money) (kernel.Money, error) {
	taxable, err := subtotal.Sub(discount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError(
			"discount", discount.String(), "0.00", subtotal.String(),
		)
	}
	return taxable.Mul(p.rate), nil
}
