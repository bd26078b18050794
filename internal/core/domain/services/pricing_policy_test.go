package services_test

import (
	"testing"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/services"
	"medorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestDefaultPricingPolicy(t *testing.T) {
	policy := services.NewDefaultPricingPolicy()

	t.Run("taxes 10 percent of the post-discount subtotal", func(t *testing.T) {
		tax, err := policy.ComputeTax(money(t, "200.00"), kernel.ZeroMoney())

		require.NoError(t, err)
		assert.Equal(t, "20.00", tax.String())
	})

	t.Run("discount reduces the taxable base", func(t *testing.T) {
		tax, err := policy.ComputeTax(money(t, "200.00"), money(t, "50.00"))

		require.NoError(t, err)
		assert.Equal(t, "15.00", tax.String())
	})

	t.Run("zero subtotal yields zero tax", func(t *testing.T) {
		tax, err := policy.ComputeTax(kernel.ZeroMoney(), kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, tax.IsZero())
	})

	t.Run("rejects discount exceeding subtotal", func(t *testing.T) {
		_, err := policy.ComputeTax(money(t, "10.00"), money(t, "20.00"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewFlatRatePricingPolicy(t *testing.T) {
	t.Run("custom rate", func(t *testing.T) {
		policy, err := services.NewFlatRatePricingPolicy(decimal.NewFromFloat(0.25))
		require.NoError(t, err)

		tax, err := policy.ComputeTax(money(t, "100.00"), kernel.ZeroMoney())
		require.NoError(t, err)
		assert.Equal(t, "25.00", tax.String())
	})

	t.Run("zero rate is allowed", func(t *testing.T) {
		policy, err := services.NewFlatRatePricingPolicy(decimal.Zero)
		require.NoError(t, err)

		tax, err := policy.ComputeTax(money(t, "100.00"), kernel.ZeroMoney())
		require.NoError(t, err)
		assert.True(t, tax.IsZero())
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		_, err := services.NewFlatRatePricingPolicy(decimal.NewFromFloat(-0.1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
