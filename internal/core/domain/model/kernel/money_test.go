package kernel_test

import (
	"testing"

	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should accept non-negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Equal(t, "100.00", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("19.99")

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		sum := mustMoney(t, "100.50").Add(mustMoney(t, "99.50"))
		assert.Equal(t, "200.00", sum.String())
	})

	t.Run("Sub", func(t *testing.T) {
		diff, err := mustMoney(t, "200.00").Sub(mustMoney(t, "50.00"))
		require.NoError(t, err)
		assert.Equal(t, "150.00", diff.String())
	})

	t.Run("Sub rejects negative results", func(t *testing.T) {
		_, err := mustMoney(t, "10.00").Sub(mustMoney(t, "20.00"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("MulInt", func(t *testing.T) {
		total := mustMoney(t, "100.00").MulInt(2)
		assert.Equal(t, "200.00", total.String())
	})

	t.Run("Mul applies rate with rounding", func(t *testing.T) {
		tax := mustMoney(t, "200.00").Mul(decimal.NewFromFloat(0.10))
		assert.Equal(t, "20.00", tax.String())

		odd := mustMoney(t, "33.33").Mul(decimal.NewFromFloat(0.10))
		assert.Equal(t, "3.33", odd.String())
	})
}

func TestMoney_Comparison(t *testing.T) {
	small := mustMoney(t, "1.00")
	big := mustMoney(t, "2.00")

	assert.True(t, small.LessThan(big))
	assert.True(t, big.GreaterThan(small))
	assert.False(t, small.IsEqual(big))
	assert.True(t, small.IsEqual(mustMoney(t, "1")))
}

func TestMoney_ZeroValue(t *testing.T) {
	t.Run("zero value behaves as zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})
}
