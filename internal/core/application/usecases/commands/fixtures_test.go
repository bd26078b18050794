package commands_test

import (
	"testing"
	"time"

	"medorders/internal/core/domain/model/customer"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func fixtureProduct(t *testing.T, sku, name, unitPrice string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), sku, name, money(t, unitPrice))
	require.NoError(t, err)
	return p
}

func fixtureCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "City Hospital")
	require.NoError(t, err)
	return c
}

func fixtureItem(t *testing.T, unitPrice string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), "Saline Solution 0.9%", "MED-SAL-09",
		quantity, money(t, unitPrice), kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return item
}

// fixtureOrder restores an order in the given status with one 2x100.00 line,
// no discount and 20.00 tax: subtotal 200.00, total 220.00.
func fixtureOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		"ORD-20250310-120000-AB12",
		kernel.NewUUID(),
		[]order.Item{fixtureItem(t, "100.00", 2)},
		status,
		order.PaymentUnpaid,
		kernel.ZeroMoney(),
		money(t, "20.00"),
		nil,
		"Maria Ivanova",
		"",
		now,
		now,
		1,
	)
	require.NoError(t, err)
	return aggregate
}
