// Package services contains stateless domain services that do not belong to
// a single aggregate. Currently this is the pricing policy used to default
// the tax amount during order creation.
package services
