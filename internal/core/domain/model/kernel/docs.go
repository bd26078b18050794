// Package kernel contains shared value objects used across the domain model:
// UUID for entity identity and Money for monetary amounts. Both are immutable
// and enforce their invariants at construction time.
package kernel
