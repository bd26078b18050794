package ports

import (
	"context"
	"time"
)

// Audit record kinds emitted by the order lifecycle.
const (
	AuditOrderCreated              = "order_created"
	AuditOrderStatusUpdated        = "order_status_updated"
	AuditOrderCancelled            = "order_cancelled"
	AuditOrderPaymentStatusUpdated = "order_payment_status_updated"
	AuditOrderUpdated              = "order_updated"
)

// AuditEntry is one audit record. Actor identifies the caller on whose
// behalf the operation ran; it is threaded through every command rather than
// hardcoded to a system identity.
type AuditEntry struct {
	Kind       string
	EntityID   string
	Actor      string
	Details    map[string]string
	OccurredAt time.Time
}

// AuditSink records audit entries. It is fire-and-forget from the caller's
// perspective: command handlers swallow and log Record failures so auditing
// is never on the critical path of the primary operation. Implementations
// must therefore run outside the operation's unit of work.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry) error
}
