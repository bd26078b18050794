package commands

import (
	"context"
	"log/slog"
	"time"

	"medorders/internal/core/ports"
)

// recordAudit writes an audit entry best-effort. A failing sink is logged
// and discarded so auditing can never mask or override the outcome of the
// primary operation.
func recordAudit(ctx context.Context, sink ports.AuditSink, logger *slog.Logger, entry ports.AuditEntry) {
	if sink == nil {
		return
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	if err := sink.Record(ctx, entry); err != nil {
		logger.WarnContext(ctx, "audit record failed",
			"kind", entry.Kind,
			"entity_id", entry.EntityID,
			"actor", entry.Actor,
			"error", err,
		)
	}
}

// auditLogger never returns nil so handlers can log without guarding.
func auditLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
