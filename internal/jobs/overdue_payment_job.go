package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/domain/model/kernel"
	"medorders/internal/core/domain/model/order"
	"medorders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// overdueActor identifies the scheduler in audit records of payment status
// changes it makes.
const overdueActor = "scheduler:overdue-payments"

// OverduePaymentJob marks orders as payment-overdue. Runs hourly over orders
// whose delivery date has passed while payment is still unpaid or partial.
type OverduePaymentJob struct {
	db      *gorm.DB
	handler commands.UpdatePaymentStatusCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverduePaymentJob creates a job that flags overdue payments.
func NewOverduePaymentJob(
	db *gorm.DB,
	handler commands.UpdatePaymentStatusCommandHandler,
	logger *slog.Logger,
) *OverduePaymentJob {
	return &OverduePaymentJob{
		db:      db,
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_payment_job"),
	}
}

// Start begins the hourly overdue sweep.
func (j *OverduePaymentJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "overdue payment sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "overdue payment job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *OverduePaymentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "overdue payment job stopped")
}

// sweep flags every overdue order through the regular payment status command,
// so the change is versioned and audited like any user-initiated update.
func (j *OverduePaymentJob) sweep(ctx context.Context) error {
	var ids []uuid.UUID
	err := j.db.WithContext(ctx).Table("orders").
		Select("id").
		Where("payment_status IN ?", []int{int(order.PaymentUnpaid), int(order.PaymentPartiallyPaid)}).
		Where("delivery_date IS NOT NULL AND delivery_date < ?", time.Now().UTC()).
		Where("status NOT IN ?", []int{int(order.StatusCancelled)}).
		Scan(&ids).Error
	if err != nil {
		return err
	}

	for _, rawID := range ids {
		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return idErr
		}

		cmd, cmdErr := commands.NewUpdatePaymentStatusCommand(overdueActor, id, order.PaymentOverdue)
		if cmdErr != nil {
			return cmdErr
		}

		if _, handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A concurrent writer or a just-cancelled order is fine; the next
			// sweep picks the order up again if still overdue.
			if errors.Is(handleErr, errs.ErrConcurrentModification) ||
				errors.Is(handleErr, errs.ErrInvalidState) {
				continue
			}
			j.logger.WarnContext(ctx, "failed to flag overdue payment",
				"order_id", id.String(), "error", handleErr)
		}
	}

	return nil
}
