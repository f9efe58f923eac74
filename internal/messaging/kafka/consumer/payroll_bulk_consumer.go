package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"onebiz-payroll/internal/events"
	"onebiz-payroll/internal/payroll"
	"onebiz-payroll/internal/shared/apperror"
	"onebiz-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// BulkPayrollRunner runs and persists a company-month payroll.
type BulkPayrollRunner interface {
	CalculateAndSaveBulk(ctx context.Context, companyID, actorID, month string, branchID *string) ([]payroll.BulkItem, error)
}

// ConsumePayrollBulkRequested runs every bulk request read from the reader
// until ctx is cancelled. Undecodable messages and requests the service
// rejects as invalid are committed and skipped; other failures are left
// uncommitted so the group redelivers them after a rebalance.
func ConsumePayrollBulkRequested(
	ctx context.Context,
	reader MessageReader,
	runner BulkPayrollRunner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_bulk")
	log.Info("payroll bulk consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll bulk consumer stopped")
				return
			}
			log.Error("fetch payroll bulk message failed", zap.Error(err))
			continue
		}

		handlePayrollBulkMessage(ctx, reader, runner, log, msg)
	}
}

func handlePayrollBulkMessage(
	ctx context.Context,
	reader MessageReader,
	runner BulkPayrollRunner,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.PayrollBulkRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.CompanyID == "" {
		log.Error("decode payroll bulk event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		commit(ctx, reader, log, msg)
		return
	}

	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			ctx = contextutil.WithRequestID(ctx, string(h.Value))
		}
	}
	eventLog := log.With(
		zap.String("request_id", event.RequestID),
		zap.String("company_id", event.CompanyID),
		zap.String("month", event.Month),
	)
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)
	ctx = contextutil.WithUserID(ctx, event.RequestedBy)
	ctx = contextutil.WithLogger(ctx, eventLog)

	items, err := runner.CalculateAndSaveBulk(ctx, event.CompanyID, event.RequestedBy, event.Month, event.BranchID)
	if err != nil {
		if isRejected(err) {
			eventLog.Warn("payroll bulk request rejected, skipping", zap.Error(err))
			commit(ctx, reader, eventLog, msg)
			return
		}
		eventLog.Error("payroll bulk run failed", zap.Error(err))
		return
	}

	failed := 0
	for _, it := range items {
		if !it.OK {
			failed++
		}
	}

	commit(ctx, reader, eventLog, msg)
	eventLog.Info("payroll bulk run completed",
		zap.Int("employees", len(items)),
		zap.Int("failed", failed),
	)
}

// isRejected reports client errors that will fail the same way on retry.
func isRejected(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus >= 400 && appErr.HTTPStatus < 500
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit payroll bulk message failed", zap.Error(err))
	}
}
