package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ninoyerbas/JHRIS/internal/bootstrap"
	"github.com/ninoyerbas/JHRIS/internal/events"
)

// ConsumeLeaveDecisions reads leave decision events and writes them to the
// audit log. Balance accounting already happened in the API process; this
// consumer only provides the durable decision trail.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decisions")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "LEAVE_DECISION",
			Message: "Leave request " + event.Status,
			Meta: map[string]any{
				"request_id":    event.RequestID,
				"employee_id":   event.EmployeeID,
				"leave_type_id": event.LeaveTypeID,
				"days":          event.Days,
				"decided_by":    event.DecidedBy,
				"occurred_at":   event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision audited",
			zap.String("request_id", event.RequestID),
			zap.String("status", event.Status),
		)
	}
}
