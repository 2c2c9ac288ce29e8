package consumer

import (
	"context"
	"encoding/json"

	"github.com/sayan-adhikary-2025/zerohr/internal/dashboard"
	"github.com/sayan-adhikary-2025/zerohr/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions invalidates the decided user's cached dashboard
// summary so the next page load reflects the new balance immediately.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
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

		if event.Username != "" {
			cacheKey := dashboard.SummaryCacheKey(event.Username)
			if err := rdb.Del(ctx, cacheKey).Err(); err != nil {
				log.Error("invalidate dashboard cache failed",
					zap.String("username", event.Username),
					zap.String("key", cacheKey),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard cache invalidated from leave_decided event",
			zap.String("leave_id", event.LeaveID),
			zap.String("username", event.Username),
			zap.String("status", event.Status),
		)
	}
}
