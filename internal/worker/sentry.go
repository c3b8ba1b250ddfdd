package worker

import (
	"context"
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
)

// SentryMiddleware reports failed tasks to Sentry with the task metadata as tags.
// Tasks that will not be retried are reported at fatal level.
func SentryMiddleware(h asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		taskID, _ := asynq.GetTaskID(ctx)
		queueName, _ := asynq.GetQueueName(ctx)
		retryCount, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetTag("task_type", t.Type())
		hub.Scope().SetTag("task_id", taskID)
		hub.Scope().SetTag("queue", queueName)
		hub.Scope().SetTag("retry_count", strconv.Itoa(retryCount))

		ctx = sentry.SetHubOnContext(ctx, hub)

		err := h.ProcessTask(ctx, t)
		if err != nil {
			if errors.Is(err, asynq.SkipRetry) || retryCount >= maxRetry {
				hub.Scope().SetLevel(sentry.LevelFatal)
			}
			hub.CaptureException(err)
		}

		return err
	})
}
