package jobs

import (
	"context"
	"log/slog"

	"github.com/lcnogueira/plataforma-sabia/internal/notifications"

	"github.com/robfig/cron/v3"
)

// redeliverySchedule retries buffered notifications every 30 seconds. Mail
// delivery is not latency sensitive, so a short backoff window is enough.
const redeliverySchedule = "*/30 * * * * *"

// NotificationRedeliveryJob periodically drains the dispatcher's failure
// buffer and re-enqueues the messages.
type NotificationRedeliveryJob struct {
	dispatcher *notifications.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRedeliveryJob creates a new redelivery job bound to the
// given dispatcher.
func NewNotificationRedeliveryJob(dispatcher *notifications.Dispatcher, logger *slog.Logger) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery job.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc(redeliverySchedule, func() {
		ctx := context.Background()

		pending := j.dispatcher.FailedCount()
		if pending == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Retrying failed notifications", "pending", pending)
		j.dispatcher.RetryFailed(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started")
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
