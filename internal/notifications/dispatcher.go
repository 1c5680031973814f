package notifications

import (
	"context"
	"log/slog"
	"sync"
)

// maxEnqueueAttempts limits how many times a failed message is retried
// before it is dropped.
const maxEnqueueAttempts = 3

type failedMessage struct {
	msg      Message
	attempts int
}

// Dispatcher fans notification messages out to the queue. Handlers return
// messages as plain data; the HTTP layer hands them to the dispatcher only
// after the surrounding transaction has committed, so a failed enqueue never
// rolls back business state. Failed messages are kept in memory and retried
// by a background job.
type Dispatcher struct {
	queue  Queue
	logger *slog.Logger

	mu     sync.Mutex
	failed []failedMessage
}

// NewDispatcher creates a dispatcher that pushes messages onto queue.
func NewDispatcher(queue Queue, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  queue,
		logger: logger.With(slog.String("component", "notifications")),
	}
}

// Dispatch enqueues all messages concurrently and waits for completion.
// Enqueue failures are logged and buffered for redelivery; they are never
// returned to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, msgs []Message) {
	var wg sync.WaitGroup
	for _, msg := range msgs {
		wg.Add(1)
		go func(msg Message) {
			defer wg.Done()
			if err := d.queue.Enqueue(ctx, msg); err != nil {
				d.logger.Error("failed to enqueue notification",
					slog.String("template", msg.Template),
					slog.String("to", msg.To),
					slog.Any("error", err))
				d.buffer(msg, 1)
			}
		}(msg)
	}
	wg.Wait()
}

// RetryFailed re-enqueues buffered messages. Messages that keep failing are
// buffered again until they exhaust maxEnqueueAttempts, then dropped.
func (d *Dispatcher) RetryFailed(ctx context.Context) {
	d.mu.Lock()
	pending := d.failed
	d.failed = nil
	d.mu.Unlock()

	for _, fm := range pending {
		if err := d.queue.Enqueue(ctx, fm.msg); err == nil {
			continue
		} else if fm.attempts+1 >= maxEnqueueAttempts {
			d.logger.Error("dropping notification after repeated enqueue failures",
				slog.String("template", fm.msg.Template),
				slog.String("to", fm.msg.To),
				slog.Int("attempts", fm.attempts+1),
				slog.Any("error", err))
		} else {
			d.buffer(fm.msg, fm.attempts+1)
		}
	}
}

// FailedCount reports how many messages are waiting for redelivery.
func (d *Dispatcher) FailedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.failed)
}

func (d *Dispatcher) buffer(msg Message, attempts int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failed = append(d.failed, failedMessage{msg: msg, attempts: attempts})
}
