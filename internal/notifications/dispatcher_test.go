package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	mu       sync.Mutex
	enqueued []notifications.Message
	failFor  map[string]int
}

func (q *fakeQueue) Enqueue(_ context.Context, msg notifications.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if remaining, ok := q.failFor[msg.To]; ok && remaining > 0 {
		q.failFor[msg.To] = remaining - 1
		return errors.New("broker unavailable")
	}
	q.enqueued = append(q.enqueued, msg)
	return nil
}

func (q *fakeQueue) recipients() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.enqueued))
	for _, m := range q.enqueued {
		out = append(out, m.To)
	}
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_Dispatch_EnqueuesAllMessages(t *testing.T) {
	queue := &fakeQueue{}
	dispatcher := notifications.NewDispatcher(queue, testLogger())

	dispatcher.Dispatch(t.Context(), []notifications.Message{
		{To: "owner@example.com", Template: notifications.TemplateTechnologyOrderReceived},
		{To: "buyer@example.com", Template: notifications.TemplateTechnologyOrderClosed},
	})

	require.Len(t, queue.enqueued, 2)
	assert.ElementsMatch(t, []string{"owner@example.com", "buyer@example.com"}, queue.recipients())
	assert.Zero(t, dispatcher.FailedCount())
}

func TestDispatcher_Dispatch_BuffersFailures(t *testing.T) {
	queue := &fakeQueue{failFor: map[string]int{"owner@example.com": 1}}
	dispatcher := notifications.NewDispatcher(queue, testLogger())

	dispatcher.Dispatch(t.Context(), []notifications.Message{
		{To: "owner@example.com", Template: notifications.TemplateServiceRequested},
		{To: "buyer@example.com", Template: notifications.TemplateServiceRequested},
	})

	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, 1, dispatcher.FailedCount())
}

func TestDispatcher_RetryFailed_RedeliversBufferedMessages(t *testing.T) {
	queue := &fakeQueue{failFor: map[string]int{"owner@example.com": 1}}
	dispatcher := notifications.NewDispatcher(queue, testLogger())

	dispatcher.Dispatch(t.Context(), []notifications.Message{
		{To: "owner@example.com", Template: notifications.TemplateServiceRequested},
	})
	require.Equal(t, 1, dispatcher.FailedCount())

	dispatcher.RetryFailed(t.Context())

	assert.Zero(t, dispatcher.FailedCount())
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, "owner@example.com", queue.enqueued[0].To)
}

func TestDispatcher_RetryFailed_DropsAfterMaxAttempts(t *testing.T) {
	queue := &fakeQueue{failFor: map[string]int{"owner@example.com": 10}}
	dispatcher := notifications.NewDispatcher(queue, testLogger())

	dispatcher.Dispatch(t.Context(), []notifications.Message{
		{To: "owner@example.com", Template: notifications.TemplateTechnologyOrderCancelled},
	})
	require.Equal(t, 1, dispatcher.FailedCount())

	dispatcher.RetryFailed(t.Context())
	require.Equal(t, 1, dispatcher.FailedCount())

	dispatcher.RetryFailed(t.Context())
	assert.Zero(t, dispatcher.FailedCount())
	assert.Empty(t, queue.enqueued)
}

func TestFormatBRL(t *testing.T) {
	formatted := notifications.FormatBRL(1250)
	assert.True(t, strings.Contains(formatted, "R$"), "expected BRL symbol in %q", formatted)
}
