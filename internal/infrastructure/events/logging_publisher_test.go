package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/chartbuilder/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

func newJSONLogger(t *testing.T, buf *bytes.Buffer, level string) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     level,
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf, "info"))

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.Event{
		Type:   ports.EventChartCommitted,
		Fields: map[string]interface{}{"chart_type": "pie"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "builder event", entry["message"])
	require.Equal(t, ports.EventChartCommitted, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "pie", entry["chart_type"])
}

func TestLoggingPublisherLogsRebuildsAtDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf, "info"))

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventChartRebuilt}))
	require.Zero(t, buf.Len())
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf, "warn"))

	var calls []string
	_, err := publisher.Subscribe(ports.EventDataReplaced, func(ctx context.Context, event ports.DomainEvent) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventDataReplaced, func(ctx context.Context, event ports.DomainEvent) error {
		calls = append(calls, "second")
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventDataReplaced}))
	require.Equal(t, []string{"first", "second"}, calls)
	require.Contains(t, buf.String(), "event handler failed")
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	count := 0
	sub, err := publisher.Subscribe(ports.EventPanelChanged, func(context.Context, ports.DomainEvent) error {
		count++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventPanelChanged}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventPanelChanged}))
	require.Equal(t, 1, count)
}
