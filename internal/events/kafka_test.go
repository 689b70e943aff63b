package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w}

	ev := New(TypeOrderStatusChanged, "9", map[string]any{"order_id": 9, "order_status": "MEAL"})
	require.NoError(t, p.Publish(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "9", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, TypeOrderStatusChanged, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, ev.ID, body["id"])
	assert.Equal(t, TypeOrderStatusChanged, body["type"])
	assert.NotContains(t, body, "Key")
	payload := body["payload"].(map[string]any)
	assert.Equal(t, "MEAL", payload["order_status"])
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	down := errors.New("broker down")
	p := &KafkaPublisher{writer: &fakeWriter{err: down}}

	err := p.Publish(context.Background(), New(TypeOrderCreated, "1", nil))
	assert.ErrorIs(t, err, down)
}

func TestNew_AssignsIdentity(t *testing.T) {
	a := New(TypeTableGroupCreated, "3", nil)
	b := New(TypeTableGroupCreated, "3", nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.OccurredAt.IsZero())
}
