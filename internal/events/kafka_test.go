package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
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
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	event := entities.OrderEvent{
		Type:       entities.EventStatusChanged,
		OrderID:    "order-1",
		OrderType:  entities.OrderTypePurchase,
		CustomerID: "buyer-1",
		SellerID:   "seller-1",
		StoreID:    "store-1",
		Status:     entities.StatusConfirmed,
		ActorID:    "seller-1",
		At:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "order-1", string(msg.Key))
	assert.Equal(t, "type", msg.Headers[0].Key)
	assert.Equal(t, string(entities.EventStatusChanged), string(msg.Headers[0].Value))

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "Confirmado", got["status"])
	assert.Equal(t, "order.status_changed", got["type"])
	assert.NotContains(t, got, "message_id")
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeWriter{err: errors.New("broker down")})
	assert.Error(t, p.Publish(context.Background(), entities.OrderEvent{OrderID: "order-1"}))
}
