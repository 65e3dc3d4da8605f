package live

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	ch        chan *pq.Notification
	listenErr error
	listened  string
	closed    bool
}

func (f *fakeSource) Listen(channel string) error {
	f.listened = channel
	return f.listenErr
}

func (f *fakeSource) NotificationChannel() <-chan *pq.Notification { return f.ch }
func (f *fakeSource) Ping() error                                  { return nil }

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func signaled(s *pubsub.Subscription) bool {
	select {
	case <-s.C():
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestListener_ForwardsChanges(t *testing.T) {
	hub := pubsub.NewHub()
	defer hub.Close()

	src := &fakeSource{ch: make(chan *pq.Notification, 4)}
	l := newListener(slog.New(slog.NewTextHandler(io.Discard, nil)), src, "order_events", hub)
	require.NoError(t, l.Start(context.Background()))
	assert.Equal(t, "order_events", src.listened)

	order := hub.Subscribe(entities.OrderTopic("o-1"))
	customer := hub.Subscribe(entities.CustomerTopic("c-1"))
	store := hub.Subscribe(entities.StoreTopic("s-1"))
	other := hub.Subscribe(entities.OrderTopic("o-2"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Consume(ctx)
		close(done)
	}()

	src.ch <- &pq.Notification{Channel: "order_events", Extra: "not json"}
	src.ch <- &pq.Notification{Channel: "order_events", Extra: `{"order_id":"o-1","customer_id":"c-1","store_id":"s-1"}`}

	assert.True(t, signaled(order))
	assert.True(t, signaled(customer))
	assert.True(t, signaled(store))

	// переподключение будит всех
	src.ch <- nil
	assert.True(t, signaled(other))

	cancel()
	<-done

	require.NoError(t, l.Close())
	assert.True(t, src.closed)
}

func TestListener_StartFails(t *testing.T) {
	hub := pubsub.NewHub()
	defer hub.Close()

	src := &fakeSource{listenErr: errors.New("no connection")}
	l := newListener(slog.New(slog.NewTextHandler(io.Discard, nil)), src, "order_events", hub)
	assert.Error(t, l.Start(context.Background()))
}
