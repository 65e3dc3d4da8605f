// Package live доставляет изменения заказов, закоммиченные любым экземпляром
// сервиса, в локальный pubsub.Hub через LISTEN/NOTIFY.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/config"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"

	"github.com/lib/pq"
)

// pingInterval проверка соединения, если уведомлений долго нет.
const pingInterval = 90 * time.Second

type source interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

type Listener struct {
	logger  *slog.Logger
	src     source
	channel string
	hub     *pubsub.Hub
}

func NewListener(logger *slog.Logger, dsn string, cfg config.Live, hub *pubsub.Hub) *Listener {
	logger = logger.With(slog.String("component", "live"))
	pl := pq.NewListener(dsn, cfg.MinReconnectInterval, cfg.MaxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventDisconnected:
			logger.Warn("listener disconnected", slog.Any("error", err))
		case pq.ListenerEventReconnected:
			logger.Info("listener reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			logger.Warn("listener connection attempt failed", slog.Any("error", err))
		}
	})
	return newListener(logger, pl, cfg.Channel, hub)
}

func newListener(logger *slog.Logger, src source, channel string, hub *pubsub.Hub) *Listener {
	return &Listener{
		logger:  logger,
		src:     src,
		channel: channel,
		hub:     hub,
	}
}

// Start подписывается на канал, реализует app.Starter.
func (l *Listener) Start(_ context.Context) error {
	if err := l.src.Listen(l.channel); err != nil {
		return err
	}
	l.logger.Info("listening for order changes", slog.String("channel", l.channel))
	return nil
}

// Consume пересылает уведомления в hub, пока не отменён ctx.
func (l *Listener) Consume(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-l.src.NotificationChannel():
			if !ok {
				return
			}
			l.dispatch(ctx, n)
		case <-ticker.C:
			if err := l.src.Ping(); err != nil {
				l.logger.WarnContext(ctx, "listener ping failed", slog.Any("error", err))
			}
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, n *pq.Notification) {
	// nil приходит после переподключения: часть уведомлений могла потеряться
	if n == nil {
		l.hub.Broadcast()
		return
	}

	var change entities.OrderChange
	if err := json.Unmarshal([]byte(n.Extra), &change); err != nil || change.OrderID == "" {
		l.logger.WarnContext(ctx, "invalid order change notification", slog.String("payload", n.Extra), slog.Any("error", err))
		return
	}
	l.hub.Publish(change.Topics()...)
}

func (l *Listener) Close() error {
	return l.src.Close()
}
