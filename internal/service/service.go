package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/utils"
	"github.com/lib/pq"
)

//go:generate mockery

type OrderRepo interface {
	// Вставки идемпотентны по id (ON CONFLICT DO NOTHING), поэтому их можно повторять
	InsertOrder(ctx context.Context, o entities.Order) (bool, error)
	InsertMessage(ctx context.Context, m entities.Message) (entities.Message, error)

	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	LockOrder(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, p entities.OrderPatch) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	HasUnread(ctx context.Context, q entities.UnreadQuery) (bool, error)
	Messages(ctx context.Context, orderID string, afterSeq int64) ([]entities.Message, error)
}

type StoreFinder interface {
	Store(ctx context.Context, storeID string) (entities.Store, error)
	StoreOfSeller(ctx context.Context, sellerID string) (entities.Store, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e entities.OrderEvent) error
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// Эти ошибки не лечатся повтором
var permanentErrors = []error{
	entities.ErrValidation,
	entities.ErrPermission,
	entities.ErrNotFound,
	entities.ErrInvalidTransition,
	context.Canceled,
	context.DeadlineExceeded,
}

func retry(ctx context.Context, fn func() error) error {
	attempt := func() error { return rejectedInput(fn()) }
	return classify(utils.Retry(ctx, retryConfig, attempt, permanentErrors...))
}

// rejectedInput превращает отказ Postgres по данным (классы 22 и 23) в ErrValidation:
// повтор с теми же данными закончится тем же отказом.
func rejectedInput(err error) error {
	var pqErr *pq.Error
	if err == nil || !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Class() {
	case "22", "23":
		return fmt.Errorf("%w: %s", entities.ErrValidation, pqErr.Message)
	}
	return err
}

// classify помечает ошибки хранилища как ErrTransientIO, доменные оставляет как есть.
func classify(err error) error {
	err = rejectedInput(err)
	if err == nil || entities.IsDomainError(err) || errors.Is(err, entities.ErrTransientIO) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", entities.ErrTransientIO, err)
}

// watch вызывает refresh сразу и затем на каждый сигнал подписки, пока не отменён ctx.
// refresh всегда вызывается из одной горутины.
func watch(ctx context.Context, logger *slog.Logger, sub *pubsub.Subscription, refresh func(ctx context.Context) error) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer sub.Close()
		for {
			if err := refresh(ctx); err != nil && ctx.Err() == nil {
				logger.WarnContext(ctx, "failed to refresh subscription", slog.Any("error", err))
			}
			select {
			case <-ctx.Done():
				return
			case _, ok := <-sub.C():
				if !ok {
					return
				}
			}
		}
	}()
	return cancel
}

// failureLevel ошибки пользователя пишем в debug, сбои хранилища в error.
func failureLevel(err error) slog.Level {
	if entities.IsDomainError(err) || errors.Is(err, context.Canceled) {
		return slog.LevelDebug
	}
	return slog.LevelError
}

func permissionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", entities.ErrPermission, fmt.Sprintf(format, args...))
}
