package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
)

type notificationService struct {
	logger *slog.Logger
	repo   OrderRepo
	stores StoreFinder
	hub    *pubsub.Hub
}

func NewNotificationService(logger *slog.Logger, repo OrderRepo, stores StoreFinder, hub *pubsub.Hub) *notificationService {
	return &notificationService{
		logger: logger.With(slog.String("service", "notification")),
		repo:   repo,
		stores: stores,
		hub:    hub,
	}
}

// HasUnread есть ли у пользователя в данной роли хотя бы один заказ с непрочитанным.
// Продавец без магазина не может получать заказы, для него ответ всегда false.
func (s *notificationService) HasUnread(ctx context.Context, viewerID string, role entities.Role) (bool, error) {
	q, ok, err := s.query(ctx, viewerID, role)
	if err != nil || !ok {
		return false, err
	}
	return s.hasUnread(ctx, q)
}

// Subscribe вызывает onChange с текущим значением и затем при каждом его изменении.
func (s *notificationService) Subscribe(ctx context.Context, viewerID string, role entities.Role, onChange func(bool)) (func(), error) {
	q, ok, err := s.query(ctx, viewerID, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		onChange(false)
		return func() {}, nil
	}

	topic := entities.CustomerTopic(q.CustomerID)
	if q.StoreID != "" {
		topic = entities.StoreTopic(q.StoreID)
	}
	sub := s.hub.Subscribe(topic)

	var (
		last    bool
		emitted bool
	)
	return watch(ctx, s.logger, sub, func(ctx context.Context) error {
		unread, err := s.hasUnread(ctx, q)
		if err != nil {
			return err
		}
		if emitted && unread == last {
			return nil
		}
		last, emitted = unread, true
		onChange(unread)
		return nil
	}), nil
}

// query возвращает ok=false для продавца без магазина.
func (s *notificationService) query(ctx context.Context, viewerID string, role entities.Role) (entities.UnreadQuery, bool, error) {
	if viewerID == "" {
		return entities.UnreadQuery{}, false, permissionError("anonymous viewer")
	}

	switch role {
	case entities.RoleBuyer:
		return entities.UnreadQuery{CustomerID: viewerID}, true, nil
	case entities.RoleSeller:
		store, err := s.stores.StoreOfSeller(ctx, viewerID)
		if errors.Is(err, entities.ErrNotFound) {
			return entities.UnreadQuery{}, false, nil
		}
		if err != nil {
			return entities.UnreadQuery{}, false, classify(err)
		}
		return entities.UnreadQuery{StoreID: store.ID}, true, nil
	default:
		return entities.UnreadQuery{}, false, fmt.Errorf("%w: unknown role %q", entities.ErrValidation, role)
	}
}

func (s *notificationService) hasUnread(ctx context.Context, q entities.UnreadQuery) (bool, error) {
	var unread bool
	fn := func() error {
		var err error
		unread, err = s.repo.HasUnread(ctx, q)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		s.logger.Log(ctx, failureLevel(err), "failed to check unread orders", slog.Any("error", err))
		return false, err
	}
	return unread, nil
}
