package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/trm"

	"github.com/google/uuid"
)

type chatService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	hub       *pubsub.Hub
	events    EventPublisher
}

func NewChatService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, hub *pubsub.Hub, events EventPublisher) *chatService {
	return &chatService{
		logger:    logger.With(slog.String("service", "chat")),
		txManager: txManager,
		repo:      repo,
		hub:       hub,
		events:    events,
	}
}

// Send добавляет сообщение и обновляет заказ одной транзакцией: время последней
// активности становится временем сообщения, у собеседника поднимается флаг непрочитанного.
func (s *chatService) Send(ctx context.Context, orderID, senderID, text string) (entities.Message, error) {
	text, err := entities.NormalizeMessageText(text)
	if err != nil {
		return entities.Message{}, err
	}

	messageID := uuid.NewString()
	var (
		msg   entities.Message
		order entities.Order
	)
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			locked, err := s.repo.LockOrder(ctx, orderID)
			if err != nil {
				return err
			}
			role, ok := locked.RoleOf(senderID)
			if !ok {
				return permissionError("sender is not a party of order %s", orderID)
			}

			msg, err = s.repo.InsertMessage(ctx, entities.Message{
				ID:       messageID,
				OrderID:  orderID,
				SenderID: senderID,
				Text:     text,
			})
			if err != nil {
				return fmt.Errorf("failed to insert message: %w", err)
			}

			order, err = s.repo.UpdateOrder(ctx, orderID, entities.MessagePatch(role, msg.Timestamp))
			if err != nil {
				return fmt.Errorf("failed to touch order: %w", err)
			}
			return nil
		})
	}
	if err := retry(ctx, fn); err != nil {
		s.logger.Log(ctx, failureLevel(err), "failed to send message", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Message{}, err
	}

	s.hub.Publish(entities.ChangeOf(order).Topics()...)

	event := entities.NewOrderEvent(entities.EventMessageSent, order, senderID)
	event.MessageID = msg.ID
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish message event", slog.String("order_id", orderID), slog.Any("error", err))
	}
	return msg, nil
}

// History вся переписка по заказу по возрастанию времени.
func (s *chatService) History(ctx context.Context, orderID, viewerID string) ([]entities.Message, error) {
	if err := s.checkParty(ctx, orderID, viewerID); err != nil {
		return nil, err
	}
	return s.messagesAfter(ctx, orderID, 0)
}

// Subscribe отдаёт всю историю, затем новые сообщения по мере появления.
// Каждое сообщение доставляется ровно один раз и в порядке добавления.
func (s *chatService) Subscribe(ctx context.Context, orderID, viewerID string, onMessage func(entities.Message)) (func(), error) {
	sub := s.hub.Subscribe(entities.OrderTopic(orderID))
	if err := s.checkParty(ctx, orderID, viewerID); err != nil {
		sub.Close()
		return nil, err
	}

	var lastSeq int64
	return watch(ctx, s.logger, sub, func(ctx context.Context) error {
		messages, err := s.messagesAfter(ctx, orderID, lastSeq)
		if err != nil {
			return err
		}
		for _, m := range messages {
			onMessage(m)
			lastSeq = m.Seq
		}
		return nil
	}), nil
}

func (s *chatService) checkParty(ctx context.Context, orderID, viewerID string) error {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, orderID)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		return err
	}
	if !order.IsParty(viewerID) {
		return permissionError("user is not a party of order %s", orderID)
	}
	return nil
}

func (s *chatService) messagesAfter(ctx context.Context, orderID string, afterSeq int64) ([]entities.Message, error) {
	var messages []entities.Message
	fn := func() error {
		var err error
		messages, err = s.repo.Messages(ctx, orderID, afterSeq)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		return nil, err
	}
	return messages, nil
}
