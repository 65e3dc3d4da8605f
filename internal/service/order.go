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

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	stores    StoreFinder
	hub       *pubsub.Hub
	events    EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	stores StoreFinder,
	hub *pubsub.Hub,
	events EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		stores:    stores,
		hub:       hub,
		events:    events,
	}
}

// Create создаёт заказ и, если передан комментарий, первое сообщение чата в одной транзакции.
// Повторный вызов с тем же ID возвращает уже существующий заказ.
func (s *orderService) Create(ctx context.Context, n entities.NewOrder) (entities.Order, error) {
	if err := n.Validate(); err != nil {
		return entities.Order{}, err
	}

	store, err := s.stores.Store(ctx, n.StoreID)
	if err != nil {
		return entities.Order{}, classify(err)
	}
	if store.OwnerID != n.SellerID {
		return entities.Order{}, fmt.Errorf("%w: seller %s has no store %s", entities.ErrStoreNotFound, n.SellerID, n.StoreID)
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	order := n.Build()
	noteID := uuid.NewString()

	var (
		saved   entities.Order
		created bool
	)
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			ok, err := s.repo.InsertOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to insert order: %w", err)
			}
			created = ok

			if ok && order.Notes != "" {
				msg, err := s.repo.InsertMessage(ctx, entities.Message{
					ID:       noteID,
					OrderID:  order.ID,
					SenderID: order.CustomerID,
					Text:     order.Notes,
				})
				if err != nil {
					return fmt.Errorf("failed to insert note: %w", err)
				}
				if _, err := s.repo.UpdateOrder(ctx, order.ID, entities.MessagePatch(entities.RoleBuyer, msg.Timestamp)); err != nil {
					return fmt.Errorf("failed to touch order: %w", err)
				}
			}

			saved, err = s.repo.GetOrder(ctx, order.ID)
			return err
		})
	}
	if err := retry(ctx, fn); err != nil {
		s.logger.ErrorContext(ctx, "failed to create order", slog.String("order_id", order.ID), slog.Any("error", err))
		return entities.Order{}, err
	}

	if saved.CustomerID != order.CustomerID || saved.StoreID != order.StoreID {
		return entities.Order{}, fmt.Errorf("%w: order %s already exists", entities.ErrValidation, order.ID)
	}

	if created {
		s.logger.DebugContext(ctx, "order created", slog.String("order_id", saved.ID), slog.String("type", string(saved.Type)))
		s.changed(ctx, saved, entities.EventOrderCreated, saved.CustomerID)
	}
	return saved, nil
}

// Transition меняет статус. Менять статус может только продавец; переход в текущий
// статус ничего не записывает.
func (s *orderService) Transition(ctx context.Context, orderID, actorID string, to entities.Status) (entities.Order, error) {
	var (
		result  entities.Order
		changed bool
	)
	fn := func() error {
		changed = false
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.LockOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if actorID == "" || order.SellerID != actorID {
				return permissionError("only the seller can change the status of order %s", orderID)
			}
			if err := entities.CanTransition(order.Type, order.Status, to); err != nil {
				return err
			}
			if order.Status == to {
				result = order
				return nil
			}

			result, err = s.repo.UpdateOrder(ctx, orderID, entities.TransitionPatch(to))
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
			changed = true
			return nil
		})
	}
	if err := retry(ctx, fn); err != nil {
		s.logFailure(ctx, "failed to transition order", orderID, err)
		return entities.Order{}, err
	}

	if changed {
		s.logger.DebugContext(ctx, "order status changed", slog.String("order_id", orderID), slog.String("status", string(to)))
		s.changed(ctx, result, entities.EventStatusChanged, actorID)
	}
	return result, nil
}

// MarkRead сбрасывает флаг непрочитанного того участника, который открыл заказ.
func (s *orderService) MarkRead(ctx context.Context, orderID, viewerID string) error {
	var (
		result  entities.Order
		changed bool
	)
	fn := func() error {
		changed = false
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.LockOrder(ctx, orderID)
			if err != nil {
				return err
			}
			role, ok := order.RoleOf(viewerID)
			if !ok {
				return permissionError("user is not a party of order %s", orderID)
			}

			patch := entities.ReadPatch(order, role)
			if patch.IsEmpty() {
				return nil
			}
			result, err = s.repo.UpdateOrder(ctx, orderID, patch)
			if err != nil {
				return fmt.Errorf("failed to mark order read: %w", err)
			}
			changed = true
			return nil
		})
	}
	if err := retry(ctx, fn); err != nil {
		s.logFailure(ctx, "failed to mark order read", orderID, err)
		return err
	}

	if changed {
		s.hub.Publish(entities.ChangeOf(result).Topics()...)
	}
	return nil
}

// SetUrgent приоритет заказа, виден только продавцу. Флаги непрочитанного не трогает.
func (s *orderService) SetUrgent(ctx context.Context, orderID, actorID string, urgent bool) (entities.Order, error) {
	var (
		result  entities.Order
		changed bool
	)
	fn := func() error {
		changed = false
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			order, err := s.repo.LockOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if actorID == "" || order.SellerID != actorID {
				return permissionError("only the seller can prioritise order %s", orderID)
			}
			if order.IsUrgent == urgent {
				result = order
				return nil
			}
			result, err = s.repo.UpdateOrder(ctx, orderID, entities.UrgencyPatch(urgent))
			if err != nil {
				return fmt.Errorf("failed to update urgency: %w", err)
			}
			changed = true
			return nil
		})
	}
	if err := retry(ctx, fn); err != nil {
		s.logFailure(ctx, "failed to set urgency", orderID, err)
		return entities.Order{}, err
	}

	if changed {
		s.changed(ctx, result, entities.EventUrgencyChanged, actorID)
	}
	return result, nil
}

func (s *orderService) Get(ctx context.Context, orderID, viewerID string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrder(ctx, orderID)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		return entities.Order{}, err
	}
	if !order.IsParty(viewerID) {
		return entities.Order{}, permissionError("user is not a party of order %s", orderID)
	}
	return order, nil
}

// ListForBuyer заказы покупателя, последние по активности сверху.
func (s *orderService) ListForBuyer(ctx context.Context, customerID string, f entities.OrderFilter) ([]entities.Order, error) {
	if customerID == "" {
		return nil, permissionError("anonymous buyer")
	}
	f.CustomerID, f.SellerID, f.StoreID = customerID, "", ""
	return s.list(ctx, f)
}

// ListForSeller заказы продавца; срочные и последние по активности сверху.
func (s *orderService) ListForSeller(ctx context.Context, sellerID string, f entities.OrderFilter) ([]entities.Order, error) {
	if sellerID == "" {
		return nil, permissionError("anonymous seller")
	}
	f.SellerID, f.CustomerID = sellerID, ""
	return s.list(ctx, f)
}

func (s *orderService) list(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	if f.Status != "" && !entities.OrderTypeServiceRequest.Allows(f.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrValidation, f.Status)
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", entities.ErrValidation, f.Type)
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, f)
		return err
	}
	if err := retry(ctx, fn); err != nil {
		s.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		return nil, err
	}
	return orders, nil
}

// SubscribeOrder присылает актуальный снимок заказа сразу и после каждого изменения.
func (s *orderService) SubscribeOrder(ctx context.Context, orderID, viewerID string, onChange func(entities.Order)) (func(), error) {
	// подписываемся до первого чтения, чтобы не пропустить изменение между ними
	sub := s.hub.Subscribe(entities.OrderTopic(orderID))
	if _, err := s.Get(ctx, orderID, viewerID); err != nil {
		sub.Close()
		return nil, err
	}

	return watch(ctx, s.logger, sub, func(ctx context.Context) error {
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		onChange(order)
		return nil
	}), nil
}

// changed будит локальных подписчиков и публикует событие. Ошибка публикации не
// откатывает уже сохранённое изменение.
func (s *orderService) changed(ctx context.Context, o entities.Order, t entities.EventType, actorID string) {
	s.hub.Publish(entities.ChangeOf(o).Topics()...)

	if err := s.events.Publish(ctx, entities.NewOrderEvent(t, o, actorID)); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("order_id", o.ID), slog.String("event", string(t)), slog.Any("error", err))
	}
}

func (s *orderService) logFailure(ctx context.Context, msg, orderID string, err error) {
	s.logger.Log(ctx, failureLevel(err), msg, slog.String("order_id", orderID), slog.Any("error", err))
}
