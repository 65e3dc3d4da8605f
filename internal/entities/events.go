package entities

import "time"

// OrderChange сигнал об изменении заказа или его чата. Подписчики перечитывают состояние сами.
type OrderChange struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	StoreID    string `json:"store_id"`
}

func ChangeOf(o Order) OrderChange {
	return OrderChange{OrderID: o.ID, CustomerID: o.CustomerID, StoreID: o.StoreID}
}

func (c OrderChange) Topics() []string {
	return []string{OrderTopic(c.OrderID), CustomerTopic(c.CustomerID), StoreTopic(c.StoreID)}
}

func OrderTopic(orderID string) string       { return "order:" + orderID }
func CustomerTopic(customerID string) string { return "customer:" + customerID }
func StoreTopic(storeID string) string       { return "store:" + storeID }

type EventType string

const (
	EventOrderCreated   EventType = "order.created"
	EventStatusChanged  EventType = "order.status_changed"
	EventMessageSent    EventType = "order.message_sent"
	EventUrgencyChanged EventType = "order.urgency_changed"
)

// OrderEvent доменное событие для внешних потребителей (push, email).
type OrderEvent struct {
	Type       EventType `json:"type"`
	OrderID    string    `json:"order_id"`
	OrderType  OrderType `json:"order_type"`
	CustomerID string    `json:"customer_id"`
	SellerID   string    `json:"seller_id"`
	StoreID    string    `json:"store_id"`
	Status     Status    `json:"status"`
	ActorID    string    `json:"actor_id,omitempty"`
	MessageID  string    `json:"message_id,omitempty"`
	At         time.Time `json:"at"`
}

func NewOrderEvent(t EventType, o Order, actorID string) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		OrderType:  o.Type,
		CustomerID: o.CustomerID,
		SellerID:   o.SellerID,
		StoreID:    o.StoreID,
		Status:     o.Status,
		ActorID:    actorID,
		At:         o.LastMessageTimestamp,
	}
}
