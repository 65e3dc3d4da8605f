package handler

import (
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
)

// CreateOrderRequest заказ товаров или заявка на услугу
type CreateOrderRequest struct {
	// Необязательный ID, повторный запрос с тем же ID вернёт уже созданный заказ
	ID            string  `json:"id,omitempty" validate:"omitempty,uuid"`
	Type          string  `json:"type" validate:"required,oneof=PURCHASE SERVICE_REQUEST"`
	SellerID      string  `json:"seller_id" validate:"required"`
	StoreID       string  `json:"store_id" validate:"required"`
	Items         []Item  `json:"items,omitempty" validate:"required_if=Type PURCHASE,dive"`
	ServiceID     string  `json:"service_id,omitempty" validate:"required_if=Type SERVICE_REQUEST"`
	ServiceName   string  `json:"service_name,omitempty"`
	TotalAmount   float64 `json:"total_amount" validate:"gte=0"`
	PaymentMethod string  `json:"payment_method,omitempty" validate:"omitempty,oneof=pix card cash"`
	Note          string  `json:"note,omitempty" validate:"max=4000"`
}

// Checkout событие оформления заказа из топика checkouts
type Checkout struct {
	CreateOrderRequest
	CustomerID string `json:"customer_id" validate:"required"`
}

// Item позиция заказа
type Item struct {
	ListingID string  `json:"listing_id,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	AddOns    []AddOn `json:"add_ons,omitempty" validate:"dive"`
}

// AddOn дополнение к позиции
type AddOn struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Order заказ с точки зрения одного из участников
type Order struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	CustomerID           string    `json:"customer_id"`
	SellerID             string    `json:"seller_id"`
	StoreID              string    `json:"store_id"`
	Items                []Item    `json:"items,omitempty"`
	ServiceID            string    `json:"service_id,omitempty"`
	ServiceName          string    `json:"service_name,omitempty"`
	TotalAmount          float64   `json:"total_amount"`
	PaymentMethod        string    `json:"payment_method,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	LastMessageTimestamp time.Time `json:"last_message_timestamp"`
	SellerHasUnread      bool      `json:"seller_has_unread"`
	BuyerHasUnread       bool      `json:"buyer_has_unread"`
	IsUrgent             bool      `json:"is_urgent,omitempty"`
}

// Message сообщение чата заказа
type Message struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Seq       int64     `json:"seq"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Listing товар или услуга магазина
type Listing struct {
	ID        string  `json:"id"`
	StoreID   string  `json:"store_id,omitempty"`
	Kind      string  `json:"kind,omitempty"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Available bool    `json:"available"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UrgentRequest struct {
	Urgent *bool `json:"urgent" validate:"required"`
}

type MessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type UnreadResponse struct {
	HasUnread bool `json:"has_unread"`
}

func (r CreateOrderRequest) ToEntity(customerID string) entities.NewOrder {
	items := make([]entities.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	total := r.TotalAmount
	if total == 0 && len(items) > 0 {
		total = entities.ItemsTotal(items)
	}

	return entities.NewOrder{
		ID:            r.ID,
		Type:          entities.OrderType(r.Type),
		CustomerID:    customerID,
		SellerID:      r.SellerID,
		StoreID:       r.StoreID,
		Items:         items,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		TotalAmount:   total,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Note:          r.Note,
	}
}

func ItemJSONToEntity(i Item) entities.Item {
	item := entities.Item{
		ListingID: i.ListingID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
	for _, a := range i.AddOns {
		item.AddOns = append(item.AddOns, entities.AddOn{Name: a.Name, Price: a.Price})
	}
	return item
}

func ItemEntityToJSON(i entities.Item) Item {
	item := Item{
		ListingID: i.ListingID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
	for _, a := range i.AddOns {
		item.AddOns = append(item.AddOns, AddOn{Name: a.Name, Price: a.Price})
	}
	return item
}

// OrderEntityToJSON срочность видит только продавец.
func OrderEntityToJSON(o entities.Order, viewerID string) Order {
	order := Order{
		ID:                   o.ID,
		Type:                 string(o.Type),
		CustomerID:           o.CustomerID,
		SellerID:             o.SellerID,
		StoreID:              o.StoreID,
		ServiceID:            o.ServiceID,
		ServiceName:          o.ServiceName,
		TotalAmount:          o.TotalAmount,
		PaymentMethod:        string(o.PaymentMethod),
		Notes:                o.Notes,
		Status:               string(o.Status),
		CreatedAt:            o.CreatedAt,
		LastMessageTimestamp: o.LastMessageTimestamp,
		SellerHasUnread:      o.SellerHasUnread,
		BuyerHasUnread:       o.BuyerHasUnread,
	}
	if viewerID == o.SellerID {
		order.IsUrgent = o.IsUrgent
	}
	for _, it := range o.Items {
		order.Items = append(order.Items, ItemEntityToJSON(it))
	}
	return order
}

func OrdersEntityToJSON(orders []entities.Order, viewerID string) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o, viewerID))
	}
	return res
}

func MessageEntityToJSON(m entities.Message) Message {
	return Message{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Seq:       m.Seq,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func MessagesEntityToJSON(messages []entities.Message) []Message {
	res := make([]Message, 0, len(messages))
	for _, m := range messages {
		res = append(res, MessageEntityToJSON(m))
	}
	return res
}

func ListingEntityToJSON(l entities.Listing) Listing {
	return Listing{
		ID:        l.ID,
		StoreID:   l.StoreID,
		Kind:      string(l.Kind),
		Name:      l.Name,
		Price:     l.Price,
		Available: l.Available,
	}
}
