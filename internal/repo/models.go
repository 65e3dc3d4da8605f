package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
)

var orderColumns = []string{
	"id", "order_type", "customer_id", "seller_id", "store_id",
	"items", "service_id", "service_name", "total_amount", "payment_method", "notes",
	"status", "created_at", "last_message_timestamp",
	"seller_has_unread", "buyer_has_unread", "is_urgent",
}

var messageColumns = []string{"id", "order_id", "seq", "sender_id", "text", "created_at"}

var storeColumns = []string{"id", "owner_id", "name", "created_at"}

var listingColumns = []string{"id", "store_id", "kind", "name", "price", "available", "updated_at"}

type Order struct {
	ID                   string         `db:"id"`
	OrderType            string         `db:"order_type"`
	CustomerID           string         `db:"customer_id"`
	SellerID             string         `db:"seller_id"`
	StoreID              string         `db:"store_id"`
	Items                []byte         `db:"items"`
	ServiceID            sql.NullString `db:"service_id"`
	ServiceName          sql.NullString `db:"service_name"`
	TotalAmount          float64        `db:"total_amount"`
	PaymentMethod        sql.NullString `db:"payment_method"`
	Notes                sql.NullString `db:"notes"`
	Status               string         `db:"status"`
	CreatedAt            time.Time      `db:"created_at"`
	LastMessageTimestamp time.Time      `db:"last_message_timestamp"`
	SellerHasUnread      bool           `db:"seller_has_unread"`
	BuyerHasUnread       bool           `db:"buyer_has_unread"`
	IsUrgent             bool           `db:"is_urgent"`
}

// Item хранится в jsonb колонке orders.items
type Item struct {
	ListingID string  `json:"listing_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	AddOns    []AddOn `json:"add_ons,omitempty"`
}

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Message struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	Seq       int64     `db:"seq"`
	SenderID  string    `db:"sender_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type Store struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Listing struct {
	ID        string    `db:"id"`
	StoreID   string    `db:"store_id"`
	Kind      string    `db:"kind"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	Available bool      `db:"available"`
	UpdatedAt time.Time `db:"updated_at"`
}

func OrderToEntity(o Order) (entities.Order, error) {
	var items []Item
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode items of order %s: %w", o.ID, err)
		}
	}

	order := entities.Order{
		ID:                   o.ID,
		Type:                 entities.OrderType(o.OrderType),
		CustomerID:           o.CustomerID,
		SellerID:             o.SellerID,
		StoreID:              o.StoreID,
		ServiceID:            nullStringToString(o.ServiceID),
		ServiceName:          nullStringToString(o.ServiceName),
		TotalAmount:          o.TotalAmount,
		PaymentMethod:        entities.PaymentMethod(nullStringToString(o.PaymentMethod)),
		Notes:                nullStringToString(o.Notes),
		Status:               entities.Status(o.Status),
		CreatedAt:            o.CreatedAt,
		LastMessageTimestamp: o.LastMessageTimestamp,
		SellerHasUnread:      o.SellerHasUnread,
		BuyerHasUnread:       o.BuyerHasUnread,
		IsUrgent:             o.IsUrgent,
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}
	return order, nil
}

func ItemToEntity(i Item) entities.Item {
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

func ItemsFromEntity(items []entities.Item) (string, error) {
	rows := make([]Item, 0, len(items))
	for _, it := range items {
		row := Item{
			ListingID: it.ListingID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		for _, a := range it.AddOns {
			row.AddOns = append(row.AddOns, AddOn{Name: a.Name, Price: a.Price})
		}
		rows = append(rows, row)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	// строкой, иначе lib/pq отправит []byte как bytea
	return string(data), nil
}

func MessageToEntity(m Message) entities.Message {
	return entities.Message{
		ID:        m.ID,
		OrderID:   m.OrderID,
		Seq:       m.Seq,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.CreatedAt,
	}
}

func StoreToEntity(s Store) entities.Store {
	return entities.Store{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func ListingToEntity(l Listing) entities.Listing {
	return entities.Listing{
		ID:        l.ID,
		StoreID:   l.StoreID,
		Kind:      entities.ListingKind(l.Kind),
		Name:      l.Name,
		Price:     l.Price,
		Available: l.Available,
		UpdatedAt: l.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
