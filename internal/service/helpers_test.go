package service_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/trm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passTx выполняет callback без настоящей транзакции.
type passTx struct{}

func (passTx) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, nil, nil
}

func (passTx) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}

// memRepo хранилище заказов в памяти с часами, которые идут на секунду вперёд при каждом чтении.
type memRepo struct {
	mu       sync.Mutex
	clock    time.Time
	seq      int64
	orders   map[string]entities.Order
	messages map[string][]entities.Message
	patches  []entities.OrderPatch
}

func newMemRepo() *memRepo {
	return &memRepo{
		clock:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		orders:   make(map[string]entities.Order),
		messages: make(map[string][]entities.Message),
	}
}

func (r *memRepo) now() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memRepo) InsertOrder(_ context.Context, o entities.Order) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return false, nil
	}
	o.CreatedAt = r.now()
	o.LastMessageTimestamp = o.CreatedAt
	r.orders[o.ID] = o
	return true, nil
}

func (r *memRepo) InsertMessage(_ context.Context, m entities.Message) (entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.messages[m.OrderID] {
		if existing.ID == m.ID {
			return existing, nil
		}
	}
	o, ok := r.orders[m.OrderID]
	if !ok {
		return entities.Message{}, entities.ErrOrderNotFound
	}

	r.seq++
	m.Seq = r.seq
	m.Timestamp = r.now()
	if o.LastMessageTimestamp.After(m.Timestamp) {
		m.Timestamp = o.LastMessageTimestamp
	}
	r.messages[m.OrderID] = append(r.messages[m.OrderID], m)
	return m, nil
}

func (r *memRepo) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (r *memRepo) LockOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return r.GetOrder(ctx, orderID)
}

func (r *memRepo) UpdateOrder(_ context.Context, orderID string, p entities.OrderPatch) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	r.patches = append(r.patches, p)
	o = p.Apply(o, r.now())
	r.orders[orderID] = o
	return o, nil
}

func (r *memRepo) ListOrders(_ context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Order
	for _, o := range r.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.SellerID != "" && o.SellerID != f.SellerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageTimestamp.After(out[j].LastMessageTimestamp)
	})
	return out, nil
}

func (r *memRepo) HasUnread(_ context.Context, q entities.UnreadQuery) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if q.CustomerID != "" && o.CustomerID == q.CustomerID && o.BuyerHasUnread {
			return true, nil
		}
		if q.StoreID != "" && o.StoreID == q.StoreID && o.SellerHasUnread {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) Messages(_ context.Context, orderID string, afterSeq int64) ([]entities.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Message
	for _, m := range r.messages[orderID] {
		if m.Seq > afterSeq {
			out = append(out, m)
		}
	}
	return out, nil
}

// staticStores один магазин store-1 продавца seller-1.
type staticStores struct{}

func (staticStores) Store(_ context.Context, storeID string) (entities.Store, error) {
	if storeID != "store-1" {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	return entities.Store{ID: "store-1", OwnerID: "seller-1", Name: "Padaria"}, nil
}

func (staticStores) StoreOfSeller(_ context.Context, sellerID string) (entities.Store, error) {
	if sellerID != "seller-1" {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	return entities.Store{ID: "store-1", OwnerID: "seller-1", Name: "Padaria"}, nil
}

type nopEvents struct{}

func (nopEvents) Publish(context.Context, entities.OrderEvent) error { return nil }

func purchase(id string) entities.NewOrder {
	return entities.NewOrder{
		ID:         id,
		Type:       entities.OrderTypePurchase,
		CustomerID: "buyer-1",
		SellerID:   "seller-1",
		StoreID:    "store-1",
		Items: []entities.Item{
			{Name: "Pão de queijo", Quantity: 10, UnitPrice: 2.5},
			{Name: "Bolo de fubá", Quantity: 1, UnitPrice: 30},
		},
		TotalAmount:   55.00,
		PaymentMethod: entities.PaymentPix,
	}
}

func storedOrder(status entities.Status) entities.Order {
	return entities.Order{
		ID:                   "order-1",
		Type:                 entities.OrderTypePurchase,
		CustomerID:           "buyer-1",
		SellerID:             "seller-1",
		StoreID:              "store-1",
		TotalAmount:          55,
		Status:               status,
		CreatedAt:            time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		LastMessageTimestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		SellerHasUnread:      true,
	}
}
