//go:build integration

package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/config"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/postgres"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/trm"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testChannel = "order_events_test"

func setupTestDB(t *testing.T) (*postgresRepo, trm.Manager, config.Postgres) {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:16-alpine",
		pgcontainer.WithDatabase("cuidja"),
		pgcontainer.WithUsername("cuidja"),
		pgcontainer.WithPassword("cuidja"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.Postgres{
		Host:           host,
		Port:           port.Int(),
		DBName:         "cuidja",
		User:           "cuidja",
		Password:       "cuidja",
		SSLMode:        "disable",
		MigrationsPath: "../../migrations",
	}

	db, err := postgres.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db, cfg.MigrationsPath))

	r := NewPostgresRepo(db, testChannel)
	require.NoError(t, r.saveStore(ctx, entities.Store{ID: "store-1", OwnerID: "seller-1", Name: "Açaí da Praça"}))
	require.NoError(t, r.saveListing(ctx, entities.Listing{
		ID: "l-1", StoreID: "store-1", Kind: entities.ListingProduct, Name: "Açaí 500ml", Price: 18, Available: true,
	}))

	return r, trm.NewManager(db), cfg
}

// Магазины и товары заводит каталог, здесь они нужны только как данные для тестов.
func (r *postgresRepo) saveStore(ctx context.Context, s entities.Store) error {
	query, args := r.qb.Insert("stores").
		Columns("id", "owner_id", "name").
		Values(s.ID, s.OwnerID, s.Name).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	return err
}

func (r *postgresRepo) saveListing(ctx context.Context, l entities.Listing) error {
	query, args := r.qb.Insert("listings").
		Columns("id", "store_id", "kind", "name", "price", "available").
		Values(l.ID, l.StoreID, string(l.Kind), l.Name, l.Price, l.Available).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	return err
}

func newOrder(t *testing.T) entities.Order {
	t.Helper()
	o := entities.NewOrder{
		ID:            uuid.NewString(),
		Type:          entities.OrderTypePurchase,
		CustomerID:    "buyer-1",
		SellerID:      "seller-1",
		StoreID:       "store-1",
		Items:         []entities.Item{{ListingID: "l-1", Name: "Açaí 500ml", Quantity: 2, UnitPrice: 18, AddOns: []entities.AddOn{{Name: "Granola", Price: 2}}}},
		TotalAmount:   40,
		PaymentMethod: entities.PaymentPix,
	}
	require.NoError(t, o.Validate())
	return o.Build()
}

func TestPostgresRepo_InsertOrderIsIdempotent(t *testing.T) {
	r, _, _ := setupTestDB(t)
	ctx := context.Background()
	o := newOrder(t)

	inserted, err := r.InsertOrder(ctx, o)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = r.InsertOrder(ctx, o)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := r.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, entities.StatusPending, got.Status)
	assert.Equal(t, 40.0, got.TotalAmount)
	assert.True(t, got.SellerHasUnread)
	assert.False(t, got.BuyerHasUnread)
	assert.Equal(t, got.CreatedAt, got.LastMessageTimestamp)

	_, err = r.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPostgresRepo_UpdateOrder(t *testing.T) {
	r, txManager, _ := setupTestDB(t)
	ctx := context.Background()
	o := newOrder(t)
	_, err := r.InsertOrder(ctx, o)
	require.NoError(t, err)
	created, err := r.GetOrder(ctx, o.ID)
	require.NoError(t, err)

	var updated entities.Order
	err = txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.LockOrder(ctx, o.ID); err != nil {
			return err
		}
		updated, err = r.UpdateOrder(ctx, o.ID, entities.TransitionPatch(entities.StatusConfirmed))
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusConfirmed, updated.Status)
	assert.True(t, updated.BuyerHasUnread)
	assert.False(t, updated.SellerHasUnread)
	assert.False(t, updated.LastMessageTimestamp.Before(created.LastMessageTimestamp))

	// время активности не уходит назад
	past := updated.LastMessageTimestamp.Add(-time.Hour)
	again, err := r.UpdateOrder(ctx, o.ID, entities.OrderPatch{LastActivity: &past})
	require.NoError(t, err)
	assert.True(t, again.LastMessageTimestamp.Equal(updated.LastMessageTimestamp))

	_, err = r.UpdateOrder(ctx, "missing", entities.UrgencyPatch(true))
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPostgresRepo_Messages(t *testing.T) {
	r, txManager, _ := setupTestDB(t)
	ctx := context.Background()
	o := newOrder(t)
	_, err := r.InsertOrder(ctx, o)
	require.NoError(t, err)

	var sent []entities.Message
	for i := range 5 {
		err := txManager.Do(ctx, func(ctx context.Context) error {
			if _, err := r.LockOrder(ctx, o.ID); err != nil {
				return err
			}
			m, err := r.InsertMessage(ctx, entities.Message{
				ID: uuid.NewString(), OrderID: o.ID, SenderID: "buyer-1", Text: fmt.Sprintf("msg %d", i),
			})
			sent = append(sent, m)
			return err
		})
		require.NoError(t, err)
	}

	// повторная вставка возвращает сохранённое сообщение
	dup, err := r.InsertMessage(ctx, entities.Message{ID: sent[0].ID, OrderID: o.ID, SenderID: "buyer-1", Text: "other"})
	require.NoError(t, err)
	assert.Equal(t, sent[0], dup)

	all, err := r.Messages(ctx, o.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Seq, all[i-1].Seq)
		assert.False(t, all[i].Timestamp.Before(all[i-1].Timestamp))
	}

	tail, err := r.Messages(ctx, o.ID, all[2].Seq)
	require.NoError(t, err)
	assert.Equal(t, all[3:], tail)

	_, err = r.InsertMessage(ctx, entities.Message{ID: uuid.NewString(), OrderID: "missing", SenderID: "buyer-1", Text: "oi"})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	// отказ по данным приходит ошибкой класса 22, сервис не повторяет такие
	_, err = r.InsertMessage(ctx, entities.Message{ID: uuid.NewString(), OrderID: o.ID, SenderID: "buyer-1", Text: "oi\x00"})
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorClass("22"), pqErr.Code.Class())
}

func TestPostgresRepo_ListAndUnread(t *testing.T) {
	r, _, _ := setupTestDB(t)
	ctx := context.Background()

	first := newOrder(t)
	second := newOrder(t)
	second.IsUrgent = true
	for _, o := range []entities.Order{first, second} {
		_, err := r.InsertOrder(ctx, o)
		require.NoError(t, err)
	}

	orders, err := r.ListOrders(ctx, entities.OrderFilter{SellerID: "seller-1"})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)

	unread, err := r.ListOrders(ctx, entities.OrderFilter{CustomerID: "buyer-1", UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, unread)

	has, err := r.HasUnread(ctx, entities.UnreadQuery{StoreID: "store-1"})
	require.NoError(t, err)
	assert.True(t, has)

	has, err = r.HasUnread(ctx, entities.UnreadQuery{CustomerID: "buyer-1"})
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPostgresRepo_StoresAndListings(t *testing.T) {
	r, _, _ := setupTestDB(t)
	ctx := context.Background()

	s, err := r.StoreByOwner(ctx, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, "store-1", s.ID)

	_, err = r.StoreByOwner(ctx, "nobody")
	assert.ErrorIs(t, err, entities.ErrStoreNotFound)

	// второй магазин того же продавца не заводится
	err = r.saveStore(ctx, entities.Store{ID: "store-2", OwnerID: "seller-1", Name: "Outra"})
	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("23505"), pqErr.Code)

	l, err := r.SetListingAvailability(ctx, "l-1", false)
	require.NoError(t, err)
	assert.False(t, l.Available)

	l, err = r.GetListing(ctx, "l-1")
	require.NoError(t, err)
	assert.False(t, l.Available)

	_, err = r.SetListingAvailability(ctx, "missing", true)
	assert.ErrorIs(t, err, entities.ErrListingNotFound)
}

func TestPostgresRepo_NotifiesAfterCommit(t *testing.T) {
	r, txManager, cfg := setupTestDB(t)
	ctx := context.Background()

	listener := pq.NewListener(postgres.DSN(cfg), 10*time.Millisecond, time.Second, nil)
	t.Cleanup(func() { listener.Close() })
	require.NoError(t, listener.Listen(testChannel))

	o := newOrder(t)
	err := txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.InsertOrder(ctx, o); err != nil {
			return err
		}
		select {
		case <-listener.Notify:
			return fmt.Errorf("notification before commit")
		case <-time.After(100 * time.Millisecond):
			return nil
		}
	})
	require.NoError(t, err)

	select {
	case n := <-listener.Notify:
		require.NotNil(t, n)
		var change entities.OrderChange
		require.NoError(t, json.Unmarshal([]byte(n.Extra), &change))
		assert.Equal(t, o.ID, change.OrderID)
		assert.Equal(t, "store-1", change.StoreID)
	case <-time.After(5 * time.Second):
		t.Fatal("no notification")
	}
}

func TestManager_NestedDoJoinsOuterTx(t *testing.T) {
	r, txManager, _ := setupTestDB(t)
	ctx := context.Background()
	o := newOrder(t)

	boom := fmt.Errorf("boom")
	err := txManager.Do(ctx, func(ctx context.Context) error {
		if err := txManager.Do(ctx, func(ctx context.Context) error {
			_, err := r.InsertOrder(ctx, o)
			return err
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// внутренний Do не коммитит сам
	_, err = r.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
