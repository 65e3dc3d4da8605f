package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const defaultListLimit = 50

// Метка сообщения берётся под блокировкой строки заказа (LockOrder), поэтому
// внутри одного чата время не убывает, а seq задаёт порядок при равенстве.
const insertMessageQuery = `
INSERT INTO messages (id, order_id, sender_id, text, created_at)
SELECT $1::text, o.id, $3::text, $4::text, GREATEST(clock_timestamp(), o.last_message_timestamp)
FROM orders o
WHERE o.id = $2
ON CONFLICT (id) DO NOTHING
RETURNING id, order_id, seq, sender_id, text, created_at`

type postgresRepo struct {
	db            *sqlx.DB
	qb            sq.StatementBuilderType
	notifyChannel string
}

// NewPostgresRepo каждое изменение заказа сопровождается pg_notify(notifyChannel)
// в той же транзакции, поэтому подписчики узнают о нём только после commit.
func NewPostgresRepo(db *sqlx.DB, notifyChannel string) *postgresRepo {
	return &postgresRepo{
		db:            db,
		qb:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		notifyChannel: notifyChannel,
	}
}

func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) (bool, error) {
	items, err := ItemsFromEntity(o.Items)
	if err != nil {
		return false, fmt.Errorf("failed to encode items: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, string(o.Type), o.CustomerID, o.SellerID, o.StoreID,
			items, nullString(o.ServiceID), nullString(o.ServiceName), o.TotalAmount,
			nullString(string(o.PaymentMethod)), nullString(o.Notes),
			string(o.Status), sq.Expr("now()"), sq.Expr("now()"),
			o.SellerHasUnread, o.BuyerHasUnread, o.IsUrgent,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to insert order: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if err := r.notify(ctx, entities.ChangeOf(o)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	return r.getOrder(ctx, query, args...)
}

// LockOrder читает заказ с SELECT ... FOR UPDATE. Имеет смысл только внутри транзакции.
func (r *postgresRepo) LockOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	return r.getOrder(ctx, query, args...)
}

func (r *postgresRepo) UpdateOrder(ctx context.Context, orderID string, p entities.OrderPatch) (entities.Order, error) {
	if p.IsEmpty() {
		return r.GetOrder(ctx, orderID)
	}

	q := r.qb.Update("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", "))

	if p.Status != nil {
		q = q.Set("status", string(*p.Status))
	}
	if p.SellerHasUnread != nil {
		q = q.Set("seller_has_unread", *p.SellerHasUnread)
	}
	if p.BuyerHasUnread != nil {
		q = q.Set("buyer_has_unread", *p.BuyerHasUnread)
	}
	if p.IsUrgent != nil {
		q = q.Set("is_urgent", *p.IsUrgent)
	}

	// время активности только растёт
	switch {
	case p.LastActivity != nil && p.TouchNow:
		q = q.Set("last_message_timestamp",
			sq.Expr("GREATEST(last_message_timestamp, ?, clock_timestamp())", *p.LastActivity))
	case p.LastActivity != nil:
		q = q.Set("last_message_timestamp", sq.Expr("GREATEST(last_message_timestamp, ?)", *p.LastActivity))
	case p.TouchNow:
		q = q.Set("last_message_timestamp", sq.Expr("GREATEST(last_message_timestamp, clock_timestamp())"))
	}

	query, args := q.MustSql()
	order, err := r.getOrder(ctx, query, args...)
	if err != nil {
		return entities.Order{}, err
	}

	if err := r.notify(ctx, entities.ChangeOf(order)); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")

	if f.CustomerID != "" {
		q = q.Where(sq.Eq{"customer_id": f.CustomerID})
		if f.UnreadOnly {
			q = q.Where("buyer_has_unread")
		}
	}
	if f.SellerID != "" {
		q = q.Where(sq.Eq{"seller_id": f.SellerID})
		if f.UnreadOnly {
			q = q.Where("seller_has_unread")
		}
	}
	if f.StoreID != "" {
		q = q.Where(sq.Eq{"store_id": f.StoreID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.Type != "" {
		q = q.Where(sq.Eq{"order_type": string(f.Type)})
	}
	if f.UrgentOnly {
		q = q.Where("is_urgent")
	}

	limit := f.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	query, args := q.
		OrderBy("is_urgent DESC", "last_message_timestamp DESC", "id").
		Limit(limit).
		Offset(f.Offset).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *postgresRepo) HasUnread(ctx context.Context, uq entities.UnreadQuery) (bool, error) {
	q := r.qb.Select("1").From("orders")
	switch {
	case uq.CustomerID != "":
		q = q.Where(sq.Eq{"customer_id": uq.CustomerID}).Where("buyer_has_unread")
	case uq.StoreID != "":
		q = q.Where(sq.Eq{"store_id": uq.StoreID}).Where("seller_has_unread")
	default:
		return false, errors.New("unread query without viewer")
	}

	query, args := q.Prefix("SELECT EXISTS (").Suffix(")").MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check unread orders: %w", err)
	}
	return exists, nil
}

// InsertMessage идемпотентна по id: повторная вставка возвращает уже сохранённое сообщение.
func (r *postgresRepo) InsertMessage(ctx context.Context, m entities.Message) (entities.Message, error) {
	var row Message
	err := r.getContext(ctx, &row, insertMessageQuery, m.ID, m.OrderID, m.SenderID, m.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return r.getMessage(ctx, m)
	}
	if err != nil {
		return entities.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}
	return MessageToEntity(row), nil
}

func (r *postgresRepo) getMessage(ctx context.Context, m entities.Message) (entities.Message, error) {
	query, args := r.qb.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": m.ID}).
		MustSql()

	var row Message
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		// заказа нет, поэтому INSERT ... SELECT ничего не вставил
		return entities.Message{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Message{}, fmt.Errorf("failed to get message: %w", err)
	}
	return MessageToEntity(row), nil
}

func (r *postgresRepo) Messages(ctx context.Context, orderID string, afterSeq int64) ([]entities.Message, error) {
	query, args := r.qb.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("created_at", "seq").
		MustSql()

	var rows []Message
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	messages := make([]entities.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, MessageToEntity(row))
	}
	return messages, nil
}

func (r *postgresRepo) GetStore(ctx context.Context, storeID string) (entities.Store, error) {
	query, args := r.qb.Select(storeColumns...).
		From("stores").
		Where(sq.Eq{"id": storeID}).
		MustSql()

	return r.getStore(ctx, query, args...)
}

func (r *postgresRepo) StoreByOwner(ctx context.Context, ownerID string) (entities.Store, error) {
	query, args := r.qb.Select(storeColumns...).
		From("stores").
		Where(sq.Eq{"owner_id": ownerID}).
		MustSql()

	return r.getStore(ctx, query, args...)
}

func (r *postgresRepo) GetListing(ctx context.Context, listingID string) (entities.Listing, error) {
	query, args := r.qb.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"id": listingID}).
		MustSql()

	return r.getListing(ctx, query, args...)
}

func (r *postgresRepo) SetListingAvailability(ctx context.Context, listingID string, available bool) (entities.Listing, error) {
	query, args := r.qb.Update("listings").
		Set("available", available).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": listingID}).
		Suffix("RETURNING " + strings.Join(listingColumns, ", ")).
		MustSql()

	return r.getListing(ctx, query, args...)
}

func (r *postgresRepo) getOrder(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row)
}

func (r *postgresRepo) getStore(ctx context.Context, query string, args ...any) (entities.Store, error) {
	var row Store
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Store{}, entities.ErrStoreNotFound
	}
	if err != nil {
		return entities.Store{}, fmt.Errorf("failed to get store: %w", err)
	}
	return StoreToEntity(row), nil
}

func (r *postgresRepo) getListing(ctx context.Context, query string, args ...any) (entities.Listing, error) {
	var row Listing
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Listing{}, entities.ErrListingNotFound
	}
	if err != nil {
		return entities.Listing{}, fmt.Errorf("failed to get listing: %w", err)
	}
	return ListingToEntity(row), nil
}

func (r *postgresRepo) notify(ctx context.Context, change entities.OrderChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to encode change: %w", err)
	}
	if _, err := r.execContext(ctx, "SELECT pg_notify($1, $2)", r.notifyChannel, string(payload)); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
