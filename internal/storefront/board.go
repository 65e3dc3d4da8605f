// Package storefront держит видимую витрине доступность товаров и услуг.
// Переключение показывается сразу, до подтверждения записи, и откатывается,
// если запись не удалась.
package storefront

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/optimistic"
)

//go:generate mockery

type ListingReader interface {
	GetListing(ctx context.Context, listingID string) (entities.Listing, error)
}

type AvailabilityWriter interface {
	SetAvailability(ctx context.Context, listingID, actorID string, available bool) (entities.Listing, error)
}

// Board хранит оптимистичное значение только пока запись в полёте, в остальное
// время отдаёт то, что лежит в хранилище.
type Board struct {
	logger *slog.Logger
	reader ListingReader
	writer AvailabilityWriter

	mu      sync.Mutex
	pending map[string]*pendingValue
}

type pendingValue struct {
	value    *optimistic.Value[bool]
	inflight int
}

func NewBoard(logger *slog.Logger, reader ListingReader, writer AvailabilityWriter) *Board {
	return &Board{
		logger:  logger.With(slog.String("component", "storefront")),
		reader:  reader,
		writer:  writer,
		pending: make(map[string]*pendingValue),
	}
}

// Availability текущее видимое значение, включая ещё не подтверждённое.
func (b *Board) Availability(ctx context.Context, listingID string) (bool, error) {
	b.mu.Lock()
	p, ok := b.pending[listingID]
	b.mu.Unlock()
	if ok {
		return p.value.Get(), nil
	}

	listing, err := b.reader.GetListing(ctx, listingID)
	if err != nil {
		return false, err
	}
	return listing.Available, nil
}

// SetAvailability показывает новое значение сразу и пишет его. При ошибке записи
// возвращается значение, которое было видно до вызова.
func (b *Board) SetAvailability(ctx context.Context, listingID, actorID string, available bool) (entities.Listing, error) {
	return b.update(ctx, listingID, actorID, func(bool) bool { return available })
}

// Toggle переключает видимое значение на противоположное.
func (b *Board) Toggle(ctx context.Context, listingID, actorID string) (entities.Listing, error) {
	return b.update(ctx, listingID, actorID, func(current bool) bool { return !current })
}

func (b *Board) update(ctx context.Context, listingID, actorID string, change func(current bool) bool) (entities.Listing, error) {
	p, err := b.acquire(ctx, listingID)
	if err != nil {
		return entities.Listing{}, err
	}
	defer b.release(listingID, p)

	var listing entities.Listing
	err = p.value.Update(ctx, change(p.value.Get()), func(ctx context.Context, next bool) (bool, error) {
		var err error
		listing, err = b.writer.SetAvailability(ctx, listingID, actorID, next)
		return listing.Available, err
	})
	if err != nil {
		b.logger.WarnContext(ctx, "availability change rolled back",
			slog.String("listing_id", listingID), slog.Bool("visible", p.value.Get()), slog.Any("error", err))
		return entities.Listing{}, err
	}
	return listing, nil
}

// acquire берёт значение, над которым уже идёт запись, или заводит новое
// из свежего снимка хранилища.
func (b *Board) acquire(ctx context.Context, listingID string) (*pendingValue, error) {
	b.mu.Lock()
	if p, ok := b.pending[listingID]; ok {
		p.inflight++
		b.mu.Unlock()
		return p, nil
	}
	b.mu.Unlock()

	listing, err := b.reader.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	// пока читали, запись мог начать другой запрос
	p, ok := b.pending[listingID]
	if !ok {
		p = &pendingValue{value: optimistic.New(listing.Available)}
		b.pending[listingID] = p
	}
	p.inflight++
	return p, nil
}

// release убирает значение, когда завершилась последняя запись по товару.
func (b *Board) release(listingID string, p *pendingValue) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.inflight--
	if p.inflight == 0 {
		delete(b.pending, listingID)
	}
}
