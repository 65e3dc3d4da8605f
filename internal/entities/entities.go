package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"
)

type Store struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

type ListingKind string

const (
	ListingProduct ListingKind = "product"
	ListingService ListingKind = "service"
)

type Listing struct {
	ID        string
	StoreID   string
	Kind      ListingKind
	Name      string
	Price     float64
	Available bool
	UpdatedAt time.Time
}

type AddOn struct {
	Name  string
	Price float64
}

type Item struct {
	ListingID string
	Name      string
	Quantity  int
	UnitPrice float64
	AddOns    []AddOn
}

// Total цена позиции с учётом выбранных дополнений.
func (i Item) Total() float64 {
	unit := i.UnitPrice
	for _, a := range i.AddOns {
		unit += a.Price
	}
	return unit * float64(i.Quantity)
}

func ItemsTotal(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Total()
	}
	return total
}

var (
	ErrValidation        = errors.New("validation failed")
	ErrPermission        = errors.New("permission denied")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTransientIO       = errors.New("transient io failure")

	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)
	ErrStoreNotFound   = fmt.Errorf("store %w", ErrNotFound)
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrInvalidStore    = errors.New("invalid store data")
)

// IsDomainError сообщает, что ошибка не связана с I/O и повторять операцию бессмысленно.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrPermission) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidTransition)
}

func (s *Store) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Store) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStore, err)
	}
	return nil
}

func init() {
	gob.Register(Store{})
}
