package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type PaymentMethod string

// Оплата симулируется, метод сохраняется только для отображения.
const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

type Order struct {
	ID         string
	Type       OrderType
	CustomerID string
	SellerID   string
	StoreID    string

	// Для PURCHASE заполнены Items, для SERVICE_REQUEST - ServiceID и ServiceName
	Items       []Item
	ServiceID   string
	ServiceName string

	TotalAmount   float64
	PaymentMethod PaymentMethod
	Notes         string

	Status               Status
	CreatedAt            time.Time
	LastMessageTimestamp time.Time
	SellerHasUnread      bool
	BuyerHasUnread       bool
	IsUrgent             bool
}

// RoleOf returns the role uid plays in the order, false if uid is not a party.
func (o Order) RoleOf(uid string) (Role, bool) {
	switch uid {
	case "":
		return "", false
	case o.SellerID:
		return RoleSeller, true
	case o.CustomerID:
		return RoleBuyer, true
	}
	return "", false
}

func (o Order) IsParty(uid string) bool {
	_, ok := o.RoleOf(uid)
	return ok
}

func (o Order) HasUnread(role Role) bool {
	if role == RoleSeller {
		return o.SellerHasUnread
	}
	return o.BuyerHasUnread
}

// NewOrder входные данные для создания заказа или заявки на услугу.
type NewOrder struct {
	// Пустой ID генерируется сервисом. Повторная доставка того же ID не создаёт дубликат.
	ID            string
	Type          OrderType
	CustomerID    string
	SellerID      string
	StoreID       string
	Items         []Item
	ServiceID     string
	ServiceName   string
	TotalAmount   float64
	PaymentMethod PaymentMethod
	Note          string
}

func (n NewOrder) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("%w: unknown order type %q", ErrValidation, n.Type)
	}
	if n.CustomerID == "" || n.SellerID == "" {
		return fmt.Errorf("%w: customer and seller are required", ErrValidation)
	}
	if n.CustomerID == n.SellerID {
		return fmt.Errorf("%w: customer and seller must differ", ErrValidation)
	}
	if n.StoreID == "" {
		return fmt.Errorf("%w: store is required", ErrValidation)
	}
	for _, id := range []string{n.ID, n.CustomerID, n.SellerID, n.StoreID} {
		if err := CheckText("id", id); err != nil {
			return err
		}
	}
	if err := checkAmount("total amount", n.TotalAmount); err != nil {
		return err
	}
	if err := checkNote(n.Note); err != nil {
		return err
	}

	switch n.Type {
	case OrderTypePurchase:
		if len(n.Items) == 0 {
			return fmt.Errorf("%w: at least one item is required", ErrValidation)
		}
		for _, it := range n.Items {
			if it.Quantity <= 0 {
				return fmt.Errorf("%w: item quantity must be positive", ErrValidation)
			}
			if err := it.validate(); err != nil {
				return err
			}
		}
		// сумма заказа должна сходиться с позициями с точностью до копейки
		if math.Abs(n.TotalAmount-ItemsTotal(n.Items)) >= 0.005 {
			return fmt.Errorf("%w: total amount %.2f does not match items total %.2f",
				ErrValidation, n.TotalAmount, ItemsTotal(n.Items))
		}
	case OrderTypeServiceRequest:
		if strings.TrimSpace(n.ServiceID) == "" {
			return fmt.Errorf("%w: service is required", ErrValidation)
		}
		if err := CheckText("service id", n.ServiceID); err != nil {
			return err
		}
		if err := CheckText("service name", n.ServiceName); err != nil {
			return err
		}
	}

	switch n.PaymentMethod {
	case "", PaymentPix, PaymentCard, PaymentCash:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, n.PaymentMethod)
	}
	return nil
}

// MaxAmount наибольшая сумма, которую вмещает NUMERIC(12,2).
const MaxAmount = 9_999_999_999.99

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrValidation, field)
	}
	if v > MaxAmount {
		return fmt.Errorf("%w: %s exceeds %.2f", ErrValidation, field, MaxAmount)
	}
	return nil
}

func checkNote(note string) error {
	if err := CheckText("note", note); err != nil {
		return err
	}
	if utf8.RuneCountInString(note) > MaxMessageLength {
		return fmt.Errorf("%w: note is longer than %d characters", ErrValidation, MaxMessageLength)
	}
	return nil
}

func (i Item) validate() error {
	if err := CheckText("listing id", i.ListingID); err != nil {
		return err
	}
	if err := CheckText("item name", i.Name); err != nil {
		return err
	}
	if err := checkAmount("item price", i.UnitPrice); err != nil {
		return err
	}
	for _, a := range i.AddOns {
		if err := CheckText("add-on name", a.Name); err != nil {
			return err
		}
		if err := checkAmount("add-on price", a.Price); err != nil {
			return err
		}
	}
	return nil
}

// Build собирает заказ в начальном состоянии. Время проставляет хранилище.
func (n NewOrder) Build() Order {
	o := Order{
		ID:            n.ID,
		Type:          n.Type,
		CustomerID:    n.CustomerID,
		SellerID:      n.SellerID,
		StoreID:       n.StoreID,
		Items:         n.Items,
		ServiceID:     n.ServiceID,
		ServiceName:   n.ServiceName,
		TotalAmount:   n.TotalAmount,
		PaymentMethod: n.PaymentMethod,
		Notes:         strings.TrimSpace(n.Note),
		Status:        n.Type.InitialStatus(),
	}
	o.SellerHasUnread, o.BuyerHasUnread = CreatedFlags()
	return o
}

// OrderFilter параметры выборки для списков заказов покупателя и продавца.
type OrderFilter struct {
	CustomerID string
	SellerID   string
	StoreID    string
	Status     Status
	Type       OrderType
	UnreadOnly bool
	UrgentOnly bool
	Limit      uint64
	Offset     uint64
}

// UnreadQuery ровно одно из полей должно быть заполнено.
type UnreadQuery struct {
	CustomerID string
	StoreID    string
}
