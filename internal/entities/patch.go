package entities

import "time"

// OrderPatch частичное обновление заказа. nil - поле не меняется.
//
// Каждый патч, построенный функциями ниже, выставляет в true не больше одного
// флага непрочитанного, а сбрасывает флаг только ReadPatch и только флаг читателя.
type OrderPatch struct {
	Status          *Status
	SellerHasUnread *bool
	BuyerHasUnread  *bool
	IsUrgent        *bool

	// LastActivity точное время активности (время сообщения).
	LastActivity *time.Time
	// TouchNow - время активности проставляет хранилище.
	TouchNow bool
}

func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil && p.SellerHasUnread == nil && p.BuyerHasUnread == nil &&
		p.IsUrgent == nil && p.LastActivity == nil && !p.TouchNow
}

// Apply применяет патч к копии заказа. now используется при TouchNow.
func (p OrderPatch) Apply(o Order, now time.Time) Order {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.SellerHasUnread != nil {
		o.SellerHasUnread = *p.SellerHasUnread
	}
	if p.BuyerHasUnread != nil {
		o.BuyerHasUnread = *p.BuyerHasUnread
	}
	if p.IsUrgent != nil {
		o.IsUrgent = *p.IsUrgent
	}
	if p.LastActivity != nil && p.LastActivity.After(o.LastMessageTimestamp) {
		o.LastMessageTimestamp = *p.LastActivity
	}
	if p.TouchNow && now.After(o.LastMessageTimestamp) {
		o.LastMessageTimestamp = now
	}
	return o
}

// CreatedFlags flags of a fresh order: the seller has something to look at.
func CreatedFlags() (sellerHasUnread, buyerHasUnread bool) {
	return true, false
}

// TransitionPatch статус меняет только продавец, поэтому уведомляется покупатель.
func TransitionPatch(to Status) OrderPatch {
	return OrderPatch{
		Status:         &to,
		BuyerHasUnread: ptr(true),
		TouchNow:       true,
	}
}

// MessagePatch raises the unread flag of the counterpart of sender.
func MessagePatch(sender Role, at time.Time) OrderPatch {
	p := OrderPatch{LastActivity: &at}
	if sender == RoleSeller {
		p.BuyerHasUnread = ptr(true)
	} else {
		p.SellerHasUnread = ptr(true)
	}
	return p
}

// ReadPatch clears the viewer's own flag. Returns an empty patch if it is already clear.
func ReadPatch(o Order, viewer Role) OrderPatch {
	if !o.HasUnread(viewer) {
		return OrderPatch{}
	}
	if viewer == RoleSeller {
		return OrderPatch{SellerHasUnread: ptr(false)}
	}
	return OrderPatch{BuyerHasUnread: ptr(false)}
}

func UrgencyPatch(urgent bool) OrderPatch {
	return OrderPatch{IsUrgent: &urgent}
}

func ptr[T any](v T) *T {
	return &v
}
