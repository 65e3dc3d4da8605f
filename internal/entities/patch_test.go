package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/stretchr/testify/assert"
)

func raised(p entities.OrderPatch) int {
	n := 0
	if p.SellerHasUnread != nil && *p.SellerHasUnread {
		n++
	}
	if p.BuyerHasUnread != nil && *p.BuyerHasUnread {
		n++
	}
	return n
}

func cleared(p entities.OrderPatch) []entities.Role {
	var roles []entities.Role
	if p.SellerHasUnread != nil && !*p.SellerHasUnread {
		roles = append(roles, entities.RoleSeller)
	}
	if p.BuyerHasUnread != nil && !*p.BuyerHasUnread {
		roles = append(roles, entities.RoleBuyer)
	}
	return roles
}

func TestPatches_RaiseAtMostOneFlag(t *testing.T) {
	now := time.Now()
	both := entities.Order{SellerHasUnread: true, BuyerHasUnread: true}

	patches := map[string]entities.OrderPatch{
		"transition":     entities.TransitionPatch(entities.StatusConfirmed),
		"seller message": entities.MessagePatch(entities.RoleSeller, now),
		"buyer message":  entities.MessagePatch(entities.RoleBuyer, now),
		"seller read":    entities.ReadPatch(both, entities.RoleSeller),
		"buyer read":     entities.ReadPatch(both, entities.RoleBuyer),
		"urgent":         entities.UrgencyPatch(true),
	}

	for name, p := range patches {
		t.Run(name, func(t *testing.T) {
			assert.LessOrEqual(t, raised(p), 1)
		})
	}

	seller, buyer := entities.CreatedFlags()
	assert.True(t, seller)
	assert.False(t, buyer)
}

func TestPatches_OnlyReaderClearsOwnFlag(t *testing.T) {
	both := entities.Order{SellerHasUnread: true, BuyerHasUnread: true}

	assert.Equal(t, []entities.Role{entities.RoleSeller}, cleared(entities.ReadPatch(both, entities.RoleSeller)))
	assert.Equal(t, []entities.Role{entities.RoleBuyer}, cleared(entities.ReadPatch(both, entities.RoleBuyer)))

	for _, p := range []entities.OrderPatch{
		entities.TransitionPatch(entities.StatusCancelled),
		entities.MessagePatch(entities.RoleSeller, time.Now()),
		entities.MessagePatch(entities.RoleBuyer, time.Now()),
		entities.UrgencyPatch(false),
	} {
		assert.Empty(t, cleared(p))
	}
}

func TestReadPatch_AlreadyClear(t *testing.T) {
	p := entities.ReadPatch(entities.Order{}, entities.RoleSeller)
	assert.True(t, p.IsEmpty())
}

func TestOrderPatch_Apply(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		Status:               entities.StatusPending,
		LastMessageTimestamp: base,
		SellerHasUnread:      true,
	}

	t.Run("transition notifies buyer", func(t *testing.T) {
		got := entities.TransitionPatch(entities.StatusConfirmed).Apply(order, base.Add(time.Minute))
		assert.Equal(t, entities.StatusConfirmed, got.Status)
		assert.True(t, got.BuyerHasUnread)
		assert.True(t, got.SellerHasUnread)
		assert.Equal(t, base.Add(time.Minute), got.LastMessageTimestamp)
	})

	t.Run("message from buyer", func(t *testing.T) {
		o := order
		o.SellerHasUnread = false
		got := entities.MessagePatch(entities.RoleBuyer, base.Add(time.Second)).Apply(o, base.Add(time.Hour))
		assert.True(t, got.SellerHasUnread)
		assert.False(t, got.BuyerHasUnread)
		assert.Equal(t, base.Add(time.Second), got.LastMessageTimestamp)
	})

	t.Run("activity never moves back", func(t *testing.T) {
		got := entities.MessagePatch(entities.RoleSeller, base.Add(-time.Hour)).Apply(order, base)
		assert.Equal(t, base, got.LastMessageTimestamp)
	})

	t.Run("urgency keeps flags and activity", func(t *testing.T) {
		got := entities.UrgencyPatch(true).Apply(order, base.Add(time.Hour))
		assert.True(t, got.IsUrgent)
		assert.Equal(t, order.SellerHasUnread, got.SellerHasUnread)
		assert.Equal(t, order.BuyerHasUnread, got.BuyerHasUnread)
		assert.Equal(t, base, got.LastMessageTimestamp)
	})
}
