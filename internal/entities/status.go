package entities

import (
	"fmt"
	"slices"
)

type OrderType string

const (
	OrderTypePurchase       OrderType = "PURCHASE"
	OrderTypeServiceRequest OrderType = "SERVICE_REQUEST"
)

func (t OrderType) Valid() bool {
	_, ok := allowedStatuses[t]
	return ok
}

// Status один словарь статусов на оба типа заказа, допустимость задаётся allowedStatuses.
type Status string

const (
	StatusRequestReceived  Status = "Solicitação Recebida"
	StatusContactRequested Status = "Solicitação de Contato"
	StatusPending          Status = "Pendente"
	StatusConfirmed        Status = "Confirmado"
	StatusPreparing        Status = "Em Preparo"
	StatusOutForDelivery   Status = "Saiu para Entrega"
	StatusDelivered        Status = "Entregue"
	StatusCancelled        Status = "Cancelado"
)

var allowedStatuses = map[OrderType][]Status{
	OrderTypePurchase: {
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	},
	OrderTypeServiceRequest: {
		StatusRequestReceived,
		StatusContactRequested,
		StatusPending,
		StatusConfirmed,
		StatusPreparing,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
	},
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// InitialStatus статус, с которого начинается заказ данного типа.
func (t OrderType) InitialStatus() Status {
	if t == OrderTypeServiceRequest {
		return StatusRequestReceived
	}
	return StatusPending
}

// AllowedStatuses returns a copy of the allow-list for the order type.
func (t OrderType) AllowedStatuses() []Status {
	return slices.Clone(allowedStatuses[t])
}

func (t OrderType) Allows(s Status) bool {
	return slices.Contains(allowedStatuses[t], s)
}

// CanTransition checks a seller-initiated status change. The model is permissive:
// any allowed status is reachable from any non-terminal one.
func CanTransition(t OrderType, from, to Status) error {
	if !t.Allows(to) {
		return fmt.Errorf("%w: %q is not allowed for %s", ErrInvalidTransition, to, t)
	}
	if from == to {
		return nil
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: order is already %q", ErrInvalidTransition, from)
	}
	return nil
}
