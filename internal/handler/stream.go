package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// StreamOrder живой снимок заказа.
// @Summary      Поток изменений заказа
// @Description  Server-Sent Events: событие order с текущим снимком сразу и после каждого изменения
// @Tags         orders
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/stream [get]
func (h *HTTPHandler) StreamOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	serveStream(h, w, r, "order",
		func(ctx context.Context, emit func(entities.Order)) (func(), error) {
			return h.orders.SubscribeOrder(ctx, orderID, uid, emit)
		},
		func(o entities.Order) any { return OrderEntityToJSON(o, uid) },
	)
}

// StreamMessages история чата и затем новые сообщения.
// @Summary      Поток сообщений заказа
// @Description  Server-Sent Events: событие message на каждое сообщение, сначала вся история по возрастанию
// @Tags         chat
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Message
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/messages/stream [get]
func (h *HTTPHandler) StreamMessages(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	serveStream(h, w, r, "message",
		func(ctx context.Context, emit func(entities.Message)) (func(), error) {
			return h.chat.Subscribe(ctx, orderID, uid, emit)
		},
		func(m entities.Message) any { return MessageEntityToJSON(m) },
	)
}

// StreamNotifications живой бейдж непрочитанного.
// @Summary      Поток бейджа непрочитанного
// @Description  Server-Sent Events: событие unread с текущим значением и при каждом его изменении
// @Tags         notifications
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        role  query  string  true  "buyer или seller"
// @Success      200  {object}  UnreadResponse
// @Router       /notifications/stream [get]
func (h *HTTPHandler) StreamNotifications(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	role, ok := h.role(w, r)
	if !ok {
		return
	}

	serveStream(h, w, r, "unread",
		func(ctx context.Context, emit func(bool)) (func(), error) {
			return h.notifications.Subscribe(ctx, uid, role, emit)
		},
		func(v bool) any { return UnreadResponse{HasUnread: v} },
	)
}

// serveStream подписывается до отправки заголовков, чтобы ошибки доступа ушли обычным ответом.
// Значения доставляются в порядке получения, медленный клиент тормозит только свою подписку.
func serveStream[T any](
	h *HTTPHandler,
	w http.ResponseWriter,
	r *http.Request,
	event string,
	subscribe func(ctx context.Context, emit func(T)) (func(), error),
	render func(T) any,
) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates := make(chan T, 16)
	unsubscribe, err := subscribe(ctx, func(v T) {
		select {
		case updates <- v:
		case <-ctx.Done():
		}
	})
	if err != nil {
		h.writeServiceError(w, r, "failed to subscribe", err)
		return
	}
	defer unsubscribe()

	flusher, ok := utils.PrepareSSE(w)
	if !ok {
		utils.WriteError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	liveStreams.WithLabelValues(event).Inc()
	defer liveStreams.WithLabelValues(event).Dec()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case v := <-updates:
			if err := utils.WriteSSE(w, flusher, event, render(v)); err != nil {
				h.logger.DebugContext(ctx, "stream closed", slog.String("event", event), slog.Any("error", err))
				return
			}
		case <-heartbeat.C:
			if err := utils.WriteSSEPing(w, flusher); err != nil {
				return
			}
		}
	}
}
