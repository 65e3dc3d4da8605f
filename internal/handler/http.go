package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/middleware"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

//go:generate mockery

type OrderService interface {
	Create(ctx context.Context, n entities.NewOrder) (entities.Order, error)
	Transition(ctx context.Context, orderID, actorID string, to entities.Status) (entities.Order, error)
	MarkRead(ctx context.Context, orderID, viewerID string) error
	SetUrgent(ctx context.Context, orderID, actorID string, urgent bool) (entities.Order, error)
	Get(ctx context.Context, orderID, viewerID string) (entities.Order, error)
	ListForBuyer(ctx context.Context, customerID string, f entities.OrderFilter) ([]entities.Order, error)
	ListForSeller(ctx context.Context, sellerID string, f entities.OrderFilter) ([]entities.Order, error)
	SubscribeOrder(ctx context.Context, orderID, viewerID string, onChange func(entities.Order)) (func(), error)
}

type ChatService interface {
	Send(ctx context.Context, orderID, senderID, text string) (entities.Message, error)
	History(ctx context.Context, orderID, viewerID string) ([]entities.Message, error)
	Subscribe(ctx context.Context, orderID, viewerID string, onMessage func(entities.Message)) (func(), error)
}

type NotificationService interface {
	HasUnread(ctx context.Context, viewerID string, role entities.Role) (bool, error)
	Subscribe(ctx context.Context, viewerID string, role entities.Role, onChange func(bool)) (func(), error)
}

type ListingService interface {
	Availability(ctx context.Context, listingID string) (bool, error)
	SetAvailability(ctx context.Context, listingID, actorID string, available bool) (entities.Listing, error)
	Toggle(ctx context.Context, listingID, actorID string) (entities.Listing, error)
}

const heartbeatInterval = 25 * time.Second

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	orders        OrderService
	chat          ChatService
	notifications NotificationService
	listings      ListingService
}

func NewHTTPHandler(
	logger *slog.Logger,
	orders OrderService,
	chat ChatService,
	notifications NotificationService,
	listings ListingService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		orders:        orders,
		chat:          chat,
		notifications: notifications,
		listings:      listings,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.instrument("create_order", h.CreateOrder))
		r.Get("/", h.instrument("list_orders", h.ListOrders))

		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.instrument("get_order", h.GetOrder))
			r.Patch("/status", h.instrument("transition_status", h.TransitionStatus))
			r.Post("/read", h.instrument("mark_read", h.MarkRead))
			r.Patch("/urgent", h.instrument("set_urgent", h.SetUrgent))
			r.Get("/stream", h.StreamOrder)

			r.Get("/messages", h.instrument("list_messages", h.ListMessages))
			r.Post("/messages", h.instrument("send_message", h.SendMessage))
			r.Get("/messages/stream", h.StreamMessages)
		})
	})

	r.Get("/notifications/unread", h.instrument("has_unread", h.HasUnread))
	r.Get("/notifications/stream", h.StreamNotifications)

	r.Route("/listings/{listing_id}/availability", func(r chi.Router) {
		r.Get("/", h.instrument("get_availability", h.GetAvailability))
		r.Patch("/", h.instrument("set_availability", h.SetAvailability))
		r.Post("/toggle", h.instrument("toggle_availability", h.ToggleAvailability))
	})
}

// CreateOrder создаёт заказ от имени текущего пользователя.
// @Summary      Создать заказ
// @Description  Создаёт заказ товаров (PURCHASE) или заявку на услугу (SERVICE_REQUEST). Комментарий становится первым сообщением чата.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateOrderRequest  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Магазин не найден"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Create(ctx, req.ToEntity(uid))
	if err != nil {
		h.writeServiceError(w, r, "failed to create order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order, uid), http.StatusCreated)
}

// ListOrders список заказов покупателя или продавца.
// @Summary      Список заказов
// @Description  Заказы текущего пользователя в роли покупателя или продавца, последние по активности сверху
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  true   "buyer или seller"
// @Param        status  query     string  false  "Статус"
// @Param        type    query     string  false  "PURCHASE или SERVICE_REQUEST"
// @Param        unread  query     bool    false  "Только с непрочитанным"
// @Param        urgent  query     bool    false  "Только срочные (для продавца)"
// @Param        limit   query     int     false  "Размер страницы"
// @Param        offset  query     int     false  "Смещение"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	role, ok := h.role(w, r)
	if !ok {
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var orders []entities.Order
	if role == entities.RoleSeller {
		orders, err = h.orders.ListForSeller(ctx, uid, filter)
	} else {
		orders, err = h.orders.ListForBuyer(ctx, uid, filter)
	}
	if err != nil {
		h.writeServiceError(w, r, "failed to list orders", err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders, uid), http.StatusOK)
}

// GetOrder возвращает заказ участнику.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Get(ctx, chi.URLParam(r, "order_id"), uid)
	if err != nil {
		h.writeServiceError(w, r, "failed to get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order, uid), http.StatusOK)
}

// TransitionStatus меняет статус заказа.
// @Summary      Сменить статус
// @Description  Доступно только продавцу. Из Entregue и Cancelado выйти нельзя.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string         true  "ID заказа"
// @Param        request   body      StatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Не продавец"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) TransitionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Transition(ctx, chi.URLParam(r, "order_id"), uid, entities.Status(req.Status))
	if err != nil {
		h.writeServiceError(w, r, "failed to change status", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order, uid), http.StatusOK)
}

// MarkRead отмечает заказ прочитанным текущим участником.
// @Summary      Отметить прочитанным
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path  string  true  "ID заказа"
// @Success      204
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/read [post]
func (h *HTTPHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.orders.MarkRead(ctx, chi.URLParam(r, "order_id"), uid); err != nil {
		h.writeServiceError(w, r, "failed to mark order read", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetUrgent помечает заказ срочным.
// @Summary      Срочность заказа
// @Description  Доступно только продавцу, покупатель флаг не видит
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string         true  "ID заказа"
// @Param        request   body      UrgentRequest  true  "Флаг"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/urgent [patch]
func (h *HTTPHandler) SetUrgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req UrgentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.SetUrgent(ctx, chi.URLParam(r, "order_id"), uid, *req.Urgent)
	if err != nil {
		h.writeServiceError(w, r, "failed to set urgency", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order, uid), http.StatusOK)
}

// ListMessages история чата заказа.
// @Summary      Сообщения заказа
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {array}   Message
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/messages [get]
func (h *HTTPHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	messages, err := h.chat.History(ctx, chi.URLParam(r, "order_id"), uid)
	if err != nil {
		h.writeServiceError(w, r, "failed to get messages", err)
		return
	}
	utils.WriteJSON(w, MessagesEntityToJSON(messages), http.StatusOK)
}

// SendMessage отправляет сообщение в чат заказа.
// @Summary      Отправить сообщение
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string          true  "ID заказа"
// @Param        request   body      MessageRequest  true  "Сообщение"
// @Success      201  {object}  Message
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/messages [post]
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	msg, err := h.chat.Send(ctx, chi.URLParam(r, "order_id"), uid, req.Text)
	if err != nil {
		h.writeServiceError(w, r, "failed to send message", err)
		return
	}
	utils.WriteJSON(w, MessageEntityToJSON(msg), http.StatusCreated)
}

// HasUnread есть ли у пользователя непрочитанные заказы.
// @Summary      Бейдж непрочитанного
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  true  "buyer или seller"
// @Success      200  {object}  UnreadResponse
// @Router       /notifications/unread [get]
func (h *HTTPHandler) HasUnread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}
	role, ok := h.role(w, r)
	if !ok {
		return
	}

	unread, err := h.notifications.HasUnread(ctx, uid, role)
	if err != nil {
		h.writeServiceError(w, r, "failed to check unread", err)
		return
	}
	utils.WriteJSON(w, UnreadResponse{HasUnread: unread}, http.StatusOK)
}

// GetAvailability видимая доступность товара или услуги.
// @Summary      Доступность позиции
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        listing_id  path  string  true  "ID позиции"
// @Success      200  {object}  Listing
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /listings/{listing_id}/availability [get]
func (h *HTTPHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listing_id")

	available, err := h.listings.Availability(r.Context(), listingID)
	if err != nil {
		h.writeServiceError(w, r, "failed to get availability", err)
		return
	}
	utils.WriteJSON(w, Listing{ID: listingID, Available: available}, http.StatusOK)
}

// SetAvailability включает или скрывает позицию магазина.
// @Summary      Изменить доступность
// @Description  Доступно только владельцу магазина. При ошибке записи видимое значение откатывается.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        listing_id  path      string               true  "ID позиции"
// @Param        request     body      AvailabilityRequest  true  "Доступность"
// @Success      200  {object}  Listing
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /listings/{listing_id}/availability [patch]
func (h *HTTPHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req AvailabilityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	listing, err := h.listings.SetAvailability(ctx, chi.URLParam(r, "listing_id"), uid, *req.Available)
	if err != nil {
		h.writeServiceError(w, r, "failed to set availability", err)
		return
	}
	utils.WriteJSON(w, ListingEntityToJSON(listing), http.StatusOK)
}

// ToggleAvailability переключает доступность позиции.
// @Summary      Переключить доступность
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        listing_id  path  string  true  "ID позиции"
// @Success      200  {object}  Listing
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /listings/{listing_id}/availability/toggle [post]
func (h *HTTPHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uid, ok := h.userID(w, r)
	if !ok {
		return
	}

	listing, err := h.listings.Toggle(ctx, chi.URLParam(r, "listing_id"), uid)
	if err != nil {
		h.writeServiceError(w, r, "failed to toggle availability", err)
		return
	}
	utils.WriteJSON(w, ListingEntityToJSON(listing), http.StatusOK)
}

func (h *HTTPHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid := middleware.UserID(r.Context())
	if uid == "" {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return uid, true
}

func (h *HTTPHandler) role(w http.ResponseWriter, r *http.Request) (entities.Role, bool) {
	role := r.URL.Query().Get("role")
	if err := h.validate.Var(role, "required,oneof=buyer seller"); err != nil {
		utils.WriteError(w, "role must be buyer or seller", http.StatusBadRequest)
		return "", false
	}
	return entities.Role(role), true
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	q := r.URL.Query()
	f := entities.OrderFilter{
		Status: entities.Status(q.Get("status")),
		Type:   entities.OrderType(q.Get("type")),
	}

	var err error
	if v := q.Get("unread"); v != "" {
		if f.UnreadOnly, err = strconv.ParseBool(v); err != nil {
			return f, errors.New("unread must be a boolean")
		}
	}
	if v := q.Get("urgent"); v != "" {
		if f.UrgentOnly, err = strconv.ParseBool(v); err != nil {
			return f, errors.New("urgent must be a boolean")
		}
	}
	if v := q.Get("limit"); v != "" {
		if f.Limit, err = strconv.ParseUint(v, 10, 64); err != nil || f.Limit > 200 {
			return f, errors.New("limit must be between 0 and 200")
		}
	}
	if v := q.Get("offset"); v != "" {
		if f.Offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return f, errors.New("offset must be a non-negative integer")
		}
	}
	return f, nil
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPermission):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrTransientIO):
		h.logger.WarnContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, "service temporarily unavailable, try again", http.StatusServiceUnavailable)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// instrument считает операции по итоговому коду ответа.
func (h *HTTPHandler) instrument(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		operationsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
		operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
