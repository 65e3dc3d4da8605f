package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/cuidja-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	orders        *mocks.MockOrderService
	chat          *mocks.MockChatService
	notifications *mocks.MockNotificationService
	listings      *mocks.MockListingService
}

func newRouter(t *testing.T, uid string) (http.Handler, deps) {
	d := deps{
		orders:        mocks.NewMockOrderService(t),
		chat:          mocks.NewMockChatService(t),
		notifications: mocks.NewMockNotificationService(t),
		listings:      mocks.NewMockListingService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, d.orders, d.chat, d.notifications, d.listings)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid != "" {
				r = r.WithContext(middleware.WithUserID(r.Context(), uid))
			}
			next.ServeHTTP(w, r)
		})
	})
	h.Init(r)
	return r, d
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

var createdAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func storedOrder() entities.Order {
	return entities.Order{
		ID:                   "order-1",
		Type:                 entities.OrderTypePurchase,
		CustomerID:           "buyer-1",
		SellerID:             "seller-1",
		StoreID:              "store-1",
		Items:                []entities.Item{{Name: "Açaí", Quantity: 2, UnitPrice: 20}},
		TotalAmount:          40,
		PaymentMethod:        entities.PaymentPix,
		Status:               entities.StatusPending,
		CreatedAt:            createdAt,
		LastMessageTimestamp: createdAt,
		IsUrgent:             true,
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "purchase",
			body: `{"type":"PURCHASE","seller_id":"seller-1","store_id":"store-1","payment_method":"pix",
				"items":[{"name":"Açaí","quantity":2,"unit_price":15,"add_ons":[{"name":"Granola","price":5}]}]}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(n entities.NewOrder) bool {
						// сумма считается по позициям, если клиент её не прислал
						return n.CustomerID == "buyer-1" && n.TotalAmount == 40 && len(n.Items[0].AddOns) == 1
					})).
					Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"order-1"`,
		},
		{
			name: "service request",
			body: `{"type":"SERVICE_REQUEST","seller_id":"seller-1","store_id":"store-1","service_id":"svc-1","note":"Amanhã às 10h?"}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(n entities.NewOrder) bool {
						return n.Type == entities.OrderTypeServiceRequest && n.Note == "Amanhã às 10h?"
					})).
					Return(entities.Order{ID: "order-2", Type: entities.OrderTypeServiceRequest}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"order-2"`,
		},
		{
			name:         "purchase without items",
			body:         `{"type":"PURCHASE","seller_id":"seller-1","store_id":"store-1"}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items"`,
		},
		{
			name:         "unknown payment method",
			body:         `{"type":"SERVICE_REQUEST","seller_id":"seller-1","store_id":"store-1","service_id":"svc-1","payment_method":"boleto"}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod"`,
		},
		{
			name:         "malformed body",
			body:         `{"type":`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "store not found",
			body: `{"type":"SERVICE_REQUEST","seller_id":"seller-1","store_id":"store-9","service_id":"svc-1"}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					Create(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrStoreNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"store not found"`,
		},
		{
			name: "storage unavailable",
			body: `{"type":"SERVICE_REQUEST","seller_id":"seller-1","store_id":"store-1","service_id":"svc-1"}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					Create(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrTransientIO).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"service temporarily unavailable, try again"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "buyer-1")
			tc.mockBehavior(d)

			status, body := do(t, r, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		uid          string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "seller sees urgency",
			uid:  "seller-1",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().Get(mock.Anything, "order-1", "seller-1").Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"is_urgent":true`,
		},
		{
			name: "buyer",
			uid:  "buyer-1",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().Get(mock.Anything, "order-1", "buyer-1").Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Pendente"`,
		},
		{
			name: "not a party",
			uid:  "stranger",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().Get(mock.Anything, "order-1", "stranger").Return(entities.Order{}, entities.ErrPermission).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name: "not found",
			uid:  "buyer-1",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().Get(mock.Anything, "order-1", "buyer-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "internal error",
			uid:  "buyer-1",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().Get(mock.Anything, "order-1", "buyer-1").Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "anonymous",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, tc.uid)
			tc.mockBehavior(d)

			status, body := do(t, r, http.MethodGet, "/orders/order-1", "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_BuyerNeverSeesUrgency(t *testing.T) {
	r, d := newRouter(t, "buyer-1")
	d.orders.EXPECT().Get(mock.Anything, "order-1", "buyer-1").Return(storedOrder(), nil).Once()

	status, body := do(t, r, http.MethodGet, "/orders/order-1", "")
	require.Equal(t, http.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotContains(t, resp, "is_urgent")
	assert.Equal(t, "order-1", resp["id"])
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "buyer",
			query: "?role=buyer&status=Pendente&unread=true",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					ListForBuyer(mock.Anything, "user-1", entities.OrderFilter{Status: entities.StatusPending, UnreadOnly: true}).
					Return([]entities.Order{storedOrder()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"order-1"`,
		},
		{
			name:  "seller with paging",
			query: "?role=seller&urgent=1&limit=20&offset=40&type=SERVICE_REQUEST",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					ListForSeller(mock.Anything, "user-1", entities.OrderFilter{
						Type:       entities.OrderTypeServiceRequest,
						UrgentOnly: true,
						Limit:      20,
						Offset:     40,
					}).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:         "missing role",
			query:        "",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"role must be buyer or seller"`,
		},
		{
			name:         "bad limit",
			query:        "?role=buyer&limit=1000",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"limit must be between 0 and 200"`,
		},
		{
			name:  "status unknown to the service",
			query: "?role=buyer&status=Perdido",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					ListForBuyer(mock.Anything, "user-1", mock.Anything).
					Return(nil, entities.ErrValidation).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"validation failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "user-1")
			tc.mockBehavior(d)

			status, body := do(t, r, http.MethodGet, "/orders"+tc.query, "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_TransitionStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "confirmed",
			body: `{"status":"Confirmado"}`,
			mockBehavior: func(d deps) {
				o := storedOrder()
				o.Status = entities.StatusConfirmed
				d.orders.EXPECT().
					Transition(mock.Anything, "order-1", "seller-1", entities.StatusConfirmed).
					Return(o, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Confirmado"`,
		},
		{
			name: "out of terminal state",
			body: `{"status":"Pendente"}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					Transition(mock.Anything, "order-1", "seller-1", entities.StatusPending).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"invalid status transition"`,
		},
		{
			name:         "empty status",
			body:         `{}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "seller-1")
			tc.mockBehavior(d)

			status, body := do(t, r, http.MethodPatch, "/orders/order-1/status", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_MarkRead(t *testing.T) {
	r, d := newRouter(t, "buyer-1")
	d.orders.EXPECT().MarkRead(mock.Anything, "order-1", "buyer-1").Return(nil).Once()

	status, _ := do(t, r, http.MethodPost, "/orders/order-1/read", "")
	assert.Equal(t, http.StatusNoContent, status)
}

func TestHTTPHandler_SetUrgent(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
	}{
		{
			name: "clear",
			body: `{"urgent":false}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().SetUrgent(mock.Anything, "order-1", "seller-1", false).Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing flag",
			body:         `{}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "buyer",
			body: `{"urgent":true}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().SetUrgent(mock.Anything, "order-1", "seller-1", true).Return(entities.Order{}, entities.ErrPermission).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "seller-1")
			tc.mockBehavior(d)

			status, _ := do(t, r, http.MethodPatch, "/orders/order-1/urgent", tc.body)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestHTTPHandler_Messages(t *testing.T) {
	sent := entities.Message{ID: "m-1", OrderID: "order-1", Seq: 1, SenderID: "buyer-1", Text: "Olá", Timestamp: createdAt}

	t.Run("send", func(t *testing.T) {
		r, d := newRouter(t, "buyer-1")
		d.chat.EXPECT().Send(mock.Anything, "order-1", "buyer-1", "Olá").Return(sent, nil).Once()

		status, body := do(t, r, http.MethodPost, "/orders/order-1/messages", `{"text":"Olá"}`)
		assert.Equal(t, http.StatusCreated, status)
		assert.Contains(t, body, `"seq":1`)
	})

	t.Run("blank text", func(t *testing.T) {
		r, d := newRouter(t, "buyer-1")
		d.chat.EXPECT().Send(mock.Anything, "order-1", "buyer-1", "   ").
			Return(entities.Message{}, entities.ErrValidation).Once()

		status, _ := do(t, r, http.MethodPost, "/orders/order-1/messages", `{"text":"   "}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("history", func(t *testing.T) {
		r, d := newRouter(t, "seller-1")
		d.chat.EXPECT().History(mock.Anything, "order-1", "seller-1").Return([]entities.Message{sent}, nil).Once()

		status, body := do(t, r, http.MethodGet, "/orders/order-1/messages", "")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"text":"Olá"`)
	})

	t.Run("history for stranger", func(t *testing.T) {
		r, d := newRouter(t, "stranger")
		d.chat.EXPECT().History(mock.Anything, "order-1", "stranger").Return(nil, entities.ErrPermission).Once()

		status, _ := do(t, r, http.MethodGet, "/orders/order-1/messages", "")
		assert.Equal(t, http.StatusForbidden, status)
	})
}

func TestHTTPHandler_HasUnread(t *testing.T) {
	r, d := newRouter(t, "seller-1")
	d.notifications.EXPECT().HasUnread(mock.Anything, "seller-1", entities.RoleSeller).Return(true, nil).Once()

	status, body := do(t, r, http.MethodGet, "/notifications/unread?role=seller", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"has_unread":true}`, body)
}

func TestHTTPHandler_Availability(t *testing.T) {
	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/listings/l-1/availability",
			mockBehavior: func(d deps) {
				d.listings.EXPECT().Availability(mock.Anything, "l-1").Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"available":true`,
		},
		{
			name:   "hide",
			method: http.MethodPatch,
			target: "/listings/l-1/availability",
			body:   `{"available":false}`,
			mockBehavior: func(d deps) {
				d.listings.EXPECT().SetAvailability(mock.Anything, "l-1", "seller-1", false).
					Return(entities.Listing{ID: "l-1", StoreID: "store-1", Available: false}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"available":false`,
		},
		{
			name:   "write failed",
			method: http.MethodPatch,
			target: "/listings/l-1/availability",
			body:   `{"available":false}`,
			mockBehavior: func(d deps) {
				d.listings.EXPECT().SetAvailability(mock.Anything, "l-1", "seller-1", false).
					Return(entities.Listing{}, entities.ErrTransientIO).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "toggle by stranger",
			method: http.MethodPost,
			target: "/listings/l-1/availability/toggle",
			mockBehavior: func(d deps) {
				d.listings.EXPECT().Toggle(mock.Anything, "l-1", "seller-1").
					Return(entities.Listing{}, entities.ErrPermission).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t, "seller-1")
			tc.mockBehavior(d)

			status, body := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
