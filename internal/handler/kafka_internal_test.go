package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	mocks "github.com/SergeyBogomolovv/cuidja-orders/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeDLQ struct {
	written []kafka.Message
	err     error
}

func (w *fakeDLQ) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

const validCheckout = `{"customer_id":"buyer-1","type":"PURCHASE","seller_id":"seller-1","store_id":"store-1",
	"payment_method":"cash","items":[{"name":"Pão de queijo","quantity":3,"unit_price":2.5}]}`

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		dlqErr       error
		mockBehavior func(c *mocks.MockOrderCreator)
		wantDLQ      int
		wantCommit   int
	}{
		{
			name:  "order created",
			value: validCheckout,
			mockBehavior: func(c *mocks.MockOrderCreator) {
				c.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(n entities.NewOrder) bool {
						return n.CustomerID == "buyer-1" && n.ID != "" && n.TotalAmount == 7.5
					})).
					Return(entities.Order{ID: "order-1"}, nil).Once()
			},
			wantCommit: 1,
		},
		{
			name:         "broken json",
			value:        `{"customer_id":`,
			mockBehavior: func(c *mocks.MockOrderCreator) {},
			wantDLQ:      1,
			wantCommit:   1,
		},
		{
			name:         "no customer",
			value:        `{"type":"SERVICE_REQUEST","seller_id":"seller-1","store_id":"store-1","service_id":"s-1"}`,
			mockBehavior: func(c *mocks.MockOrderCreator) {},
			wantDLQ:      1,
			wantCommit:   1,
		},
		{
			name:  "rejected by service",
			value: validCheckout,
			mockBehavior: func(c *mocks.MockOrderCreator) {
				c.EXPECT().Create(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrStoreNotFound).Once()
			},
			wantDLQ:    1,
			wantCommit: 1,
		},
		{
			name:   "dlq unavailable",
			value:  validCheckout,
			dlqErr: errors.New("broker down"),
			mockBehavior: func(c *mocks.MockOrderCreator) {
				c.EXPECT().Create(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrTransientIO).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockOrderCreator(t)
			tc.mockBehavior(creator)

			reader := &fakeReader{messages: []kafka.Message{{Topic: "checkouts", Partition: 0, Offset: 7, Value: []byte(tc.value)}}}
			dlq := &fakeDLQ{err: tc.dlqErr}

			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, creator)
			h.Consume(context.Background())

			assert.Len(t, dlq.written, tc.wantDLQ)
			assert.Len(t, reader.committed, tc.wantCommit)
			for _, m := range dlq.written {
				assert.Equal(t, "checkouts-dlq", m.Topic)
			}

			assert.NoError(t, h.Close())
			assert.True(t, reader.closed)
		})
	}
}

// Повторная доставка одного сообщения даёт тот же ID заказа.
func TestKafkaHandler_RedeliveryKeepsOrderID(t *testing.T) {
	creator := mocks.NewMockOrderCreator(t)

	var ids []string
	creator.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n entities.NewOrder) { ids = append(ids, n.ID) }).
		Return(entities.Order{}, nil).Times(3)

	m := kafka.Message{Topic: "checkouts", Partition: 2, Offset: 41, Value: []byte(validCheckout)}
	other := kafka.Message{Topic: "checkouts", Partition: 2, Offset: 42, Value: []byte(validCheckout)}
	reader := &fakeReader{messages: []kafka.Message{m, m, other}}

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, &fakeDLQ{}, creator)
	h.Consume(context.Background())

	if assert.Len(t, ids, 3) {
		assert.Equal(t, ids[0], ids[1])
		assert.NotEqual(t, ids[0], ids[2])
	}
}

func TestKafkaHandler_ExplicitIDWins(t *testing.T) {
	creator := mocks.NewMockOrderCreator(t)
	creator.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(n entities.NewOrder) bool {
			return n.ID == "7f9c4d6e-3b1a-4c2d-9e8f-0a1b2c3d4e5f"
		})).
		Return(entities.Order{}, nil).Once()

	value := `{"id":"7f9c4d6e-3b1a-4c2d-9e8f-0a1b2c3d4e5f","customer_id":"buyer-1","type":"SERVICE_REQUEST",
		"seller_id":"seller-1","store_id":"store-1","service_id":"s-1"}`
	reader := &fakeReader{messages: []kafka.Message{{Topic: "checkouts", Value: []byte(value)}}}

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, &fakeDLQ{}, creator)
	h.Consume(context.Background())
}
