package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/cuidja-orders/internal/entities"
	"github.com/SergeyBogomolovv/cuidja-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/cuidja-orders/internal/service/mocks"
	"github.com/SergeyBogomolovv/cuidja-orders/pkg/pubsub"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_Send(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher)

	sentAt := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		senderID     string
		text         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "seller writes, buyer gets notified",
			senderID: "seller-1",
			text:     " Pode sim! ",
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(storedOrder(entities.StatusConfirmed), nil).Once()
				repo.EXPECT().
					InsertMessage(mock.Anything, mock.MatchedBy(func(m entities.Message) bool {
						return m.Text == "Pode sim!" && m.SenderID == "seller-1" && m.OrderID == "order-1"
					})).
					Return(entities.Message{ID: "m-1", OrderID: "order-1", SenderID: "seller-1", Text: "Pode sim!", Timestamp: sentAt}, nil).Once()
				repo.EXPECT().
					UpdateOrder(mock.Anything, "order-1", entities.MessagePatch(entities.RoleSeller, sentAt)).
					Return(storedOrder(entities.StatusConfirmed), nil).Once()
				events.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
						return e.Type == entities.EventMessageSent && e.MessageID == "m-1" && e.ActorID == "seller-1"
					})).
					Return(nil).Once()
			},
		},
		{
			name:         "blank text",
			senderID:     "buyer-1",
			text:         "   ",
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "text too long",
			senderID:     "buyer-1",
			text:         strings.Repeat("a", entities.MaxMessageLength+1),
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "NUL in text",
			senderID:     "buyer-1",
			text:         "oi\x00",
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:     "rejected by postgres is not retried",
			senderID: "buyer-1",
			text:     "oi",
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockEventPublisher) {
				repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(storedOrder(entities.StatusConfirmed), nil).Once()
				repo.EXPECT().
					InsertMessage(mock.Anything, mock.Anything).
					Return(entities.Message{}, &pq.Error{Code: "22021", Message: "invalid byte sequence for encoding \"UTF8\": 0x00"}).Once()
			},
			wantErr: entities.ErrValidation,
		},
		{
			name:     "stranger",
			senderID: "someone",
			text:     "oi",
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockEventPublisher) {
				repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(storedOrder(entities.StatusConfirmed), nil).Once()
			},
			wantErr: entities.ErrPermission,
		},
		{
			name:     "retried with the same message id",
			senderID: "buyer-1",
			text:     "oi",
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				var firstID string
				repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(storedOrder(entities.StatusConfirmed), nil).Twice()
				repo.EXPECT().
					InsertMessage(mock.Anything, mock.Anything).
					Run(func(_ context.Context, m entities.Message) { firstID = m.ID }).
					Return(entities.Message{}, errors.New("connection reset")).Once()
				repo.EXPECT().
					InsertMessage(mock.Anything, mock.MatchedBy(func(m entities.Message) bool { return m.ID == firstID })).
					Return(entities.Message{ID: "m-1", Timestamp: sentAt}, nil).Once()
				repo.EXPECT().
					UpdateOrder(mock.Anything, "order-1", entities.MessagePatch(entities.RoleBuyer, sentAt)).
					Return(storedOrder(entities.StatusConfirmed), nil).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			events := mocks.NewMockEventPublisher(t)
			hub := pubsub.NewHub()
			defer hub.Close()

			tc.mockBehavior(repo, events)

			svc := service.NewChatService(discardLogger(), newTxMock(t), repo, hub, events)

			msg, err := svc.Send(context.Background(), "order-1", tc.senderID, tc.text)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "m-1", msg.ID)
		})
	}
}

func TestChatService_History(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	hub := pubsub.NewHub()
	defer hub.Close()

	orders := service.NewOrderService(discardLogger(), passTx{}, repo, staticStores{}, hub, nopEvents{})
	chat := service.NewChatService(discardLogger(), passTx{}, repo, hub, nopEvents{})

	_, err := orders.Create(ctx, purchase("order-1"))
	require.NoError(t, err)
	_, err = chat.Send(ctx, "order-1", "buyer-1", "oi")
	require.NoError(t, err)

	history, err := chat.History(ctx, "order-1", "seller-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "oi", history[0].Text)

	_, err = chat.History(ctx, "order-1", "someone")
	assert.ErrorIs(t, err, entities.ErrPermission)

	_, err = chat.Send(ctx, "missing", "buyer-1", "oi")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

// Подписка отдаёт сообщения в порядке добавления, время не убывает.
func TestChatService_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := newMemRepo()
	hub := pubsub.NewHub()
	defer hub.Close()

	orders := service.NewOrderService(discardLogger(), passTx{}, repo, staticStores{}, hub, nopEvents{})
	chat := service.NewChatService(discardLogger(), passTx{}, repo, hub, nopEvents{})

	n := purchase("order-1")
	n.Note = "primeira"
	_, err := orders.Create(ctx, n)
	require.NoError(t, err)

	received := make(chan entities.Message, 100)
	unsubscribe, err := chat.Subscribe(ctx, "order-1", "seller-1", func(m entities.Message) {
		received <- m
	})
	require.NoError(t, err)
	defer unsubscribe()

	const total = 20
	for i := 1; i < total; i++ {
		sender := "buyer-1"
		if i%2 == 0 {
			sender = "seller-1"
		}
		_, err := chat.Send(ctx, "order-1", sender, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	var got []entities.Message
	require.Eventually(t, func() bool {
		for {
			select {
			case m := <-received:
				got = append(got, m)
			default:
				return len(got) == total
			}
		}
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "primeira", got[0].Text)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, fmt.Sprintf("msg %d", i), got[i].Text)
		assert.False(t, got[i].Timestamp.Before(got[i-1].Timestamp))
		assert.Greater(t, got[i].Seq, got[i-1].Seq)
	}

	_, err = chat.Subscribe(ctx, "order-1", "someone", func(entities.Message) {})
	assert.ErrorIs(t, err, entities.ErrPermission)
}
