package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"broker-service/app/domain"
	"broker-service/app/usecase"

	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	insertErr error
	inserted  []domain.Order
}

func (s *stubOrderRepo) Insert(ctx context.Context, order domain.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, order)
	return nil
}

type publishedEvent struct {
	topic   string
	payload []byte
}

type stubPublisher struct {
	events []publishedEvent
}

func (s *stubPublisher) Publish(ctx context.Context, topic string, payload []byte) {
	s.events = append(s.events, publishedEvent{topic: topic, payload: payload})
}

func buyRequest() domain.BuyOrderRequest {
	market := "NASDAQ"
	price := 10.5
	quantity := 2.0
	return domain.BuyOrderRequest{
		UserID:   "u1",
		Market:   &market,
		Price:    &price,
		Quantity: &quantity,
	}
}

func TestPlaceOrderPersistsAndPublishes(t *testing.T) {
	repo := &stubOrderRepo{}
	publisher := &stubPublisher{}
	svc := usecase.NewOrderUsecase(repo, publisher)

	order, err := svc.PlaceOrder(context.Background(), buyRequest())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	require.Equal(t, order, repo.inserted[0])
	require.NotEmpty(t, order.ID)

	require.Len(t, publisher.events, 1)
	require.Equal(t, domain.TopicLedgerCredit, publisher.events[0].topic)

	var published domain.Order
	require.NoError(t, json.Unmarshal(publisher.events[0].payload, &published))
	require.Equal(t, order, published)
}

func TestPlaceOrderAssignsDistinctIDsPerCall(t *testing.T) {
	repo := &stubOrderRepo{}
	publisher := &stubPublisher{}
	svc := usecase.NewOrderUsecase(repo, publisher)

	first, err := svc.PlaceOrder(context.Background(), buyRequest())
	require.NoError(t, err)
	second, err := svc.PlaceOrder(context.Background(), buyRequest())
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.Len(t, repo.inserted, 2)
	require.Len(t, publisher.events, 2)
}

func TestPlaceOrderInsertFailureSkipsPublish(t *testing.T) {
	repo := &stubOrderRepo{insertErr: errors.New("connection refused")}
	publisher := &stubPublisher{}
	svc := usecase.NewOrderUsecase(repo, publisher)

	_, err := svc.PlaceOrder(context.Background(), buyRequest())
	require.Error(t, err)

	require.Empty(t, repo.inserted)
	require.Empty(t, publisher.events)
}
