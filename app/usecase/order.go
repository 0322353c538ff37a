package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"broker-service/app/domain"
	"broker-service/pkg/ctxutil"
)

type orderUsecase struct {
	orderRepo domain.OrderRepository
	events    domain.EventPublisher
}

func NewOrderUsecase(orderRepo domain.OrderRepository, events domain.EventPublisher) domain.OrderService {
	return &orderUsecase{orderRepo, events}
}

// PlaceOrder maps a validated request to a new order, persists it, and
// publishes the persisted order to the ledger-credit topic. The publish is
// fire-and-forget: the caller gets the order back as soon as the insert
// succeeds, and the notification outcome never reaches the caller. A
// persistence failure produces zero publishes.
func (u *orderUsecase) PlaceOrder(ctx context.Context, req domain.BuyOrderRequest) (domain.Order, error) {
	order, err := domain.NewOrderFromRequest(req)
	if err != nil {
		slog.ErrorContext(ctx, "[orderUsecase] PlaceOrder", "mapRequest", err)
		return domain.Order{}, err
	}

	if err := u.orderRepo.Insert(ctx, order); err != nil {
		slog.WarnContext(ctx, "[orderUsecase] PlaceOrder", "insert", err)
		return domain.Order{}, err
	}

	payload, err := json.Marshal(order)
	if err != nil {
		slog.ErrorContext(ctx, "[orderUsecase] PlaceOrder", "marshalEvent", err)
		return order, nil
	}

	// The notification outlives the request. Hand the bus a fresh context
	// carrying only the request id, so handlers never touch the recycled
	// request context.
	eventCtx := ctxutil.WithRequestID(context.Background(), ctxutil.GetRequestID(ctx))
	u.events.Publish(eventCtx, domain.TopicLedgerCredit, payload)

	slog.InfoContext(ctx, "[orderUsecase] PlaceOrder", "orderId", order.ID)
	return order, nil
}
