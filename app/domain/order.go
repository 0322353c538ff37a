package domain

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type Order struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Market   string  `json:"market"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// BuyOrderRequest is the decoded POST /buy payload. Market, price and
// quantity are pointers so that an absent field is distinguishable from a
// zero value.
type BuyOrderRequest struct {
	UserID   string   `json:"userId" validate:"required,notblank"`
	Market   *string  `json:"market" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gt=0"`
	Quantity *float64 `json:"quantity" validate:"required,gt=0"`
}

// NewOrderFromRequest maps a validated buy request to an Order with a fresh
// identifier. The order is immutable after this point.
func NewOrderFromRequest(req BuyOrderRequest) (Order, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Order{}, fmt.Errorf("%w: generate order id: %v", ErrInternal, err)
	}

	return Order{
		ID:       id.String(),
		UserID:   req.UserID,
		Market:   *req.Market,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}, nil
}

type OrderRepository interface {
	Insert(ctx context.Context, order Order) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req BuyOrderRequest) (Order, error)
}
