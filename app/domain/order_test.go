package domain_test

import (
	"testing"

	"broker-service/app/domain"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestNewOrderFromRequest(t *testing.T) {
	req := domain.BuyOrderRequest{
		UserID:   "u1",
		Market:   strPtr("NASDAQ"),
		Price:    f64Ptr(10.5),
		Quantity: f64Ptr(2),
	}

	order, err := domain.NewOrderFromRequest(req)
	require.NoError(t, err)

	require.NotEmpty(t, order.ID)
	require.Equal(t, "u1", order.UserID)
	require.Equal(t, "NASDAQ", order.Market)
	require.Equal(t, 10.5, order.Price)
	require.Equal(t, 2.0, order.Quantity)
}

func TestNewOrderFromRequestAssignsUniqueIDs(t *testing.T) {
	req := domain.BuyOrderRequest{
		UserID:   "u1",
		Market:   strPtr("NASDAQ"),
		Price:    f64Ptr(10.5),
		Quantity: f64Ptr(2),
	}

	first, err := domain.NewOrderFromRequest(req)
	require.NoError(t, err)
	second, err := domain.NewOrderFromRequest(req)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
}
