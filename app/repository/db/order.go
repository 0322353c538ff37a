package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"broker-service/app/domain"
)

type orderRepository struct {
	conn *sql.DB
}

func NewOrderRepository(conn *sql.DB) domain.OrderRepository {
	return &orderRepository{conn}
}

// Insert writes the order exactly once. There are no conflict semantics: a
// duplicate id is a constraint violation surfaced as a persistence error.
func (r *orderRepository) Insert(ctx context.Context, order domain.Order) error {
	query := `INSERT INTO orders (id, user_id, market, price, quantity) VALUES ($1, $2, $3, $4, $5)`

	res, err := r.conn.ExecContext(ctx, query,
		order.ID, order.UserID, order.Market, order.Price, order.Quantity)
	if err != nil {
		slog.ErrorContext(ctx, "[orderRepository] Insert", "execContext", err)
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		slog.ErrorContext(ctx, "[orderRepository] Insert", "rowsAffected", err)
		return err
	}

	if rowsAffected == 0 {
		slog.ErrorContext(ctx, "[orderRepository] Insert", "noRowsAffected", "no rows were inserted")
		return fmt.Errorf("no rows were inserted")
	}

	slog.InfoContext(ctx, "[orderRepository] Insert", "orderId", order.ID)
	return nil
}
