package handler

import (
	"log/slog"

	"broker-service/app/domain"
	"broker-service/app/handler/api/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderUsecase domain.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderUsecase domain.OrderService, validator *validator.Validate) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// Buy handles POST /buy. An undecodable or invalid body is rejected with an
// empty 400 before anything touches storage; a persistence failure maps to a
// server error with no order payload.
func (h *OrderHandler) Buy(c *fiber.Ctx) error {
	var req domain.BuyOrderRequest
	if err := c.BodyParser(&req); err != nil {
		slog.WarnContext(c.Context(), "[orderHandler] Buy", "bodyParser", err)
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}

	if err := h.validator.Struct(req); err != nil {
		slog.WarnContext(c.Context(), "[orderHandler] Buy", "validation", err, "userId", req.UserID)
		return c.Status(fiber.StatusBadRequest).Send(nil)
	}

	order, err := h.orderUsecase.PlaceOrder(c.Context(), req)
	if err != nil {
		slog.WarnContext(c.Context(), "[orderHandler] Buy", "usecase", err)
		status, resp := response.FromError(err)
		return c.Status(status).JSON(resp)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}
