package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRouter(app *fiber.App, orderHandler *OrderHandler) {
	app.Post("/buy", orderHandler.Buy)
}
