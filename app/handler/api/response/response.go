package response

import (
	"broker-service/app/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func Error(err error) *Response {
	return &Response{
		Success: false,
		Error:   err.Error(),
	}
}

// FromError maps a pipeline failure to its HTTP response. Client errors are
// rejected with an empty 400 before the pipeline runs, so everything that
// reaches this point is a persistence-side failure, surfaced as a server
// error without leaking the failure detail.
func FromError(err error) (int, *Response) {
	return fiber.StatusInternalServerError, Error(domain.ErrInternal)
}
