package handler

import (
	"net/url"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

// queryValues keeps every well-formed pair; malformed ones are skipped.
func queryValues(c fiber.Ctx) url.Values {
	values, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	return values
}

func bindBody(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	return nil
}
