package serverutils

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

const InvalidJSONMessage = "Invalid JSON"

// ParseBody decodes the request body as JSON whatever the Content-Type.
// An empty body decodes as an empty object.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(ctx.Body())
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return NewValidationError("", InvalidJSONMessage)
	}
	return nil
}
