package middlewares

import (
	"bytes"
	"strings"

	"BEARSTY_server/errors"
	"BEARSTY_server/global"
	"BEARSTY_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// BodyKey is the fiber local holding the parsed JSON object
const BodyKey = "body"

// Rules are the field presence checks of a JSON body
type Rules struct {
	Required   []string
	AtLeastOne []string
}

// AcceptJSON rejects requests whose Accept header excludes JSON responses
func AcceptJSON(c *fiber.Ctx) error {
	if !AcceptsJSON(c.Get(fiber.HeaderAccept)) {
		return errors.HandleNotAcceptableError(c)
	}
	return c.Next()
}

// ContentTypeJSON rejects bodies that are not declared as application/json
func ContentTypeJSON(c *fiber.Ctx) error {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return errors.HandleUnsupportedMediaError(c, "Content-Type must be application/json.")
	}
	return c.Next()
}

// RejectBody rejects any request carrying a body
func RejectBody(c *fiber.Ctx) error {
	if len(c.Body()) > 0 {
		return errors.HandleBadRequestError(c, "Bad Request: request body not allowed for this endpoint.")
	}
	return c.Next()
}

// JSONBody parses the body as a JSON object, applies rules and stores the
// object for ParsedBody
func JSONBody(rules Rules) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Body()
		if len(raw) == 0 {
			return errors.HandleBadRequestError(c, "Bad Request: JSON body required.")
		}
		if !global.JSON.Valid(raw) {
			return errors.HandleBadJsonError(c)
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return errors.HandleBadRequestError(c, "Bad Request: JSON body must be an object.")
		}

		body := make(schemas.Body)
		if err := global.JSON.Unmarshal(trimmed, &body); err != nil {
			return errors.HandleBadJsonError(c)
		}

		var missing []string
		for _, field := range rules.Required {
			if !body.Has(field) {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return errors.HandleBadRequestError(c, "Bad Request: missing required fields: "+strings.Join(missing, ", ")+".")
		}

		if len(rules.AtLeastOne) > 0 && !body.HasAny(rules.AtLeastOne...) {
			return errors.HandleBadRequestError(c, "Bad Request: must include at least one of: "+strings.Join(rules.AtLeastOne, ", ")+".")
		}

		c.Locals(BodyKey, body)
		return c.Next()
	}
}

// ParsedBody returns the object stored by JSONBody
func ParsedBody(c *fiber.Ctx) schemas.Body {
	if body, ok := c.Locals(BodyKey).(schemas.Body); ok {
		return body
	}
	return schemas.Body{}
}
