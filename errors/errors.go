package errors

import (
	"BEARSTY_server/global"
	"BEARSTY_server/schemas"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the fiber local holding the request id
const RequestIDKey = "requestid"

// HandleFatalError handles global error
func HandleFatalError(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

// HandleBasicError handles basic error and logs
func HandleBasicError(err error) bool {
	if err != nil {
		global.InternalLogger.Println(err)
		return true
	}
	return false
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return "-"
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(schemas.ErrorResponse{
		Error: message,
	})
}

// HandleInternalError handles internal errors (things that should never happen in normal circumstances).
// The problem is logged, never returned to the client.
func HandleInternalError(c *fiber.Ctx, problem string, err string) error {
	global.InternalLogger.Println("Request: " + requestID(c) + "; IP: " + c.IP() + "; Problem: " + problem + "; Error: " + err)
	return respond(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// HandleBadRequestError handles bad request errors (client error that is harmless to server and state)
func HandleBadRequestError(c *fiber.Ctx, message string) error {
	global.MonitorLogger.Println("Bad Request; Request: " + requestID(c) + "; Path: " + c.Path() + "; Description: " + message)
	return respond(c, fiber.StatusBadRequest, message)
}

// HandleForbiddenError handles semantically forbidden actions (self reference, duplicate or absent relation)
func HandleForbiddenError(c *fiber.Ctx, message string) error {
	global.MonitorLogger.Println("Forbidden; Request: " + requestID(c) + "; Path: " + c.Path() + "; Description: " + message)
	return respond(c, fiber.StatusForbidden, message)
}

// HandleNotFoundError handles references to entities that do not exist
func HandleNotFoundError(c *fiber.Ctx) error {
	return respond(c, fiber.StatusNotFound, "Not Found")
}

// HandleNotAcceptableError handles Accept headers that exclude JSON
func HandleNotAcceptableError(c *fiber.Ctx) error {
	return respond(c, fiber.StatusNotAcceptable, "Not Acceptable: API supports application/json responses only.")
}

// HandleUnsupportedMediaError handles request bodies of the wrong content type
func HandleUnsupportedMediaError(c *fiber.Ctx, message string) error {
	return respond(c, fiber.StatusUnsupportedMediaType, "Unsupported Media Type: "+message)
}

// HandleTooLargeError handles uploads over the configured limit
func HandleTooLargeError(c *fiber.Ctx, limit int) error {
	return respond(c, fiber.StatusRequestEntityTooLarge, fmt.Sprintf("Payload Too Large: limit is %d bytes.", limit))
}

// HandleConflictError handles writes that kept losing optimistic concurrency races
func HandleConflictError(c *fiber.Ctx, problem string) error {
	global.MonitorLogger.Println("Conflict; Request: " + requestID(c) + "; Path: " + c.Path() + "; Problem: " + problem)
	return respond(c, fiber.StatusConflict, "Conflict: the resource was modified concurrently, retry the request.")
}

// HandleValidatorError handles errors when validating request
func HandleValidatorError(c *fiber.Ctx, err error) error {
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validatorErrs) == 0 {
		return HandleBadRequestError(c, "Bad Request")
	}
	validatorErr := validatorErrs[0]
	return HandleBadRequestError(c, fmt.Sprintf("Bad Request: invalid %s (%s).", validatorErr.Namespace(), validatorErr.Tag()))
}

// HandleBadJsonError handles json request parser errors
func HandleBadJsonError(c *fiber.Ctx) error {
	return HandleBadRequestError(c, "Bad Request: invalid JSON.")
}

// ErrorHandler renders errors escaping the handlers (unmatched routes, framework errors)
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return respond(c, e.Code, e.Message)
	}
	return HandleInternalError(c, "unhandled", err.Error())
}
