package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Kavitha8494/ca/internal/http/middleware"
	"github.com/Kavitha8494/ca/internal/service"
)

// errorPayload defines the standardized error response body for admin and
// infrastructure endpoints.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// The public form endpoints answer in the shape the site's scripts expect:
// {success:true,message} on acceptance, {success:false,errors} on validation
// failure, {success:false,message} on server failure.

func submitAccepted(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func submitRejected(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"errors":  errs,
	})
}

func submitFailed(c *fiber.Ctx, err error) error {
	logInternal(c, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Something went wrong. Please try again later.",
	})
}

// logInternal records the underlying cause of a 500 without exposing it to
// the client.
func logInternal(c *fiber.Ctx, err error) {
	entry := map[string]any{
		"ts":            time.Now().Format(time.RFC3339Nano),
		"level":         "error",
		"request_id":    requestIDFromCtx(c),
		"method":        c.Method(),
		"path":          c.Path(),
		"error_message": err.Error(),
	}
	b, mErr := json.Marshal(entry)
	if mErr != nil {
		log.Printf("failed to marshal error log: %v", mErr)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

// validationErrorsFrom unwraps a *service.ValidationError, if err is one.
func validationErrorsFrom(err error) (map[string]string, bool) {
	if vErr, ok := err.(*service.ValidationError); ok {
		return vErr.Errors, true
	}
	return nil, false
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
