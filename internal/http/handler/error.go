package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/http/middleware"
	"docvault/internal/service"
	"docvault/internal/storage"
)

// errorPayload defines the standardized error response body.
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

// writeError writes a standardized JSON error response without leaking
// internal details.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError translates the closed service/storage error set into an
// HTTP response. Kinds map one-to-one onto statuses; nothing is collapsed
// into a generic failure except genuinely unknown errors.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrOrgIDRequired),
		errors.Is(err, service.ErrFileNameRequired),
		errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, storage.ErrPermission):
		return writeError(c, fiber.StatusForbidden, "PERMISSION_DENIED", "storage permission denied")
	case errors.Is(err, storage.ErrAuth):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_AUTH", "storage authentication failed")
	case errors.Is(err, storage.ErrTransport):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "storage unavailable")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors escaping the handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
