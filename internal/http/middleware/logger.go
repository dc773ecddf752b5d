package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger logs each HTTP request as one JSON object per line on stdout.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout)
}

// LoggerWithWriter is Logger with an explicit destination, used by tests to
// capture output.
func LoggerWithWriter(w io.Writer) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		_ = enc.Encode(map[string]any{
			"ts":         start.UTC().Format(time.RFC3339Nano),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})

		return err
	}
}
