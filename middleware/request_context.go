// middleware/request_context.go
package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger records one line per request with the acting user name
// when the client forwards it. There is no auth here — identity is a bare
// display name and nothing in the API trusts it beyond attribution.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		userName := c.Get("X-User-Name")
		if userName != "" {
			c.Locals("user_name", userName)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if userName != "" {
			log.Printf("👤 [REQ] %s %s → %d (%s) | user=%s",
				c.Method(), c.Path(), status, time.Since(start).Round(time.Millisecond), userName)
		} else {
			log.Printf("[REQ] %s %s → %d (%s)",
				c.Method(), c.Path(), status, time.Since(start).Round(time.Millisecond))
		}
		return err
	}
}
