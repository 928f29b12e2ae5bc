package middleware

import (
	"log"
	"strings"

	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "admin_token"

// SessionRequired is a Fiber middleware gating the admin route group. Every
// request must carry a valid session token (cookie, or Bearer header for API
// clients); absence, malformation and expiry are all treated the same way:
// browser navigations are redirected to the login page, API calls get a 401.
// On success the decoded session is stored in the request locals for the
// remainder of that request only.
func SessionRequired(sessionService *services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return deny(c)
		}

		session, err := sessionService.ValidateToken(token)
		if err != nil {
			// Expired and malformed tokens are both just "not logged in".
			log.Printf("session validation failed: %v", err)
			return deny(c)
		}

		c.Locals("admin_session", session)
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func deny(c *fiber.Ctx) error {
	if strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect("/admin/login")
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Authentication required",
	})
}
