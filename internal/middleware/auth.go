package middleware

import (
	"wordquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TeacherPasswordHeader carries the teacher password on write requests
const TeacherPasswordHeader = "X-Teacher-Password"

// TeacherAuth rejects write requests without the teacher password.
// Read requests and a disabled auth service pass through.
func TeacherAuth(authService *service.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authService.Enabled() {
			return c.Next()
		}

		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		if !authService.CheckPassword(c.Get(TeacherPasswordHeader)) {
			logger.Warn("Rejected write request without valid teacher password",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return fiber.ErrUnauthorized
		}

		return c.Next()
	}
}
