package middleware

import (
	"errors"
	"strings"

	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAdmin verifies the bearer token and resolves it to a live admin
// record, which is attached to the request context for downstream
// handlers. It never mutates state.
func RequireAdmin(adminRepo repository.AdminRepository, tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return c.Status(401).JSON(fiber.Map{
				"status":  "fail",
				"message": "Access token required",
			})
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return c.Status(403).JSON(fiber.Map{
				"status":  "fail",
				"message": "Access token is invalid or expired",
			})
		}

		admin, err := adminRepo.FindByID(claims.AdminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(404).JSON(fiber.Map{
					"status":  "fail",
					"message": "Not found this admin!",
				})
			}
			return c.Status(500).JSON(fiber.Map{
				"status":  "error",
				"message": "Something went wrong",
			})
		}

		c.Locals("admin", admin)
		return c.Next()
	}
}
