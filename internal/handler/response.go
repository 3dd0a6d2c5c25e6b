package handler

import "github.com/gofiber/fiber/v2"

// Envelope statuses. "fail" covers expected rejections (validation, auth,
// missing entities); "error" covers unexpected failures.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

func respondData(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status": statusSuccess,
		"data":   data,
	})
}

func respondMessage(c *fiber.Ctx, code int, status, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"message": message,
	})
}

func respondMessageData(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  statusSuccess,
		"message": message,
		"data":    data,
	})
}

// respondValidation returns the full list of violations, not just the
// first.
func respondValidation(c *fiber.Ctx, errs []string) error {
	return c.Status(400).JSON(fiber.Map{
		"status":  statusFail,
		"message": "Validation error",
		"errors":  errs,
	})
}

func respondInternal(c *fiber.Ctx) error {
	return respondMessage(c, 500, statusError, "Something went wrong")
}
