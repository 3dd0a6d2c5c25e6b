package handler

import (
	"errors"

	"go-catalog-admin/internal/service"
	"go-catalog-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	SecretKey string `json:"secretKey" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles admin registration, gated by the operator secret.
// POST /auth/register/admin
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, 400, statusFail, "Invalid request body")
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	admin, err := h.authService.Register(req.SecretKey, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadSecret), errors.Is(err, service.ErrUsernameTaken):
			return respondMessage(c, 400, statusFail, err.Error())
		default:
			return respondInternal(c)
		}
	}

	return respondData(c, 201, fiber.Map{"admin": admin.ToResponse()})
}

// Login authenticates an admin and issues an access token.
// POST /auth/login/admin
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, 400, statusFail, "Invalid request body")
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	accessToken, admin, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return respondMessage(c, 400, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondData(c, 200, fiber.Map{
		"token": accessToken,
		"admin": admin.ToResponse(),
	})
}
