package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// AdminHandler exposes admin account endpoints.
type AdminHandler struct {
	auth *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// Create handles POST /admin/create.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("firstName, lastName, username, email, password required")
	}
	if len(req.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	_, err := h.auth.CreateAdmin(c.UserContext(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Admin created successfully"})
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	_, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password, domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

// CheckEmail handles POST /admin/check-email.
func (h *AdminHandler) CheckEmail(c *fiber.Ctx) error {
	var req dto.CheckEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	exists, err := h.auth.CheckEmail(c.UserContext(), req.Email, domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// ResetPassword handles POST /admin/reset-password.
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("email and newPassword required")
	}

	if err := h.auth.ResetPassword(c.UserContext(), req.Email, req.NewPassword, domain.RoleAdmin); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}
