package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/travel-api/internal/api/dto"
	"github.com/spec-kit/travel-api/internal/domain"
	"github.com/spec-kit/travel-api/internal/service"
	apperrors "github.com/spec-kit/travel-api/pkg/util"
)

// UsersHandler exposes registration, login and account management for
// end-users.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.FirstName == "" || req.LastName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("firstName, lastName, username, email, password required")
	}

	_, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	user, token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password, domain.RoleUser)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

// GoogleLogin handles POST /users/google-login.
func (h *UsersHandler) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.IDToken == "" {
		return apperrors.NewValidationError("idToken required")
	}

	user, token, _, err := h.auth.LoginWithGoogle(c.UserContext(), req.IDToken)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

// CheckEmail handles POST /users/check-email.
func (h *UsersHandler) CheckEmail(c *fiber.Ctx) error {
	var req dto.CheckEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	exists, err := h.auth.CheckEmail(c.UserContext(), req.Email, domain.RoleUser)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// ResetPassword handles POST /users/reset-password.
func (h *UsersHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("email and newPassword required")
	}

	if err := h.auth.ResetPassword(c.UserContext(), req.Email, req.NewPassword, domain.RoleUser); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}

// List handles GET /users (admin only).
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(out)
}

// Get handles GET /user/:id (admin only).
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Update handles PUT /users/:id (admin only).
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, err := h.users.Update(c.UserContext(), c.Params("id"), service.UserUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}

	if user.Banned() {
		return c.JSON(fiber.Map{"message": "User banned successfully", "user": dto.NewUserResponse(user)})
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:id (admin only).
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
