package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ecovolt-backend/internal/models"
)

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	UserType  string `json:"user_type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
		}

		// Admin accounts are never self-service.
		userType := models.UserType(body.UserType)
		if userType == models.UserTypeAdmin {
			return fiber.NewError(fiber.StatusForbidden, "cannot self-register as admin")
		}

		user, err := svc.Register(RegisterInput{
			Email:     body.Email,
			Password:  body.Password,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Phone:     body.Phone,
			UserType:  userType,
		})
		if err != nil {
			if errors.Is(err, ErrDuplicateUser) {
				return fiber.NewError(fiber.StatusConflict, "email already registered")
			}
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusBadRequest, "invalid registration data")
			}
			return err
		}

		zap.L().Info("user registered", zap.Uint("user_id", user.ID))
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"user_type": user.UserType,
		})
	}
}

func LoginHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		token, err := svc.Authenticate(body.Email, body.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
			}
			return err
		}

		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

func MeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CallerID(c)
		if err != nil {
			return err
		}

		var user models.User
		if err := svc.db.First(&user, "id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "user not found")
		}
		return c.JSON(user)
	}
}
