package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/models"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserTypeKey = "user_type"
)

// Middleware resolves the bearer token and stores the caller identity in locals.
func Middleware(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing Authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header must be 'Bearer <token>'")
		}

		user, err := svc.Resolve(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return fiber.NewError(fiber.StatusUnauthorized, "token has expired")
			case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrUnknownUser):
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			default:
				return err
			}
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUserTypeKey, user.UserType)
		return c.Next()
	}
}

// RequireType restricts a route group to the given user types.
func RequireType(allowed ...models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, ok := c.Locals(CtxUserTypeKey).(models.UserType)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "caller type unavailable")
		}
		for _, t := range allowed {
			if t == userType {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "insufficient permissions")
	}
}

// CallerID reads the resolved user id from locals.
func CallerID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "caller identity unavailable")
	}
	return id, nil
}
