package newsletter

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type SubscribeRequest struct {
	Email       string          `json:"email"`
	Preferences json.RawMessage `json:"preferences"`
}

type UnsubscribeRequest struct {
	Email string `json:"email"`
}

func SubscribeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SubscribeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sub, err := svc.Subscribe(body.Email, datatypes.JSON(body.Preferences))
		if err != nil {
			if errors.Is(err, ErrAlreadySubscribed) {
				return fiber.NewError(fiber.StatusConflict, "email already subscribed")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(sub)
	}
}

func UnsubscribeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UnsubscribeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sub, err := svc.Unsubscribe(body.Email)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "subscription not found")
			}
			return err
		}
		return c.JSON(sub)
	}
}

// ListHandler is admin-only.
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subs, err := svc.List(models.SubscriptionStatus(c.Query("status")))
		if err != nil {
			if errors.Is(err, entity.ErrInvalidEnumValue) {
				return fiber.NewError(fiber.StatusBadRequest, "invalid status filter")
			}
			return err
		}
		return c.JSON(subs)
	}
}
