package consultation

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateConsultationRequest struct {
	PropertyID       uint   `json:"property_id"`
	ConsultantID     uint   `json:"consultant_id"`
	ConsultationDate string `json:"consultation_date"` // RFC 3339
	Notes            string `json:"notes"`
}

type SetStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "consultation not found")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, entity.ErrInvalidEnumValue):
		return fiber.NewError(fiber.StatusBadRequest, "invalid status value")
	case errors.Is(err, ErrInvalidTransition):
		return fiber.NewError(fiber.StatusConflict, "consultation status cannot change that way")
	}
	return err
}

func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateConsultationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		date, err := time.Parse(time.RFC3339, body.ConsultationDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "consultation_date must be RFC 3339")
		}

		cons, err := svc.Create(CreateInput{
			PropertyID:       body.PropertyID,
			ConsultantID:     body.ConsultantID,
			ConsultationDate: date,
			Notes:            body.Notes,
		})
		if err != nil {
			return mapErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(cons)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid consultation id")
		}
		cons, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(cons)
	}
}

func ListByPropertyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		propID := c.QueryInt("property_id")
		if propID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "property_id query parameter is required")
		}
		out, err := svc.ListByProperty(uint(propID))
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func SetStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid consultation id")
		}

		var body SetStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		cons, err := svc.SetStatus(uint(id), models.ConsultationStatus(body.Status), body.Notes)
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(cons)
	}
}
