package ticket

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateTicketRequest struct {
	Category    string `json:"category"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateTicketRequest struct {
	AssignedTo *uint   `json:"assigned_to"`
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "ticket not found")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, entity.ErrInvalidEnumValue):
		return fiber.NewError(fiber.StatusBadRequest, "invalid enum value")
	}
	return err
}

func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		var body CreateTicketRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		t, err := svc.Create(CreateInput{
			UserID:      userID,
			Category:    models.TicketCategory(body.Category),
			Subject:     body.Subject,
			Description: body.Description,
			Priority:    models.TicketPriority(body.Priority),
		})
		if err != nil {
			return mapErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

func ListMineHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}
		out, err := svc.ListByUser(userID)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid ticket id")
		}
		t, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(t)
	}
}

// UpdateHandler: staff-only workflow endpoint (assignment, status, priority).
func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid ticket id")
		}

		var body UpdateTicketRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		var status *models.TicketStatus
		if body.Status != nil {
			s := models.TicketStatus(*body.Status)
			status = &s
		}
		var priority *models.TicketPriority
		if body.Priority != nil {
			p := models.TicketPriority(*body.Priority)
			priority = &p
		}

		t, err := svc.Update(uint(id), UpdateInput{
			AssignedTo: body.AssignedTo,
			Status:     status,
			Priority:   priority,
		})
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(t)
	}
}
