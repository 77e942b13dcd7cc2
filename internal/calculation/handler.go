package calculation

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/entity"
)

type RecordRequest struct {
	PropertyID uint    `json:"property_id"`
	Value      float64 `json:"value"`
	Date       string  `json:"date"` // RFC 3339, optional
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNegativeValue):
		return fiber.NewError(fiber.StatusBadRequest, "value must not be negative")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	}
	return err
}

func parseInput(c *fiber.Ctx) (RecordInput, error) {
	userID, err := auth.CallerID(c)
	if err != nil {
		return RecordInput{}, err
	}

	var body RecordRequest
	if err := c.BodyParser(&body); err != nil {
		return RecordInput{}, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	in := RecordInput{UserID: userID, PropertyID: body.PropertyID, Value: body.Value}
	if body.Date != "" {
		d, err := time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return RecordInput{}, fiber.NewError(fiber.StatusBadRequest, "date must be RFC 3339")
		}
		in.Date = d
	}
	return in, nil
}

func RecordEnergyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseInput(c)
		if err != nil {
			return err
		}
		calc, err := svc.RecordEnergy(in)
		if err != nil {
			return mapErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(calc)
	}
}

func RecordCarbonHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := parseInput(c)
		if err != nil {
			return err
		}
		calc, err := svc.RecordCarbon(in)
		if err != nil {
			return mapErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(calc)
	}
}

func ListEnergyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		propID := c.QueryInt("property_id")
		if propID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "property_id query parameter is required")
		}
		out, err := svc.ListEnergyByProperty(uint(propID))
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

func ListCarbonHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		propID := c.QueryInt("property_id")
		if propID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "property_id query parameter is required")
		}
		out, err := svc.ListCarbonByProperty(uint(propID))
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}
