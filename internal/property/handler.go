package property

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/audit"
	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreatePropertyRequest struct {
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 string  `json:"address_line2"`
	City         string  `json:"city"`
	Postcode     string  `json:"postcode"`
	PropertyType string  `json:"property_type"`
	RoofSize     *int    `json:"roof_size"`
	RoofProfile  *string `json:"roof_profile"`
}

type UpdatePropertyRequest struct {
	AddressLine1 *string `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         *string `json:"city"`
	Postcode     *string `json:"postcode"`
	PropertyType *string `json:"property_type"`
	RoofSize     *int    `json:"roof_size"`
	RoofProfile  *string `json:"roof_profile"`
}

func mapEntityErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "property not found")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, entity.ErrInvalidEnumValue):
		return fiber.NewError(fiber.StatusBadRequest, "invalid enum value")
	}
	return err
}

func roofProfilePtr(s *string) *models.RoofProfile {
	if s == nil {
		return nil
	}
	p := models.RoofProfile(*s)
	return &p
}

func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		var body CreatePropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		prop, err := svc.Create(CreateInput{
			UserID:       userID,
			AddressLine1: body.AddressLine1,
			AddressLine2: body.AddressLine2,
			City:         body.City,
			Postcode:     body.Postcode,
			PropertyType: body.PropertyType,
			RoofSize:     body.RoofSize,
			RoofProfile:  roofProfilePtr(body.RoofProfile),
		})
		if err != nil {
			return mapEntityErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(prop)
	}
}

func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}
		props, err := svc.ListByOwner(userID)
		if err != nil {
			return err
		}
		return c.JSON(props)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}
		prop, err := svc.Get(uint(id))
		if err != nil {
			return mapEntityErr(err)
		}
		return c.JSON(prop)
	}
}

func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		var body UpdatePropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		prop, err := svc.Update(uint(id), UpdateInput{
			AddressLine1: body.AddressLine1,
			AddressLine2: body.AddressLine2,
			City:         body.City,
			Postcode:     body.Postcode,
			PropertyType: body.PropertyType,
			RoofSize:     body.RoofSize,
			RoofProfile:  roofProfilePtr(body.RoofProfile),
		})
		if err != nil {
			return mapEntityErr(err)
		}
		return c.JSON(prop)
	}
}

// DeleteHandler is admin-only; the deletion is written to the audit trail.
func DeleteHandler(svc *Service, auditSvc *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid property id")
		}

		prop, err := svc.Delete(uint(id))
		if err != nil {
			return mapEntityErr(err)
		}

		if err := auditSvc.Record(audit.RecordOptions{
			AdminID:       adminID,
			ChangeType:    models.ChangeDelete,
			TableAffected: "properties",
			RecordID:      prop.ID,
			Before:        prop,
		}); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
