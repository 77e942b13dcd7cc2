package employee

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/audit"
	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateEmployeeRequest struct {
	UserID       uint   `json:"user_id"`
	Position     string `json:"position"`
	ManagerID    *uint  `json:"manager_id"`
	AccessRights string `json:"access_rights"`
	Status       string `json:"status"`
}

type UpdateEmployeeRequest struct {
	Position     *string `json:"position"`
	ManagerID    *uint   `json:"manager_id"`
	ClearManager bool    `json:"clear_manager"`
	AccessRights *string `json:"access_rights"`
	Status       *string `json:"status"`
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "employee not found")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, entity.ErrInvalidEnumValue):
		return fiber.NewError(fiber.StatusBadRequest, "invalid status value")
	case errors.Is(err, ErrManagerCycle):
		return fiber.NewError(fiber.StatusConflict, "manager assignment would create a cycle")
	}
	return err
}

func CreateHandler(svc *Service, auditSvc *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		emp, err := svc.Create(CreateInput{
			UserID:       body.UserID,
			Position:     body.Position,
			ManagerID:    body.ManagerID,
			AccessRights: body.AccessRights,
			Status:       models.EmployeeStatus(body.Status),
		})
		if err != nil {
			return mapErr(err)
		}

		if err := auditSvc.Record(audit.RecordOptions{
			AdminID:       adminID,
			ChangeType:    models.ChangeCreate,
			TableAffected: "employees",
			RecordID:      emp.ID,
			After:         emp,
		}); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(emp)
	}
}

func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		emps, err := svc.List()
		if err != nil {
			return err
		}
		return c.JSON(emps)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}
		emp, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(emp)
	}
}

func UpdateHandler(svc *Service, auditSvc *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.CallerID(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		before, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}

		var status *models.EmployeeStatus
		if body.Status != nil {
			s := models.EmployeeStatus(*body.Status)
			status = &s
		}

		emp, err := svc.Update(uint(id), UpdateInput{
			Position:     body.Position,
			ManagerID:    body.ManagerID,
			ClearManager: body.ClearManager,
			AccessRights: body.AccessRights,
			Status:       status,
		})
		if err != nil {
			return mapErr(err)
		}

		if err := auditSvc.Record(audit.RecordOptions{
			AdminID:       adminID,
			ChangeType:    models.ChangeUpdate,
			TableAffected: "employees",
			RecordID:      emp.ID,
			Before:        before,
			After:         emp,
		}); err != nil {
			return err
		}
		return c.JSON(emp)
	}
}
