package auth

import (
	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/audit"
	"ecovolt-backend/internal/models"
)

type ChangeUserTypeRequest struct {
	UserType string `json:"user_type"`
}

// ChangeUserTypeHandler is the only path that may change a user's type after
// creation. Admin-only, and the change lands in the audit trail.
func ChangeUserTypeHandler(svc *Service, auditSvc *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := CallerID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}

		var body ChangeUserTypeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		newType := models.UserType(body.UserType)
		if !newType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user type")
		}

		var user models.User
		if err := svc.db.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}

		before := user
		user.UserType = newType
		if err := svc.db.Save(&user).Error; err != nil {
			return err
		}

		if err := auditSvc.Record(audit.RecordOptions{
			AdminID:       adminID,
			ChangeType:    models.ChangeUpdate,
			TableAffected: "users",
			RecordID:      user.ID,
			Before:        before,
			After:         user,
		}); err != nil {
			return err
		}
		return c.JSON(user)
	}
}
