package audit

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/changes?table=properties&limit=50
func ListChangesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		changes, err := svc.List(c.Query("table"), c.QueryInt("limit"))
		if err != nil {
			return err
		}
		return c.JSON(changes)
	}
}
