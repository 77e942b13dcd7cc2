package legal

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"ecovolt-backend/internal/audit"
	"ecovolt-backend/internal/auth"
	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

type CreateDocumentRequest struct {
	DocumentType string  `json:"document_type"`
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Version      string  `json:"version"`
	ExpiryDate   *string `json:"expiry_date"` // RFC 3339
}

type UpdateDocumentRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Version    *string `json:"version"`
	ExpiryDate *string `json:"expiry_date"`
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "document not found")
	case errors.Is(err, entity.ErrInvalidEnumValue):
		return fiber.NewError(fiber.StatusBadRequest, "invalid document type")
	case errors.Is(err, entity.ErrDanglingReference):
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, ErrArchivedImmutable):
		return fiber.NewError(fiber.StatusConflict, "archived documents cannot be modified")
	}
	return err
}

func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "expiry_date must be RFC 3339")
	}
	return &t, nil
}

func CreateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		var body CreateDocumentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		expiry, err := parseExpiry(body.ExpiryDate)
		if err != nil {
			return err
		}

		doc, err := svc.Create(CreateInput{
			DocumentType: models.LegalDocumentType(body.DocumentType),
			Title:        body.Title,
			Content:      body.Content,
			Version:      body.Version,
			ExpiryDate:   expiry,
			CreatedBy:    userID,
		})
		if err != nil {
			return mapErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(models.LegalDocumentType(c.Query("type")))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(docs)
	}
}

func GetHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
		}
		doc, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(doc)
	}
}

func UpdateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CallerID(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
		}

		var body UpdateDocumentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		expiry, err := parseExpiry(body.ExpiryDate)
		if err != nil {
			return err
		}

		doc, err := svc.Update(uint(id), UpdateInput{
			Title:      body.Title,
			Content:    body.Content,
			Version:    body.Version,
			ExpiryDate: expiry,
			ModifiedBy: userID,
		})
		if err != nil {
			return mapErr(err)
		}
		return c.JSON(doc)
	}
}

// ArchiveHandler is admin-only; archiving is written to the audit trail.
func ArchiveHandler(svc *Service, auditSvc *audit.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := auth.CallerID(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid document id")
		}

		before, err := svc.Get(uint(id))
		if err != nil {
			return mapErr(err)
		}
		doc, err := svc.Archive(uint(id), adminID)
		if err != nil {
			return mapErr(err)
		}

		if err := auditSvc.Record(audit.RecordOptions{
			AdminID:       adminID,
			ChangeType:    models.ChangeUpdate,
			TableAffected: "legal_documents",
			RecordID:      doc.ID,
			Before:        before,
			After:         doc,
		}); err != nil {
			return err
		}
		return c.JSON(doc)
	}
}
