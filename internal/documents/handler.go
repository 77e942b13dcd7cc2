package documents

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ecovolt-backend/internal/auth"
)

func UploadHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "multipart 'file' field is required")
		}

		f, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "uploaded file could not be opened")
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "uploaded file could not be read")
		}

		docID, err := store.Upload(ownerID, fileHeader.Filename, raw)
		if err != nil {
			if errors.Is(err, ErrUnsupportedFormat) {
				return fiber.NewError(fiber.StatusBadRequest, "only PDF files are allowed")
			}
			if errors.Is(err, ErrConversionFailed) {
				return fiber.NewError(fiber.StatusInternalServerError, "error processing PDF file")
			}
			return err
		}

		zap.L().Info("document uploaded",
			zap.Uint("owner_id", ownerID),
			zap.String("doc_id", docID),
			zap.Int("size", len(raw)))

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"pdf_id": docID})
	}
}

func ListHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		entries, err := store.List(ownerID)
		if err != nil {
			return err
		}
		return c.JSON(entries)
	}
}

func FetchHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		doc, err := store.Fetch(ownerID, c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "PDF not found")
			}
			return err
		}
		return c.JSON(fiber.Map{
			"pdf_id":   doc.DocID,
			"filename": doc.Filename,
			"content":  doc.Content,
		})
	}
}

// ExtractTextHandler decodes a stored PDF and returns its plain text.
func ExtractTextHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := auth.CallerID(c)
		if err != nil {
			return err
		}

		doc, raw, err := store.FetchRaw(ownerID, c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "PDF not found")
			}
			if errors.Is(err, ErrConversionFailed) {
				return fiber.NewError(fiber.StatusInternalServerError, "stored content could not be decoded")
			}
			return err
		}

		text, err := ExtractPDFText(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "text could not be extracted from PDF")
		}

		return c.JSON(fiber.Map{
			"pdf_id":   doc.DocID,
			"filename": doc.Filename,
			"text":     text,
		})
	}
}
