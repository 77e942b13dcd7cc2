package legal

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecovolt-backend/internal/entity"
	"ecovolt-backend/internal/models"
)

// ErrArchivedImmutable: archived documents can never be modified again.
var ErrArchivedImmutable = errors.New("archived document is immutable")

type CreateInput struct {
	DocumentType models.LegalDocumentType
	Title        string
	Content      string
	Version      string
	ExpiryDate   *time.Time
	CreatedBy    uint
}

type UpdateInput struct {
	Title      *string
	Content    *string
	Version    *string
	ExpiryDate *time.Time
	ModifiedBy uint
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(in CreateInput) (*models.LegalDocument, error) {
	if !in.DocumentType.Valid() {
		return nil, fmt.Errorf("%w: document_type %q", entity.ErrInvalidEnumValue, in.DocumentType)
	}
	var creator models.User
	if err := entity.MustExist(s.db, &creator, in.CreatedBy); err != nil {
		return nil, err
	}
	if in.Title == "" || in.Content == "" || in.Version == "" {
		return nil, fmt.Errorf("title, content and version are required")
	}

	doc := models.LegalDocument{
		DocumentType: in.DocumentType,
		Title:        in.Title,
		Content:      in.Content,
		Version:      in.Version,
		Status:       models.LegalDocActive,
		ExpiryDate:   in.ExpiryDate,
		CreatedBy:    in.CreatedBy,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) Get(id uint) (*models.LegalDocument, error) {
	var doc models.LegalDocument
	if err := s.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, entity.AsNotFound(err)
	}
	return &doc, nil
}

func (s *Service) List(docType models.LegalDocumentType) ([]models.LegalDocument, error) {
	q := s.db.Order("id ASC")
	if docType != "" {
		if !docType.Valid() {
			return nil, fmt.Errorf("%w: document_type %q", entity.ErrInvalidEnumValue, docType)
		}
		q = q.Where("document_type = ?", docType)
	}
	var docs []models.LegalDocument
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Service) Update(id uint, in UpdateInput) (*models.LegalDocument, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if doc.Status == models.LegalDocArchived {
		return nil, ErrArchivedImmutable
	}

	var modifier models.User
	if err := entity.MustExist(s.db, &modifier, in.ModifiedBy); err != nil {
		return nil, err
	}

	if in.Title != nil {
		doc.Title = *in.Title
	}
	if in.Content != nil {
		doc.Content = *in.Content
	}
	if in.Version != nil {
		doc.Version = *in.Version
	}
	if in.ExpiryDate != nil {
		doc.ExpiryDate = in.ExpiryDate
	}

	now := time.Now()
	doc.LastModifiedBy = &in.ModifiedBy
	doc.LastModifiedAt = &now

	if err := s.db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// Archive freezes the document; any later mutation fails with
// ErrArchivedImmutable.
func (s *Service) Archive(id, modifiedBy uint) (*models.LegalDocument, error) {
	doc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if doc.Status == models.LegalDocArchived {
		return nil, ErrArchivedImmutable
	}

	now := time.Now()
	doc.Status = models.LegalDocArchived
	doc.LastModifiedBy = &modifiedBy
	doc.LastModifiedAt = &now

	if err := s.db.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}
