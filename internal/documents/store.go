package documents

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ecovolt-backend/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrConversionFailed  = errors.New("content conversion failed")
	ErrNotFound          = errors.New("document not found")
)

type ListEntry struct {
	DocID    string `json:"doc_id"`
	Filename string `json:"filename"`
}

// Store keeps uploaded documents scoped to their owner. Document ids are
// "<ownerID>_<ordinal>"; ordinals come from a per-owner counter bumped inside
// the upload transaction, so concurrent uploads by the same owner cannot
// produce colliding ids.
type Store struct {
	db   *gorm.DB
	conv Converter
}

func NewStore(db *gorm.DB, conv Converter) *Store {
	return &Store{db: db, conv: conv}
}

func (s *Store) Upload(ownerID uint, filename string, raw []byte) (string, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	encoded, err := s.conv.Encode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	var docID string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ordinal, err := nextOrdinal(tx, ownerID)
		if err != nil {
			return err
		}
		docID = fmt.Sprintf("%d_%d", ownerID, ordinal)

		doc := models.StoredDocument{
			OwnerID:  ownerID,
			DocID:    docID,
			Ordinal:  ordinal,
			Filename: filename,
			Content:  encoded,
		}
		return tx.Create(&doc).Error
	})
	if err != nil {
		return "", err
	}
	return docID, nil
}

// nextOrdinal bumps the owner's counter row with a single UPDATE and reads the
// value it handed out. The row update takes a lock for the rest of the
// transaction, serializing uploads per owner.
func nextOrdinal(tx *gorm.DB, ownerID uint) (uint64, error) {
	res := tx.Model(&models.DocumentCounter{}).
		Where("owner_id = ?", ownerID).
		UpdateColumn("next", gorm.Expr("next + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		if err := tx.Create(&models.DocumentCounter{OwnerID: ownerID, Next: 1}).Error; err != nil {
			return 0, err
		}
		return 0, nil
	}

	var ctr models.DocumentCounter
	if err := tx.First(&ctr, "owner_id = ?", ownerID).Error; err != nil {
		return 0, err
	}
	return ctr.Next - 1, nil
}

// List returns the owner's documents in upload order. An owner without
// documents gets an empty slice, never an error.
func (s *Store) List(ownerID uint) ([]ListEntry, error) {
	var docs []models.StoredDocument
	if err := s.db.Where("owner_id = ?", ownerID).Order("ordinal ASC").Find(&docs).Error; err != nil {
		return nil, err
	}

	entries := make([]ListEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, ListEntry{DocID: d.DocID, Filename: d.Filename})
	}
	return entries, nil
}

func (s *Store) Fetch(ownerID uint, docID string) (*models.StoredDocument, error) {
	var doc models.StoredDocument
	err := s.db.Where("owner_id = ? AND doc_id = ?", ownerID, docID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FetchRaw decodes the stored content back to the original bytes.
func (s *Store) FetchRaw(ownerID uint, docID string) (*models.StoredDocument, []byte, error) {
	doc, err := s.Fetch(ownerID, docID)
	if err != nil {
		return nil, nil, err
	}
	raw, err := s.conv.Decode(doc.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return doc, raw, nil
}
