package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ecovolt-backend/internal/models"
)

type RecordOptions struct {
	AdminID       uint
	ChangeType    models.ChangeType
	TableAffected string
	RecordID      uint
	Before        any
	After         any
}

// Service writes the append-only admin audit trail. Rows are never updated or
// deleted.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Record(opts RecordOptions) error {
	if !opts.ChangeType.Valid() {
		return fmt.Errorf("unknown change type: %s", opts.ChangeType)
	}

	// jsonb columns need the JSON null literal, not an empty string
	oldVal := datatypes.JSON("null")
	newVal := datatypes.JSON("null")
	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			oldVal = datatypes.JSON(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			newVal = datatypes.JSON(b)
		}
	}

	change := models.AdminChange{
		AdminID:       opts.AdminID,
		ChangeType:    opts.ChangeType,
		ChangedAt:     time.Now(),
		TableAffected: opts.TableAffected,
		RecordID:      opts.RecordID,
		OldValue:      oldVal,
		NewValue:      newVal,
	}

	if err := s.db.Create(&change).Error; err != nil {
		return fmt.Errorf("audit record could not be written: %w", err)
	}
	return nil
}

// List returns the newest changes first, optionally filtered by table.
func (s *Service) List(table string, limit int) ([]models.AdminChange, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	q := s.db.Order("id DESC").Limit(limit)
	if table != "" {
		q = q.Where("table_affected = ?", table)
	}

	var changes []models.AdminChange
	if err := q.Find(&changes).Error; err != nil {
		return nil, err
	}
	return changes, nil
}
